package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUser   = "user"
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware provides middleware for bearer authentication and role checks.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate resolves the bearer token to a user and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthorized, "missing bearer token")
		}

		ctx := c.Request().Context()
		user, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyUserID, user.ID)
		c.Set(contextKeyRoles, user.Roles)

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("user_id", user.ID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole lets the request through when the user holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.RoleID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "role information missing")
			}

			if !held.ContainsAny(roles...) {
				return errors.Wrapf(domainerrors.ErrForbidden, "requires one of %v", roleNames(roles))
			}

			return next(c)
		}
	}
}

// GetUser returns the authenticated user.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(contextKeyUserID).(int64)

	return id, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func roleNames(ids []entity.RoleID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name()
	}

	return names
}
