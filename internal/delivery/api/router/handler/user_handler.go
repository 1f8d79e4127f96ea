package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and role handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateUserRequest represents the request body for updating an account
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Password *string `json:"password" validate:"omitempty,min=8,max=20"`
}

// AssignRoleRequest represents the request body for assigning a role
type AssignRoleRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	RoleID int64 `json:"roleId" validate:"required,gt=0"`
}

// GetProfile returns the authenticated account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]UserResponse, len(users))
	for i, user := range users {
		result[i] = toUserResponse(user)
	}

	return response.Success(c, http.StatusOK, result)
}

// UpdateUser changes email and/or password of an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.Email == nil && req.Password == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Nothing to update")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, userID, &usecase.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AssignRole grants a registry role to an account.
func (h *UserHandler) AssignRole(c echo.Context) error {
	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.AssignRole(c.Request().Context(), req.UserID, entity.RoleID(req.RoleID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
