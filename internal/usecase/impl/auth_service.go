// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"go.uber.org/fx"
)

const (
	authOperationRegister = "register"
	authOperationLogin    = "login"

	// unknownUserPassword seeds the hash compared against when the email is unknown.
	unknownUserPassword = "unknown-user-placeholder"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	logger       *slog.Logger

	unknownUserHash func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
	srv.unknownUserHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(unknownUserPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare unknown user hash", slog.Any("error", err))
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account. The email check, the insert and the
// role link run in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		roleRepo := repoFactory.NewRoleRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		customer, err := roleRepo.FindByID(ctx, entity.RoleCustomer)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrRoleNotFound, "default role is not seeded")
			}

			return errors.Wrap(err, "failed to load default role")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: hash,
			Roles:        entity.Roles{*customer},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		srv.log(ctx).Debug("User created", slog.Int64("userID", user.ID))

		return nil
	})

	srv.metrics.AuthAttempt(authOperationRegister, err == nil)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	return &usecase.RegisterOutput{Message: usecase.RegisterSuccessMessage}, nil
}

// Login checks the credentials and issues an access token. An unknown email
// and a wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}

		// Same bcrypt cost as a real account, so response time does not reveal the email.
		srv.hasher.Check(input.Password, srv.unknownUserHash())

		srv.metrics.AuthAttempt(authOperationLogin, false)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.metrics.AuthAttempt(authOperationLogin, false)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.GenerateToken(ctx, service.TokenPayload{ID: user.ID, Email: user.Email})
	srv.metrics.AuthAttempt(authOperationLogin, err == nil)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return output, nil
}

// GenerateToken signs an access token for the payload.
func (srv *authService) GenerateToken(ctx context.Context, payload service.TokenPayload) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.GenerateToken(payload)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Int64("userID", payload.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return &usecase.TokenOutput{AccessToken: token}, nil
}

// Authenticate validates the token and loads the user it names. A token for a
// deleted user is rejected like an invalid one.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}
