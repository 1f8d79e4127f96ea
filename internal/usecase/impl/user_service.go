package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		roleRepo: params.RoleRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) UpdateUser(ctx context.Context, actor *entity.User, userID int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if actor == nil || (actor.ID != userID && !actor.HasRole(entity.RoleAdmin)) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may update other accounts")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user vanished during update")
		default:
			return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
		}
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", userID), slog.Int64("actorID", actor.ID))

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "delete user")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", userID))

	return nil
}

// AssignRole links a registry role to a user and returns the user with the
// refreshed role set.
func (srv *userService) AssignRole(ctx context.Context, userID int64, roleID entity.RoleID) (*entity.User, error) {
	if _, err := srv.roleRepo.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRoleNotFound, "role %d", roleID)
		}

		return nil, errors.Wrap(err, "failed to load role")
	}

	if err := srv.userRepo.AssignRole(ctx, userID, roleID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", userID)
		}

		return nil, errors.Wrap(err, "failed to assign role")
	}

	srv.log(ctx).Info("Role assigned", slog.Int64("userID", userID), slog.String("role", roleID.Name()))

	return srv.findUser(ctx, userID)
}

func (srv *userService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
