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

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Seed upserts the role registry and the categories, then makes sure the
// bootstrap admin exists and holds the Admin role. Running it twice changes
// nothing.
func (srv *seedService) Seed(ctx context.Context, input *usecase.SeedInput) (*usecase.SeedOutput, error) {
	roles := entity.DefaultRoles()
	categories := entity.DefaultCategories()
	output := &usecase.SeedOutput{Roles: len(roles), Categories: len(categories)}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRoleRepository().Upsert(ctx, roles); err != nil {
			return errors.Wrap(err, "failed to seed roles")
		}
		if err := repoFactory.NewCategoryRepository().Upsert(ctx, categories); err != nil {
			return errors.Wrap(err, "failed to seed categories")
		}

		if input == nil || strings.TrimSpace(input.AdminEmail) == "" {
			return nil
		}

		return srv.seedAdmin(ctx, repoFactory.NewUserRepository(), input, output)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute seed transaction")
	}

	srv.log(ctx).Info("Seed completed",
		slog.Int("roles", output.Roles),
		slog.Int("categories", output.Categories),
		slog.Int64("adminID", output.AdminID),
		slog.Bool("adminCreated", output.AdminCreated))

	return output, nil
}

func (srv *seedService) seedAdmin(ctx context.Context, userRepo repository.UserRepository, input *usecase.SeedInput, output *usecase.SeedOutput) error {
	email := strings.TrimSpace(input.AdminEmail)

	admin, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		output.AdminID = admin.ID
		if admin.HasRole(entity.RoleAdmin) {
			return nil
		}

		return errors.Wrap(userRepo.AssignRole(ctx, admin.ID, entity.RoleAdmin), "failed to promote admin")
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up admin")
	}

	if input.AdminPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "admin password is required to create the admin account")
	}

	hash, err := srv.hasher.Hash(input.AdminPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin = &entity.User{
		Email:        email,
		PasswordHash: hash,
		Roles: entity.Roles{
			{ID: entity.RoleCustomer, Name: entity.RoleCustomer.Name()},
			{ID: entity.RoleAdmin, Name: entity.RoleAdmin.Name()},
		},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin")
	}

	output.AdminID = admin.ID
	output.AdminCreated = true

	return nil
}
