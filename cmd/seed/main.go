// Command seed migrates the schema and loads the reference data: the role
// registry, the categories and, when configured, the bootstrap admin.
package main

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/lifecycle"
	"shop/internal/infra/auth"
	logs "shop/internal/infra/log"
	"shop/internal/infra/persistence/postgres"
	"shop/internal/usecase"
	"shop/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	SeedUC usecase.SeedUsecase
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewSeedService,
		),
		fx.Invoke(runSeed),
	).Run()
}

// runSeed does its work once the database pool has started, then stops the app.
func runSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := seed(params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func seed(params seedParams) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*lifecycle.DefaultTimeout)
	defer cancel()

	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}

	input := &usecase.SeedInput{}
	if params.Config.Seed != nil {
		input.AdminEmail = params.Config.Seed.AdminEmail
		input.AdminPassword = params.Config.Seed.AdminPassword
	}

	output, err := params.SeedUC.Seed(ctx, input)
	if err != nil {
		return err
	}

	params.Logger.Info("Seed completed",
		slog.Int("roles", output.Roles),
		slog.Int("categories", output.Categories),
		slog.Int64("admin_id", output.AdminID),
		slog.Bool("admin_created", output.AdminCreated),
	)

	return nil
}
