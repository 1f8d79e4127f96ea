package postgres

import (
	"context"

	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.SetupJoinTable(&model.UserModel{}, "Roles", &model.UserRoleModel{}); err != nil {
		return errors.Wrap(err, "failed to set up user_roles join table")
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
