package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// CatalogUsecase exposes the reference data.
type CatalogUsecase interface {
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// SeedInput describes the optional bootstrap admin account.
type SeedInput struct {
	AdminEmail    string
	AdminPassword string
}

// SeedOutput reports what the seed run did.
type SeedOutput struct {
	Roles        int
	Categories   int
	AdminID      int64
	AdminCreated bool
}

// SeedUsecase writes the reference data and the bootstrap admin. It is idempotent.
type SeedUsecase interface {
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
}
