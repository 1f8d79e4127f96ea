package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrCategoryNotFound is returned when a category id does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository reads and seeds product categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Upsert(ctx context.Context, categories []entity.Category) error
}
