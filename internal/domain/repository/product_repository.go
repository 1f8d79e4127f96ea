package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is missing or not owned by the caller.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProductCode is returned when a code is already used by another product.
	ErrDuplicateProductCode = errors.New("product code already exists")
)

// ProductRepository defines product persistence. Every mutation is guarded by
// the owning merchant id in the same statement.
type ProductRepository interface {
	// FindByID retrieves a product with its category.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindOwned retrieves a product only when it belongs to merchantID.
	FindOwned(ctx context.Context, id, merchantID int64) (*entity.Product, error)

	// Create inserts a draft product and sets the generated ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// UpdateDetails writes the details step in one conditional update.
	UpdateDetails(ctx context.Context, id, merchantID int64, update *entity.ProductDetailsUpdate) error

	// Activate sets is_active in one conditional update.
	Activate(ctx context.Context, id, merchantID int64) error

	// Delete removes the product in one conditional delete.
	Delete(ctx context.Context, id, merchantID int64) error

	// Search returns one page of products matching the normalized filters and
	// the total number of matches.
	Search(ctx context.Context, filter entity.ProductSearch) ([]*entity.Product, int64, error)
}
