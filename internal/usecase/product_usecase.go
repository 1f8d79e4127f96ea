package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// CreateProductInput starts a draft in a category.
type CreateProductInput struct {
	CategoryID entity.CategoryID
	MerchantID int64
}

// AddProductDetailsInput fills a draft owned by MerchantID.
type AddProductDetailsInput struct {
	ProductID  int64
	MerchantID int64
	Details    *entity.ProductDetailsUpdate
}

// DeleteProductOutput confirms a deletion.
type DeleteProductOutput struct {
	Message string
}

// DeleteSuccessMessage is returned after a product is deleted.
const DeleteSuccessMessage = "Product deleted successfully"

// ProductUsecase drives the product lifecycle and the catalog search.
// Every mutation is scoped to the calling merchant; a product owned by
// someone else is reported as not found.
type ProductUsecase interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	AddProductDetails(ctx context.Context, input *AddProductDetailsInput) (*entity.Product, error)
	ActivateProduct(ctx context.Context, productID, merchantID int64) (*entity.ProductActivation, error)
	DeleteProduct(ctx context.Context, productID, merchantID int64) (*DeleteProductOutput, error)
	SearchProducts(ctx context.Context, filter entity.ProductSearch) (*entity.Page[*entity.Product], error)

	// ProductLabel renders the PNG QR label of a product.
	ProductLabel(ctx context.Context, productID int64) ([]byte, error)
}
