package postgres

import (
	"context"
	"encoding/json"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements repository.ProductRepository.
// Mutations are single statements filtered by id AND merchant_id.
type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID serves public reads and may hit a replica.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("products.id = ?", id))
}

// FindOwned reads from the primary since it backs read-after-write paths.
func (repo *productRepository) FindOwned(ctx context.Context, id, merchantID int64) (*entity.Product, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("products.id = ? AND products.merchant_id = ?", id, merchantID))
}

func (repo *productRepository) first(query *gorm.DB) (*entity.Product, error) {
	var productM model.ProductModel
	if err := query.Preload("Category").First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) UpdateDetails(ctx context.Context, id, merchantID int64, update *entity.ProductDetailsUpdate) error {
	details, err := json.Marshal(update.Details)
	if err != nil {
		return errors.Wrap(err, "failed to encode product details")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]any{
			"title":          update.Title,
			"code":           update.Code,
			"variation_type": string(update.VariationType),
			"description":    update.Description,
			"about":          datatypes.JSONSlice[string](update.About),
			"details":        datatypes.JSON(details),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateProductCode
		}

		return errors.Wrap(result.Error, "failed to update product details")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Activate(ctx context.Context, id, merchantID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Update("is_active", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to activate product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id, merchantID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Title:         data.Title,
		VariationType: entity.VariationType(data.VariationType),
		Description:   data.Description,
		About:         []string(data.About),
		IsActive:      data.IsActive,
		MerchantID:    data.MerchantID,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Code != nil {
		product.Code = *data.Code
	}
	if data.CategoryID != nil {
		categoryID := entity.CategoryID(*data.CategoryID)
		product.CategoryID = &categoryID
	}
	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}
	// A stored document that no longer decodes leaves Details nil, which
	// MissingFields reports as "details".
	if len(data.Details) > 0 && string(data.Details) != "null" {
		if details, err := entity.DecodeProductDetails(data.Details); err == nil {
			product.Details = details
		}
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:            data.ID,
		Title:         data.Title,
		VariationType: string(data.VariationType),
		Description:   data.Description,
		About:         datatypes.JSONSlice[string](data.About),
		IsActive:      data.IsActive,
		MerchantID:    data.MerchantID,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if productM.VariationType == "" {
		productM.VariationType = string(entity.VariationNone)
	}
	if data.Code != "" {
		code := data.Code
		productM.Code = &code
	}
	if data.CategoryID != nil {
		categoryID := int64(*data.CategoryID)
		productM.CategoryID = &categoryID
	}
	if data.Details != nil {
		if raw, err := json.Marshal(data.Details); err == nil {
			productM.Details = datatypes.JSON(raw)
		}
	}

	return productM
}
