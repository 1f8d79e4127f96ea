package postgres

import (
	"context"
	"strings"

	"shop/internal/domain/entity"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"
	"shop/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// searchPredicate narrows a product query for one filter. A predicate whose
// filter is unset returns the query unchanged.
type searchPredicate func(query *gorm.DB, filter entity.ProductSearch) *gorm.DB

// searchPredicates are applied in order and AND-combined.
var searchPredicates = []searchPredicate{
	byMerchant,
	bySearchText,
	byCategoryName,
	byCategoryID,
	byMinPrice,
	byMaxPrice,
	byActive,
}

// sortColumns maps client sort keys onto columns. Anything else never reaches SQL.
var sortColumns = map[entity.SortField]string{
	entity.SortByName:          "title",
	entity.SortByPrice:         "price",
	entity.SortByStockQuantity: "stock_quantity",
	entity.SortByCreatedAt:     "created_at",
}

func byMerchant(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	return query.Where("products.merchant_id = ?", filter.MerchantID)
}

func bySearchText(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	pattern := util.ContainsPattern(strings.ToLower(filter.Search))

	return query.Where(
		`(LOWER(products.title) LIKE ? ESCAPE '\' OR LOWER(products.description) LIKE ? ESCAPE '\')`,
		pattern, pattern,
	)
}

func byCategoryName(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.Category == "" {
		return query
	}

	return query.
		Joins("JOIN categories ON categories.id = products.category_id").
		Where(`LOWER(categories.name) LIKE ? ESCAPE '\'`, util.ContainsPattern(strings.ToLower(filter.Category)))
}

func byCategoryID(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.CategoryID == nil {
		return query
	}

	return query.Where("products.category_id = ?", int64(*filter.CategoryID))
}

func byMinPrice(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.MinPrice == nil {
		return query
	}

	return query.Where("products.price >= ?", *filter.MinPrice)
}

func byMaxPrice(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.MaxPrice == nil {
		return query
	}

	return query.Where("products.price <= ?", *filter.MaxPrice)
}

func byActive(query *gorm.DB, filter entity.ProductSearch) *gorm.DB {
	if filter.IsActive == nil {
		return query
	}

	return query.Where("products.is_active = ?", *filter.IsActive)
}

// orderBy sorts by the allow-listed column and breaks ties on id.
func orderBy(filter entity.ProductSearch) clause.OrderBy {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[entity.SortByCreatedAt]
	}
	desc := filter.SortOrder != entity.SortAsc

	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: "products", Name: column}, Desc: desc},
		{Column: clause.Column{Table: "products", Name: "id"}, Desc: desc},
	}}
}

// Search counts every match, then loads the requested page with categories.
func (repo *productRepository) Search(ctx context.Context, filter entity.ProductSearch) ([]*entity.Product, int64, error) {
	filter = filter.Normalize()

	filtered := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.ProductModel{})
		for _, apply := range searchPredicates {
			query = apply(query, filter)
		}

		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}
	if total == 0 {
		return []*entity.Product{}, 0, nil
	}

	var productModels []*model.ProductModel
	if err := filtered().
		Preload("Category").
		Clauses(orderBy(filter)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}
