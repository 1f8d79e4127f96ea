package postgres

import (
	"context"
	"testing"

	"shop/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema
// and the reference data seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise see its own empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, NewRoleRepository(db).Upsert(ctx, entity.DefaultRoles()))
	require.NoError(t, NewCategoryRepository(db).Upsert(ctx, entity.DefaultCategories()))

	return db
}

func categoryPtr(id entity.CategoryID) *entity.CategoryID {
	return &id
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

// createDraft inserts a draft owned by merchantID.
func createDraft(t *testing.T, repo *productRepository, merchantID int64) *entity.Product {
	t.Helper()

	product := &entity.Product{
		MerchantID: merchantID,
		CategoryID: categoryPtr(entity.CategoryComputers),
	}
	require.NoError(t, repo.Create(context.Background(), product))

	return product
}

func computerDetails() *entity.ComputerDetails {
	return &entity.ComputerDetails{
		Category:     entity.DetailsComputers,
		Capacity:     512,
		CapacityUnit: "GB",
		CapacityType: "SSD",
		Brand:        "Lenovo",
		Series:       "ThinkPad",
	}
}

func detailsUpdate(code string) *entity.ProductDetailsUpdate {
	return &entity.ProductDetailsUpdate{
		Title:         "ThinkPad " + code,
		Code:          code,
		VariationType: entity.VariationNone,
		Description:   "Business laptop",
		About:         []string{"14 inch", "32GB RAM"},
		Details:       computerDetails(),
	}
}

func searchFilter(search, category string) entity.ProductSearch {
	return entity.ProductSearch{MerchantID: merchantA, Search: search, Category: category}
}
