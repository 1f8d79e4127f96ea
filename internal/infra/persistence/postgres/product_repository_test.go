package postgres

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	merchantA int64 = 100
	merchantB int64 = 200
)

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db).(*productRepository)
	ctx := context.Background()

	draft := createDraft(t, repo, merchantA)
	assert.Positive(t, draft.ID)
	assert.False(t, draft.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, merchantA, got.MerchantID)
	assert.False(t, got.IsActive)
	assert.Empty(t, got.Code)
	assert.Equal(t, entity.VariationNone, got.VariationType)
	assert.Nil(t, got.Details)
	require.NotNil(t, got.Category)
	assert.Equal(t, entity.Category{ID: entity.CategoryComputers, Name: "Computers"}, *got.Category)

	// Drafts have no code yet and must not collide on the unique index.
	second := createDraft(t, repo, merchantA)
	assert.NotEqual(t, draft.ID, second.ID)
}

func TestProductRepository_CreateUnknownCategory(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Product{MerchantID: merchantA, CategoryID: categoryPtr(99)})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestProductRepository_FindMissing(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_FindOwned(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	draft := createDraft(t, repo, merchantA)

	got, err := repo.FindOwned(ctx, draft.ID, merchantA)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	_, err = repo.FindOwned(ctx, draft.ID, merchantB)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_UpdateDetails(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	draft := createDraft(t, repo, merchantA)

	require.NoError(t, repo.UpdateDetails(ctx, draft.ID, merchantA, detailsUpdate("TP-1")))

	got, err := repo.FindOwned(ctx, draft.ID, merchantA)
	require.NoError(t, err)
	assert.Equal(t, "TP-1", got.Code)
	assert.Equal(t, "ThinkPad TP-1", got.Title)
	assert.Equal(t, []string{"14 inch", "32GB RAM"}, got.About)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Business laptop", *got.Description)
	assert.Equal(t, computerDetails(), got.Details)
	assert.True(t, got.IsFulfilled())
	assert.False(t, got.IsActive)
}

func TestProductRepository_UpdateDetailsNotOwned(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	draft := createDraft(t, repo, merchantA)

	err := repo.UpdateDetails(ctx, draft.ID, merchantB, detailsUpdate("TP-1"))
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = repo.UpdateDetails(ctx, 404, merchantA, detailsUpdate("TP-1"))
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	got, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Title)
}

func TestProductRepository_UpdateDetailsDuplicateCode(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	first := createDraft(t, repo, merchantA)
	second := createDraft(t, repo, merchantB)

	require.NoError(t, repo.UpdateDetails(ctx, first.ID, merchantA, detailsUpdate("DUP")))

	err := repo.UpdateDetails(ctx, second.ID, merchantB, detailsUpdate("DUP"))
	assert.ErrorIs(t, err, repository.ErrDuplicateProductCode)
}

func TestProductRepository_Activate(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	draft := createDraft(t, repo, merchantA)

	assert.ErrorIs(t, repo.Activate(ctx, draft.ID, merchantB), repository.ErrProductNotFound)

	require.NoError(t, repo.Activate(ctx, draft.ID, merchantA))

	got, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t)).(*productRepository)
	ctx := context.Background()
	draft := createDraft(t, repo, merchantA)

	assert.ErrorIs(t, repo.Delete(ctx, draft.ID, merchantB), repository.ErrProductNotFound)

	_, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err, "a foreign delete must not remove the product")

	require.NoError(t, repo.Delete(ctx, draft.ID, merchantA))

	_, err = repo.FindByID(ctx, draft.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, draft.ID, merchantA), repository.ErrProductNotFound)
}
