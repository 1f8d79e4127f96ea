package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	merchantA int64 = 100
	merchantB int64 = 200
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	publisher    *mockSvc.MockEventPublisher
	qrCode       *mockSvc.MockQRCodeService
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestProductService(t *testing.T) productServiceFixtures {
	f := productServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrCode:       mockSvc.NewMockQRCodeService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}
	f.service = NewProductService(ProductServiceParams{
		ProductRepo:  f.productRepo,
		CategoryRepo: f.categoryRepo,
		Publisher:    f.publisher,
		QRCode:       f.qrCode,
		Metrics:      f.metrics,
		Logger:       newDiscardLogger(),
	})

	return f
}

func (f productServiceFixtures) expectEvent(eventType service.ProductEventType, productID, merchantID int64, publishErr error) {
	f.metrics.EXPECT().ProductEvent(string(eventType)).Return()
	f.publisher.EXPECT().
		PublishProductEvent(mock.Anything, mock.MatchedBy(func(e *service.ProductEvent) bool {
			return e.Type == eventType && e.ProductID == productID && e.MerchantID == merchantID && e.EventID != ""
		})).
		Return(publishErr)
}

func computersCategory() *entity.Category {
	return &entity.Category{ID: entity.CategoryComputers, Name: "Computers"}
}

func draftProduct(id, merchantID int64) *entity.Product {
	categoryID := entity.CategoryComputers

	return &entity.Product{
		ID:            id,
		VariationType: entity.VariationNone,
		MerchantID:    merchantID,
		CategoryID:    &categoryID,
		Category:      computersCategory(),
	}
}

func detailedProduct(id, merchantID int64) *entity.Product {
	description := "Fast portable storage"
	product := draftProduct(id, merchantID)
	product.Title = "Portable SSD"
	product.Code = "SSD-1TB"
	product.Description = &description
	product.About = []string{"USB-C", "Shock resistant"}
	product.Details = &entity.ComputerDetails{
		Category:     entity.DetailsComputers,
		Capacity:     1,
		CapacityUnit: "TB",
		CapacityType: "SSD",
		Brand:        "Acme",
		Series:       "X1",
	}

	return product
}

func TestProductService_CreateProduct(t *testing.T) {
	f := createTestProductService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	f.categoryRepo.EXPECT().FindByID(ctx, entity.CategoryComputers).Return(computersCategory(), nil)
	f.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.MerchantID == merchantA && !p.IsActive && p.Details == nil &&
				p.CategoryID != nil && *p.CategoryID == entity.CategoryComputers
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 1 }).
		Return(nil)
	f.metrics.EXPECT().ProductEvent("product.created").Return()
	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.MatchedBy(func(e *service.ProductEvent) bool {
			return e.RequestID == "req-1" && e.Type == service.ProductCreated && e.ProductID == 1
		})).
		Return(nil)

	product, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: entity.CategoryComputers, MerchantID: merchantA})

	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, "Computers", product.Category.Name)
	assert.Equal(t, entity.VariationNone, product.VariationType)
	assert.True(t, product.Price.Equal(decimal.Zero))
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.categoryRepo.EXPECT().FindByID(ctx, entity.CategoryID(9)).Return(nil, repository.ErrCategoryNotFound)

	_, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: 9, MerchantID: merchantA})

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(77)).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.GetProduct(ctx, 77)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_AddProductDetails(t *testing.T) {
	ctx := context.Background()
	update := &entity.ProductDetailsUpdate{Title: "Portable SSD", Code: "SSD-1TB", VariationType: entity.VariationNone}

	t.Run("owner stores details and gets the stored product", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().UpdateDetails(ctx, int64(1), merchantA, update).Return(nil)
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantA).Return(detailedProduct(1, merchantA), nil)
		f.expectEvent(service.ProductDetailed, 1, merchantA, nil)

		product, err := f.service.AddProductDetails(ctx, &usecase.AddProductDetailsInput{ProductID: 1, MerchantID: merchantA, Details: update})

		require.NoError(t, err)
		assert.Equal(t, "SSD-1TB", product.Code)
	})

	t.Run("other merchant sees not found", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().UpdateDetails(ctx, int64(1), merchantB, update).Return(repository.ErrProductNotFound)

		_, err := f.service.AddProductDetails(ctx, &usecase.AddProductDetailsInput{ProductID: 1, MerchantID: merchantB, Details: update})

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().UpdateDetails(ctx, int64(2), merchantA, update).Return(repository.ErrDuplicateProductCode)

		_, err := f.service.AddProductDetails(ctx, &usecase.AddProductDetailsInput{ProductID: 2, MerchantID: merchantA, Details: update})

		assert.True(t, errors.Is(err, domainerrors.ErrProductCodeConflict))
	})
}

func TestProductService_ActivateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("complete product is activated", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantA).Return(detailedProduct(1, merchantA), nil)
		f.productRepo.EXPECT().Activate(ctx, int64(1), merchantA).Return(nil)
		f.expectEvent(service.ProductActivated, 1, merchantA, nil)

		activation, err := f.service.ActivateProduct(ctx, 1, merchantA)

		require.NoError(t, err)
		assert.Equal(t, &entity.ProductActivation{ID: 1, IsActive: true}, activation)
	})

	t.Run("draft is not fulfilled", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantA).Return(draftProduct(1, merchantA), nil)

		_, err := f.service.ActivateProduct(ctx, 1, merchantA)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFulfilled))
		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.HTTPCode())
		assert.Contains(t, appErr.Details(), "title")
		assert.Contains(t, appErr.Details(), "details")
	})

	t.Run("one empty field blocks activation", func(t *testing.T) {
		f := createTestProductService(t)
		product := detailedProduct(1, merchantA)
		product.About = nil
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantA).Return(product, nil)

		_, err := f.service.ActivateProduct(ctx, 1, merchantA)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFulfilled))
	})

	t.Run("other merchant sees not found", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantB).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.ActivateProduct(ctx, 1, merchantB)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("row gone between read and update", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindOwned(ctx, int64(1), merchantA).Return(detailedProduct(1, merchantA), nil)
		f.productRepo.EXPECT().Activate(ctx, int64(1), merchantA).Return(repository.ErrProductNotFound)

		_, err := f.service.ActivateProduct(ctx, 1, merchantA)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes and publish failure is ignored", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().Delete(ctx, int64(3), merchantA).Return(nil)
		f.expectEvent(service.ProductDeleted, 3, merchantA, errors.New("topic unavailable"))

		output, err := f.service.DeleteProduct(ctx, 3, merchantA)

		require.NoError(t, err)
		assert.Equal(t, "Product deleted successfully", output.Message)
	})

	t.Run("other merchant sees not found", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().Delete(ctx, int64(3), merchantB).Return(repository.ErrProductNotFound)

		_, err := f.service.DeleteProduct(ctx, 3, merchantB)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestProductService_SearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("merchant id is required", func(t *testing.T) {
		f := createTestProductService(t)

		_, err := f.service.SearchProducts(ctx, entity.ProductSearch{Search: "ssd"})

		assert.True(t, errors.Is(err, domainerrors.ErrMerchantIDRequired))
	})

	t.Run("normalizes filters and builds the page", func(t *testing.T) {
		f := createTestProductService(t)
		items := []*entity.Product{detailedProduct(6, merchantA), detailedProduct(7, merchantA)}
		f.productRepo.EXPECT().
			Search(ctx, mock.MatchedBy(func(s entity.ProductSearch) bool {
				return s.MerchantID == merchantA && s.Page == 2 && s.Limit == 5 &&
					s.SortBy == entity.SortByCreatedAt && s.SortOrder == entity.SortDesc && s.Search == "ssd"
			})).
			Return(items, int64(12), nil)

		page, err := f.service.SearchProducts(ctx, entity.ProductSearch{MerchantID: merchantA, Search: "  ssd ", Page: 2, Limit: 5})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 2, page.Page)
	})

	t.Run("inverted price range is rejected", func(t *testing.T) {
		f := createTestProductService(t)
		minPrice := decimal.NewFromInt(500)
		maxPrice := decimal.NewFromInt(100)

		_, err := f.service.SearchProducts(ctx, entity.ProductSearch{MerchantID: merchantA, MinPrice: &minPrice, MaxPrice: &maxPrice})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestProductService_ProductLabel(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(detailedProduct(1, merchantA), nil)
	f.qrCode.EXPECT().GenerateProductLabel(int64(1), "SSD-1TB").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.ProductLabel(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestProductService_EventTimestampIsUTC(t *testing.T) {
	f := createTestProductService(t)
	svc := f.service.(*productService)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	svc.now = func() time.Time { return fixed }

	f.metrics.EXPECT().ProductEvent("product.deleted").Return()
	f.publisher.EXPECT().
		PublishProductEvent(mock.Anything, mock.MatchedBy(func(e *service.ProductEvent) bool {
			return e.OccurredAt.Equal(fixed) && e.OccurredAt.Location() == time.UTC
		})).
		Return(nil)

	svc.emit(context.Background(), service.ProductDeleted, 1, merchantA)
}
