package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    service.EventPublisher
	qrCode       service.QRCodeService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	now          func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		publisher:    params.Publisher,
		qrCode:       params.QRCode,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err, productID)
	}

	return product, nil
}

// CreateProduct inserts a draft owned by the caller.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCategoryNotFound, "category %d", input.CategoryID)
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	categoryID := category.ID
	product := &entity.Product{
		VariationType: entity.VariationNone,
		MerchantID:    input.MerchantID,
		CategoryID:    &categoryID,
		Category:      category,
		Price:         decimal.Zero,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCategoryNotFound, "category %d", input.CategoryID)
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product draft created", slog.Int64("productID", product.ID), slog.Int64("merchantID", input.MerchantID))
	srv.emit(ctx, service.ProductCreated, product.ID, input.MerchantID)

	return product, nil
}

// AddProductDetails writes the details step in a single conditional update
// and returns the stored product.
func (srv *productService) AddProductDetails(ctx context.Context, input *usecase.AddProductDetailsInput) (*entity.Product, error) {
	if input.Details == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "details are required")
	}

	if err := srv.productRepo.UpdateDetails(ctx, input.ProductID, input.MerchantID, input.Details); err != nil {
		return nil, mapProductError(err, input.ProductID)
	}

	// Read back from the primary; a replica may not have the update yet.
	product, err := srv.productRepo.FindOwned(ctx, input.ProductID, input.MerchantID)
	if err != nil {
		return nil, mapProductError(err, input.ProductID)
	}

	srv.log(ctx).Info("Product details stored", slog.Int64("productID", product.ID), slog.String("code", product.Code))
	srv.emit(ctx, service.ProductDetailed, product.ID, input.MerchantID)

	return product, nil
}

// ActivateProduct publishes a product once every required field is filled.
func (srv *productService) ActivateProduct(ctx context.Context, productID, merchantID int64) (*entity.ProductActivation, error) {
	product, err := srv.productRepo.FindOwned(ctx, productID, merchantID)
	if err != nil {
		return nil, mapProductError(err, productID)
	}

	if missing := product.MissingFields(); len(missing) > 0 {
		srv.log(ctx).Warn("Activation rejected", slog.Int64("productID", productID), slog.Any("missing", missing))

		return nil, domainerrors.ErrProductNotFulfilled.WithDetails("missing " + strings.Join(missing, ", "))
	}

	if err := srv.productRepo.Activate(ctx, productID, merchantID); err != nil {
		return nil, mapProductError(err, productID)
	}

	srv.log(ctx).Info("Product activated", slog.Int64("productID", productID))
	srv.emit(ctx, service.ProductActivated, productID, merchantID)

	return &entity.ProductActivation{ID: productID, IsActive: true}, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, productID, merchantID int64) (*usecase.DeleteProductOutput, error) {
	if err := srv.productRepo.Delete(ctx, productID, merchantID); err != nil {
		return nil, mapProductError(err, productID)
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", productID))
	srv.emit(ctx, service.ProductDeleted, productID, merchantID)

	return &usecase.DeleteProductOutput{Message: usecase.DeleteSuccessMessage}, nil
}

// SearchProducts returns one page of the caller's catalog.
func (srv *productService) SearchProducts(ctx context.Context, filter entity.ProductSearch) (*entity.Page[*entity.Product], error) {
	if filter.MerchantID == 0 {
		return nil, domainerrors.ErrMerchantIDRequired
	}

	filter = filter.Normalize()
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("minPrice must not exceed maxPrice")
	}

	items, total, err := srv.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return entity.NewPage(items, total, filter.Page, filter.Limit), nil
}

func (srv *productService) ProductLabel(ctx context.Context, productID int64) ([]byte, error) {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductLabel(product.ID, product.Code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// emit records and publishes a committed transition. Publishing is best effort.
func (srv *productService) emit(ctx context.Context, eventType service.ProductEventType, productID, merchantID int64) {
	srv.metrics.ProductEvent(string(eventType))

	event := &service.ProductEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		ProductID:  productID,
		MerchantID: merchantID,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishProductEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish product event",
			slog.String("type", string(eventType)),
			slog.Int64("productID", productID),
			slog.Any("error", err))
	}
}

func mapProductError(err error, productID int64) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrapf(domainerrors.ErrProductNotFound, "product %d", productID)
	case errors.Is(err, repository.ErrDuplicateProductCode):
		return errors.Wrap(domainerrors.ErrProductCodeConflict, "product details")
	default:
		return errors.Wrapf(err, "product %d", productID)
	}
}
