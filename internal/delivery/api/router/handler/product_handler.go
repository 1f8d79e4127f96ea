package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product lifecycle and search handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a draft
type CreateProductRequest struct {
	CategoryID int64 `json:"categoryId" validate:"required,gt=0"`
}

// AddProductDetailsRequest represents the request body of the details step.
// Details is decoded by its "category" discriminator after validation.
type AddProductDetailsRequest struct {
	Title         string          `json:"title" validate:"required,max=255"`
	Code          string          `json:"code" validate:"required,max=64"`
	VariationType string          `json:"variationType" validate:"required,oneof=NONE OnlySize OnlyColor SizeAndColor"`
	Details       json.RawMessage `json:"details"`
	About         []string        `json:"about" validate:"required,min=1,dive,required"`
	Description   string          `json:"description" validate:"required"`
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetProductLabel returns the product QR label as PNG.
func (h *ProductHandler) GetProductLabel(c echo.Context) error {
	productID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.productUC.ProductLabel(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateProduct starts a draft owned by the caller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		CategoryID: entity.CategoryID(req.CategoryID),
		MerchantID: merchantID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// AddProductDetails fills a draft owned by the caller.
func (h *ProductHandler) AddProductDetails(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AddProductDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product details input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := entity.DecodeProductDetails(req.Details)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.AddProductDetails(c.Request().Context(), &usecase.AddProductDetailsInput{
		ProductID:  productID,
		MerchantID: merchantID,
		Details: &entity.ProductDetailsUpdate{
			Title:         strings.TrimSpace(req.Title),
			Code:          strings.TrimSpace(req.Code),
			VariationType: entity.VariationType(req.VariationType),
			Description:   req.Description,
			About:         req.About,
			Details:       details,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) ActivateProduct(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	activation, err := h.productUC.ActivateProduct(c.Request().Context(), productID, merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ActivationResponse{ID: activation.ID, IsActive: activation.IsActive})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	output, err := h.productUC.DeleteProduct(c.Request().Context(), productID, merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: output.Message})
}

// SearchProducts pages through the caller's catalog.
//
//	GET /product/search?search=&category=&categoryId=&minPrice=&maxPrice=&isActive=&sortBy=&sortOrder=&page=&limit=
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	merchantID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := bindProductSearch(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid search parameters", err.Error())
	}
	filter.MerchantID = merchantID

	page, err := h.productUC.SearchProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductPageResponse(page))
}

func bindProductSearch(c echo.Context) (entity.ProductSearch, error) {
	var (
		filter     entity.ProductSearch
		categoryID int64
		isActive   bool
		sortBy     string
		sortOrder  string
	)

	err := echo.QueryParamsBinder(c).
		String("search", &filter.Search).
		String("category", &filter.Category).
		Int64("categoryId", &categoryID).
		Bool("isActive", &isActive).
		String("sortBy", &sortBy).
		String("sortOrder", &sortOrder).
		Int("page", &filter.Page).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return filter, err
	}

	filter.SortBy = entity.SortField(sortBy)
	filter.SortOrder = entity.SortOrder(sortOrder)
	if c.QueryParam("categoryId") != "" {
		id := entity.CategoryID(categoryID)
		filter.CategoryID = &id
	}
	if c.QueryParam("isActive") != "" {
		filter.IsActive = &isActive
	}

	if filter.MinPrice, err = decimalParam(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = decimalParam(c, "maxPrice"); err != nil {
		return filter, err
	}

	return filter, nil
}

func decimalParam(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, echo.NewBindingError(name, []string{raw}, "invalid decimal", err)
	}

	return &value, nil
}
