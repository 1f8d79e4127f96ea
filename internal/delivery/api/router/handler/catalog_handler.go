package handler

import (
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the role and category reference data.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

func (h *CatalogHandler) ListRoles(c echo.Context) error {
	roles, err := h.catalogUC.ListRoles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]RoleResponse, len(roles))
	for i, role := range roles {
		result[i] = toRoleResponse(role)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]*CategoryResponse, len(categories))
	for i, category := range categories {
		result[i] = toCategoryResponse(category)
	}

	return response.Success(c, http.StatusOK, result)
}
