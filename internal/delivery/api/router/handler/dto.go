package handler

import (
	"time"

	"shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int64          `json:"id"`
	Email     string         `json:"email"`
	Roles     []RoleResponse `json:"roles"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type ProductResponse struct {
	ID            int64                 `json:"id"`
	Code          string                `json:"code,omitempty"`
	Title         string                `json:"title"`
	VariationType entity.VariationType  `json:"variationType"`
	Description   *string               `json:"description"`
	About         []string              `json:"about"`
	Details       entity.ProductDetails `json:"details"`
	IsActive      bool                  `json:"isActive"`
	MerchantID    int64                 `json:"merchantId"`
	Category      *CategoryResponse     `json:"category"`
	Price         decimal.Decimal       `json:"price"`
	StockQuantity int                   `json:"stockQuantity"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type ActivationResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"isActive"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func toRoleResponse(role *entity.Role) RoleResponse {
	return RoleResponse{ID: int64(role.ID), Name: role.Name}
}

func toCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}

	return &CategoryResponse{ID: int64(category.ID), Name: category.Name}
}

func toUserResponse(user *entity.User) UserResponse {
	roles := make([]RoleResponse, len(user.Roles))
	for i := range user.Roles {
		roles[i] = toRoleResponse(&user.Roles[i])
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Roles:     roles,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toProductResponse(product *entity.Product) ProductResponse {
	about := product.About
	if about == nil {
		about = []string{}
	}

	return ProductResponse{
		ID:            product.ID,
		Code:          product.Code,
		Title:         product.Title,
		VariationType: product.VariationType,
		Description:   product.Description,
		About:         about,
		Details:       product.Details,
		IsActive:      product.IsActive,
		MerchantID:    product.MerchantID,
		Category:      toCategoryResponse(product.Category),
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func toProductPageResponse(page *entity.Page[*entity.Product]) ProductPageResponse {
	items := make([]ProductResponse, len(page.Items))
	for i, product := range page.Items {
		items[i] = toProductResponse(product)
	}

	return ProductPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
