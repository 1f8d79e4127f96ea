package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VariationType describes which variation axes a product has.
type VariationType string

const (
	VariationNone         VariationType = "NONE"
	VariationOnlySize     VariationType = "OnlySize"
	VariationOnlyColor    VariationType = "OnlyColor"
	VariationSizeAndColor VariationType = "SizeAndColor"
)

// IsValid checks if the VariationType is a known value.
func (v VariationType) IsValid() bool {
	switch v {
	case VariationNone, VariationOnlySize, VariationOnlyColor, VariationSizeAndColor:
		return true
	default:
		return false
	}
}

// Product is a merchant-owned catalog entry.
//
// A product starts as a draft (category and merchant only), is filled by a
// single details update and becomes active once IsFulfilled holds.
type Product struct {
	ID            int64
	Code          string
	Title         string
	VariationType VariationType
	Description   *string
	About         []string
	Details       ProductDetails
	IsActive      bool
	MerchantID    int64
	CategoryID    *CategoryID
	Category      *Category
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MissingFields lists the fields that block activation, in a stable order.
func (p *Product) MissingFields() []string {
	var missing []string

	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Code) == "" {
		missing = append(missing, "code")
	}
	if !p.VariationType.IsValid() {
		missing = append(missing, "variationType")
	}
	if len(p.About) == 0 || slices.ContainsFunc(p.About, func(s string) bool { return strings.TrimSpace(s) == "" }) {
		missing = append(missing, "about")
	}
	if p.Description == nil || strings.TrimSpace(*p.Description) == "" {
		missing = append(missing, "description")
	}
	if p.Details == nil || p.Details.Validate() != nil {
		missing = append(missing, "details")
	}

	return missing
}

// IsFulfilled reports whether the product may be activated.
func (p *Product) IsFulfilled() bool {
	return len(p.MissingFields()) == 0
}

// ProductDetailsUpdate is the payload written by the details step.
type ProductDetailsUpdate struct {
	Title         string
	Code          string
	VariationType VariationType
	Description   string
	About         []string
	Details       ProductDetails
}

// ProductActivation is the result of activating a product.
type ProductActivation struct {
	ID       int64
	IsActive bool
}
