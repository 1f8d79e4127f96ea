package entity

import (
	"math"
	"strings"

	"shop/internal/util"

	"github.com/shopspring/decimal"
)

// SortField is a client-facing sort key.
type SortField string

const (
	SortByName          SortField = "name"
	SortByPrice         SortField = "price"
	SortByStockQuantity SortField = "stockQuantity"
	SortByCreatedAt     SortField = "createdAt"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit inside int.
	MaxPage = math.MaxInt / MaxLimit
)

// ProductSearch holds the optional filters of a catalog search.
// Nil pointers and empty strings mean "no filter".
type ProductSearch struct {
	MerchantID int64
	Search     string
	Category   string
	CategoryID *CategoryID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	IsActive   *bool
	SortBy     SortField
	SortOrder  SortOrder
	Page       int
	Limit      int
}

// Normalize applies pagination defaults and bounds and replaces unknown sort
// keys with createdAt DESC. Pages past MaxPage are read as MaxPage, which is
// empty for any real catalog.
func (s ProductSearch) Normalize() ProductSearch {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	s.Page = min(s.Page, MaxPage)
	if s.Limit == 0 {
		s.Limit = DefaultLimit
	}
	s.Limit = util.Clamp(s.Limit, 1, MaxLimit)

	switch s.SortBy {
	case SortByName, SortByPrice, SortByStockQuantity, SortByCreatedAt:
	default:
		s.SortBy = SortByCreatedAt
	}

	switch SortOrder(strings.ToUpper(string(s.SortOrder))) {
	case SortAsc:
		s.SortOrder = SortAsc
	default:
		s.SortOrder = SortDesc
	}

	s.Search = strings.TrimSpace(s.Search)
	s.Category = strings.TrimSpace(s.Category)

	return s
}

// Offset is the number of rows skipped before the requested page.
func (s ProductSearch) Offset() int {
	return (s.Page - 1) * s.Limit
}

// Page is a window of search results.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPage builds the envelope; TotalPages is ceil(total/limit).
func NewPage[T any](items []T, total int64, page, limit int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: util.CeilDiv(total, limit),
	}
}
