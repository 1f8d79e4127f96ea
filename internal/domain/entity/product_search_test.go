package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductSearch_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ProductSearch
		wantPage  int
		wantLimit int
		wantSort  SortField
		wantOrder SortOrder
	}{
		{name: "defaults", in: ProductSearch{}, wantPage: 1, wantLimit: 10, wantSort: SortByCreatedAt, wantOrder: SortDesc},
		{name: "page below one", in: ProductSearch{Page: -3, Limit: 5}, wantPage: 1, wantLimit: 5, wantSort: SortByCreatedAt, wantOrder: SortDesc},
		{name: "limit above max", in: ProductSearch{Page: 2, Limit: 500}, wantPage: 2, wantLimit: 100, wantSort: SortByCreatedAt, wantOrder: SortDesc},
		{name: "page above max", in: ProductSearch{Page: math.MaxInt, Limit: 100}, wantPage: MaxPage, wantLimit: 100, wantSort: SortByCreatedAt, wantOrder: SortDesc},
		{name: "negative limit", in: ProductSearch{Limit: -1}, wantPage: 1, wantLimit: 1, wantSort: SortByCreatedAt, wantOrder: SortDesc},
		{name: "known sort ascending", in: ProductSearch{SortBy: SortByPrice, SortOrder: "asc"}, wantPage: 1, wantLimit: 10, wantSort: SortByPrice, wantOrder: SortAsc},
		{name: "unknown sort field", in: ProductSearch{SortBy: "password; drop table", SortOrder: SortAsc}, wantPage: 1, wantLimit: 10, wantSort: SortByCreatedAt, wantOrder: SortAsc},
		{name: "unknown direction", in: ProductSearch{SortBy: SortByName, SortOrder: "sideways"}, wantPage: 1, wantLimit: 10, wantSort: SortByName, wantOrder: SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantSort, got.SortBy)
			assert.Equal(t, tt.wantOrder, got.SortOrder)
		})
	}
}

func TestProductSearch_Offset(t *testing.T) {
	assert.Equal(t, 0, ProductSearch{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 5, ProductSearch{Page: 2, Limit: 5}.Offset())
	assert.Equal(t, 40, ProductSearch{Page: 3, Limit: 20}.Offset())

	huge := ProductSearch{Page: math.MaxInt / 50, Limit: MaxLimit}.Normalize()
	assert.Positive(t, huge.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage[int](nil, 10, 2, 5)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(10), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	assert.Equal(t, 3, NewPage([]int{1}, 21, 1, 10).TotalPages)
	assert.Equal(t, 0, NewPage([]int{}, 0, 1, 10).TotalPages)
}
