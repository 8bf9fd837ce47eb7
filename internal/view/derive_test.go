package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfolk/prodcat/pkg/catalog"
)

func fixture(n int) []catalog.Product {
	products := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, catalog.Product{
			ID:    fmt.Sprintf("%d", i),
			Title: fmt.Sprintf("Product %02d", i),
			Price: float64((i*7)%20) + 0.99,
		})
	}
	return products
}

func TestFilter(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Red Chair"},
		{ID: "2", Title: "Blue Table"},
		{ID: "3", Title: "red carpet"},
		{ID: "4", Title: "Lamp"},
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := Filter(products, "RED")
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Contains(t, strings.ToLower(p.Title), "red")
		}
	})

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Len(t, Filter(products, ""), 4)
		assert.Len(t, Filter(products, "   "), 4)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, Filter(products, "sofa"))
	})

	t.Run("does not alias the input", func(t *testing.T) {
		got := Filter(products, "")
		got[0].Title = "mutated"
		assert.Equal(t, "Red Chair", products[0].Title)
	})
}

func TestSortByPrice(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Price: 30},
		{ID: "b", Price: 10},
		{ID: "c", Price: 20},
		{ID: "d", Price: 10},
	}

	asc := Sort(products, catalog.SortPriceAsc)
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(asc))

	desc := Sort(products, catalog.SortPriceDesc)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(desc))

	// Input order untouched.
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(products))
}

func TestSortStability(t *testing.T) {
	// Products sharing a price keep their original relative order in
	// both directions.
	products := []catalog.Product{
		{ID: "1", Price: 5},
		{ID: "2", Price: 5},
		{ID: "3", Price: 5},
		{ID: "4", Price: 1},
	}

	asc := Sort(products, catalog.SortPriceAsc)
	assert.Equal(t, []string{"4", "1", "2", "3"}, ids(asc))

	desc := Sort(products, catalog.SortPriceDesc)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(desc))
}

func TestSortByTitle(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}

	asc := Sort(products, catalog.SortTitleAsc)
	assert.Equal(t, []string{"2", "1", "3"}, ids(asc))

	desc := Sort(products, catalog.SortTitleDesc)
	assert.Equal(t, []string{"3", "1", "2"}, ids(desc))
}

func TestSortNonePreservesOrder(t *testing.T) {
	products := fixture(5)
	got := Sort(products, catalog.SortNone)
	assert.Equal(t, ids(products), ids(got))
}

func TestPriceAscReversedEqualsDesc(t *testing.T) {
	products := fixture(12)

	asc := Sort(products, catalog.SortPriceAsc)
	desc := Sort(products, catalog.SortPriceDesc)

	// Prices (excluding tie order) must mirror each other.
	for i := range asc {
		assert.Equal(t, asc[i].Price, desc[len(desc)-1-i].Price)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, expected int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{12, 12, 1},
		{12, 1, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.total, tt.pageSize),
			"TotalPages(%d, %d)", tt.total, tt.pageSize)
	}
}

func TestDeriveFirstPageScenario(t *testing.T) {
	// 12 products, page size 5, no search, no sort.
	products := fixture(12)
	params := catalog.ViewParams{Sort: catalog.SortNone, PageSize: 5, Page: 1}

	items, meta := Derive(products, params)

	assert.Len(t, items, 5)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, "Showing 1 - 5 of 12 products", meta.Summary())
}

func TestDeriveLastPartialPage(t *testing.T) {
	products := fixture(12)
	params := catalog.ViewParams{PageSize: 5, Page: 3}

	items, meta := Derive(products, params)

	assert.Len(t, items, 2)
	assert.Equal(t, "Showing 11 - 12 of 12 products", meta.Summary())
}

func TestDeriveSearchResetsToSinglePage(t *testing.T) {
	// A search matching exactly two titles collapses to one page.
	products := fixture(12)
	products[3].Title = "Walnut Desk"
	products[8].Title = "Oak Desk"
	params := catalog.ViewParams{Search: "desk", PageSize: 5, Page: 1}

	items, meta := Derive(products, params)

	assert.Len(t, items, 2)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, "Showing 1 - 2 of 2 products", meta.Summary())
}

func TestDeriveClampsOverflowingPage(t *testing.T) {
	products := fixture(12)

	atLast, metaLast := Derive(products, catalog.ViewParams{PageSize: 5, Page: 3})
	beyond, metaBeyond := Derive(products, catalog.ViewParams{PageSize: 5, Page: 99})

	assert.Equal(t, ids(atLast), ids(beyond))
	assert.Equal(t, metaLast, metaBeyond)
	assert.Equal(t, 3, metaBeyond.Page)
}

func TestDeriveEmptyResult(t *testing.T) {
	products := fixture(12)
	params := catalog.ViewParams{Search: "does-not-exist", PageSize: 5, Page: 1}

	items, meta := Derive(products, params)

	assert.Empty(t, items)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, "Showing 0 - 0 of 0 products", meta.Summary())
}

func TestDerivePagesPartitionTheCollection(t *testing.T) {
	// The union of all pages equals the full filtered/sorted sequence
	// with no duplicates or omissions.
	products := fixture(12)
	params := catalog.ViewParams{Sort: catalog.SortPriceAsc, PageSize: 5}

	expected := Sort(Filter(products, ""), catalog.SortPriceAsc)

	var union []catalog.Product
	_, meta := Derive(products, catalog.ViewParams{Sort: params.Sort, PageSize: params.PageSize, Page: 1})
	for page := 1; page <= meta.TotalPages; page++ {
		items, _ := Derive(products, catalog.ViewParams{Sort: params.Sort, PageSize: params.PageSize, Page: page})
		union = append(union, items...)
	}

	assert.Equal(t, ids(expected), ids(union))
}

func TestDeriveFilterBeforeSortBeforeSlice(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "chair deluxe", Price: 50},
		{ID: "2", Title: "table", Price: 5},
		{ID: "3", Title: "chair basic", Price: 10},
		{ID: "4", Title: "chair mid", Price: 30},
	}
	params := catalog.ViewParams{Search: "chair", Sort: catalog.SortPriceAsc, PageSize: 2, Page: 1}

	items, meta := Derive(products, params)

	assert.Equal(t, []string{"3", "4"}, ids(items))
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
