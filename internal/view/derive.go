// Package view turns a product collection plus view parameters into a
// displayable page. Everything here is a pure function over its inputs;
// the caller owns the state.
package view

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shopfolk/prodcat/pkg/catalog"
)

// Meta describes the derived page for a "Showing X - Y of Z" style
// summary and for pagination controls. First and Last are 1-based
// display indexes into the filtered sequence; both are 0 when the page
// is empty.
type Meta struct {
	Count      int `json:"count" yaml:"count"`
	Total      int `json:"total" yaml:"total"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	Page       int `json:"page" yaml:"page"`
	First      int `json:"first" yaml:"first"`
	Last       int `json:"last" yaml:"last"`
}

// Summary renders the pagination info line.
func (m Meta) Summary() string {
	return fmt.Sprintf("Showing %d - %d of %d products", m.First, m.Last, m.Total)
}

// Derive filters, sorts, and paginates products according to params.
// Filtering always happens before sorting, and sorting before slicing.
// The requested page is clamped to the total page count; the input slice
// is never mutated.
func Derive(products []catalog.Product, params catalog.ViewParams) ([]catalog.Product, Meta) {
	filtered := Filter(products, params.Search)
	sorted := Sort(filtered, params.Sort)

	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}

	total := len(sorted)
	totalPages := TotalPages(total, pageSize)
	page := ClampPage(params.Page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	var items []catalog.Product
	if start < total {
		items = sorted[start:end]
	}

	meta := Meta{
		Count:      len(items),
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
	if len(items) > 0 {
		meta.First = start + 1
		meta.Last = start + len(items)
	}
	return items, meta
}

// Filter keeps products whose title contains the search term,
// case-insensitively. A blank term matches everything. The result is a
// fresh slice so later sorting cannot disturb the caller's collection.
func Filter(products []catalog.Product, term string) []catalog.Product {
	if strings.TrimSpace(term) == "" {
		results := make([]catalog.Product, len(products))
		copy(results, products)
		return results
	}

	needle := strings.ToLower(term)
	results := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			results = append(results, p)
		}
	}
	return results
}

// Sort orders products by the given mode. The sort is stable: products
// with equal keys keep their filtered order, so ties never jitter
// between derivations. SortNone returns the input unchanged.
func Sort(products []catalog.Product, mode catalog.SortMode) []catalog.Product {
	if mode == catalog.SortNone || mode == "" {
		return products
	}

	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)

	switch mode {
	case catalog.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case catalog.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case catalog.SortTitleAsc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case catalog.SortTitleDesc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	}
	return sorted
}

// TotalPages computes ceil(total/pageSize), 0 for an empty collection.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage bounds a requested page to [1, totalPages]. When totalPages
// is 0 there are no valid pages and the page collapses to 1.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}
