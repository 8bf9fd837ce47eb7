// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strings"

	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/view"
	"github.com/shopfolk/prodcat/pkg/catalog"
)

// ProductsToData converts a page of products to table format.
func ProductsToData(products []catalog.Product) output.Data {
	headers := []string{"ID", "Title", "Price", "Category", "Images"}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Title,
			FormatPrice(p.Price),
			p.Category.Name,
			fmt.Sprintf("%d", len(p.Images)),
		})
	}

	return output.Data{Headers: headers, Rows: rows}
}

// ProductToDetailData converts a single product to a field/value table.
func ProductToDetailData(p catalog.Product) output.Data {
	rows := [][]string{
		{"ID", p.ID},
		{"Title", p.Title},
		{"Price", FormatPrice(p.Price)},
		{"Description", p.Description},
		{"Category", p.Category.Name},
		{"Category Slug", p.Category.Slug},
		{"Images", strings.Join(p.Images, "\n")},
	}
	return output.Data{Headers: []string{"Field", "Value"}, Rows: rows}
}

// FormatPrice renders a price for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// ControlStrip renders pagination control descriptors as a single line,
// e.g. "← Prev  1 …  4 [5] 6  … 12  Next →". Disabled controls are
// wrapped in parentheses, the active page in brackets.
func ControlStrip(controls []view.Control) string {
	if len(controls) == 0 {
		return ""
	}

	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch c.Kind {
		case view.ControlPrev:
			if c.Disabled {
				parts = append(parts, "(← Prev)")
			} else {
				parts = append(parts, "← Prev")
			}
		case view.ControlNext:
			if c.Disabled {
				parts = append(parts, "(Next →)")
			} else {
				parts = append(parts, "Next →")
			}
		case view.ControlEllipsis:
			parts = append(parts, "…")
		case view.ControlPage, view.ControlFirst, view.ControlLast:
			if c.Active {
				parts = append(parts, fmt.Sprintf("[%d]", c.Target))
			} else {
				parts = append(parts, fmt.Sprintf("%d", c.Target))
			}
		}
	}
	return strings.Join(parts, "  ")
}
