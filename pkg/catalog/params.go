package catalog

import (
	"github.com/shopfolk/prodcat/pkg/errors"
)

// SortMode selects the ordering applied to the filtered collection.
type SortMode string

// Supported sort modes.
const (
	SortNone      SortMode = "none"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortTitleAsc  SortMode = "title-asc"
	SortTitleDesc SortMode = "title-desc"
)

// ParseSortMode converts a string to a SortMode. The empty string maps
// to SortNone.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case "":
		return SortNone, nil
	case SortNone, SortPriceAsc, SortPriceDesc, SortTitleAsc, SortTitleDesc:
		return SortMode(s), nil
	default:
		return SortNone, errors.NewValidationError("sort", s,
			"must be one of: none, price-asc, price-desc, title-asc, title-desc")
	}
}

// ViewParams are the user-controlled settings driving local derivation.
// Page is 1-based.
type ViewParams struct {
	Search   string   `json:"search" yaml:"search"`
	Sort     SortMode `json:"sort" yaml:"sort"`
	PageSize int      `json:"page_size" yaml:"page_size"`
	Page     int      `json:"page" yaml:"page"`
}

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 5

// DefaultViewParams returns the initial view: no search, no sort,
// first page.
func DefaultViewParams(pageSize int) ViewParams {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return ViewParams{
		Sort:     SortNone,
		PageSize: pageSize,
		Page:     1,
	}
}
