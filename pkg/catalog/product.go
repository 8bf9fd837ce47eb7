// Package catalog defines the product data model shared by the remote
// client, the local list-state engine, and the CLI.
package catalog

import (
	"hash/fnv"
	"strings"
)

// DefaultImageURL is the placeholder used when a product is created
// without any images, and as the image of synthesized categories.
const DefaultImageURL = "https://placehold.co/600x400"

// Category groups products. Slug and Image are carried verbatim from the
// remote store; for locally synthesized categories they are derived from
// the category name.
type Category struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Slug  string `json:"slug" yaml:"slug"`
	Image string `json:"image" yaml:"image"`
}

// Product is a single catalog entry. ID is unique and stable across
// reloads; the remote store owns the authoritative copy.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Images      []string `json:"images" yaml:"images"`
}

// Slugify converts a category name to its URL slug: lowercased, with
// runs of whitespace collapsed to a single hyphen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}

// CategoryID derives a stable identifier for a synthesized category from
// its slug, so distinct category names cannot collide.
func CategoryID(slug string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return int64(h.Sum32())
}

// NewCategory synthesizes a category from a name, for products created
// locally rather than edited from an existing remote record.
func NewCategory(name string) Category {
	slug := Slugify(name)
	return Category{
		ID:    CategoryID(slug),
		Name:  name,
		Slug:  slug,
		Image: DefaultImageURL,
	}
}
