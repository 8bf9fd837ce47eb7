// Package mutate coordinates create/update/delete intents against the
// remote catalog service. Every successful mutation is followed by a
// full reload of the local state, so the view always reflects
// server-confirmed data.
package mutate

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shopfolk/prodcat/internal/state"
	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// Remote is the subset of the catalog client the coordinator needs.
type Remote interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id string) (*catalog.Product, error)
	Create(ctx context.Context, p catalog.Product) (*catalog.Product, error)
	Update(ctx context.Context, id string, p catalog.Product) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

// Confirmer is the yes/no capability the presentation layer must supply
// before a delete goes through.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Input carries the product form fields for create and update. The
// create/update choice is made by the caller, not inferred from server
// state; Update still probes the identifier as a consistency guard.
type Input struct {
	ID           string
	Title        string
	Price        float64
	CategoryName string
	Description  string
	Images       []string
}

// SplitImages parses a newline- or comma-delimited image URL list into
// individual URLs, dropping blank entries.
func SplitImages(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	images := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			images = append(images, f)
		}
	}
	return images
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.NewValidationError("title", in.Title, "must not be empty")
	}
	if in.Price < 0 {
		return errors.NewValidationError("price", in.Price, "must not be negative")
	}
	return nil
}

// Coordinator executes mutations against the remote client and reloads
// the store after each success.
type Coordinator struct {
	remote Remote
	store  *state.Store
}

// New creates a coordinator.
func New(remote Remote, store *state.Store) *Coordinator {
	return &Coordinator{remote: remote, store: store}
}

// Create builds a product from the input and posts it to the remote
// service. A missing ID gets a generated one; missing images get the
// well-known placeholder; the category is synthesized from its name.
// On success the local state is reloaded; a reload failure is returned
// alongside the created product and leaves the previous snapshot intact.
func (c *Coordinator) Create(ctx context.Context, in Input) (*catalog.Product, error) {
	if err := in.validate(); err != nil {
		return nil, errors.NewMutationError("create", in.ID, err)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	images := in.Images
	if len(images) == 0 {
		images = []string{catalog.DefaultImageURL}
	}

	product := catalog.Product{
		ID:          id,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category:    catalog.NewCategory(in.CategoryName),
		Images:      images,
	}

	created, err := c.remote.Create(ctx, product)
	if err != nil {
		return nil, errors.NewMutationError("create", id, err)
	}

	logging.Ctx(ctx).Info().Str("product_id", created.ID).Msg("Product created")
	return created, c.reload(ctx, "create")
}

// Update overwrites the product stored under id. The stored record is
// fetched first, both as an existence guard and to reuse its category:
// only the category name and slug are overlaid when the submitted name
// differs, preserving the stored category's identifier and image. The
// product identifier never changes. Images are kept from the stored
// record when none are submitted.
func (c *Coordinator) Update(ctx context.Context, id string, in Input) (*catalog.Product, error) {
	if err := in.validate(); err != nil {
		return nil, errors.NewMutationError("update", id, err)
	}

	stored, err := c.remote.Get(ctx, id)
	if err != nil {
		return nil, errors.NewMutationError("update", id, err)
	}

	category := stored.Category
	if in.CategoryName != "" && in.CategoryName != stored.Category.Name {
		category.Name = in.CategoryName
		category.Slug = catalog.Slugify(in.CategoryName)
	}

	images := in.Images
	if len(images) == 0 {
		images = stored.Images
	}

	product := catalog.Product{
		ID:          stored.ID,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category:    category,
		Images:      images,
	}

	updated, err := c.remote.Update(ctx, id, product)
	if err != nil {
		return nil, errors.NewMutationError("update", id, err)
	}

	logging.Ctx(ctx).Info().Str("product_id", id).Msg("Product updated")
	return updated, c.reload(ctx, "update")
}

// Delete removes the product stored under id after the confirmer says
// yes. Declining returns ErrCanceled and performs no remote call.
func (c *Coordinator) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(fmt.Sprintf("Delete product %s?", id)) {
		return errors.ErrCanceled
	}

	if err := c.remote.Delete(ctx, id); err != nil {
		return errors.NewMutationError("delete", id, err)
	}

	logging.Ctx(ctx).Info().Str("product_id", id).Msg("Product deleted")
	return c.reload(ctx, "delete")
}

func (c *Coordinator) reload(ctx context.Context, after string) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Reload(ctx, c.remote); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("after", after).Msg("Reload after mutation failed")
		return fmt.Errorf("reload after %s: %w", after, err)
	}
	return nil
}
