// Package prodcat provides a client-side product catalog manager. It
// fetches a product collection from a remote REST service, derives a
// searchable, sortable, paginated local view, and performs
// create/update/delete operations against the same service, reloading
// the full collection after every successful mutation.
//
// Example usage:
//
//	client, err := prodcat.New(prodcat.WithBaseURL("http://localhost:3000"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	client.SetSearch("chair")
//	client.SetSort(catalog.SortPriceAsc)
//	items, meta := client.Derived()
//	fmt.Println(meta.Summary())
//	for _, p := range items {
//	    fmt.Printf("%s  %s\n", p.ID, p.Title)
//	}
package prodcat

import (
	"context"
	"net/http"

	"github.com/shopfolk/prodcat/internal/mutate"
	"github.com/shopfolk/prodcat/internal/remote"
	"github.com/shopfolk/prodcat/internal/state"
	"github.com/shopfolk/prodcat/internal/view"
	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// Aliases so embedders can name the engine's types without reaching
// into internal packages.
type (
	// Meta describes a derived page.
	Meta = view.Meta
	// Control is a pagination control descriptor.
	Control = view.Control
	// Input carries product form fields for Create and Update.
	Input = mutate.Input
	// Confirmer is the yes/no capability required before a delete.
	Confirmer = mutate.Confirmer
	// ConfirmerFunc adapts a function to the Confirmer interface.
	ConfirmerFunc = mutate.ConfirmerFunc
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a local view over the remote product catalog.
type Client interface {
	// Load fetches the full collection from the remote service,
	// replacing the local snapshot. View parameters persist.
	Load(ctx context.Context) error

	// Products returns a copy of the current local snapshot.
	Products() []catalog.Product

	// Params returns the current view parameters.
	Params() catalog.ViewParams

	// SetSearch updates the search term and resets to page 1.
	SetSearch(term string)
	// SetSort updates the sort mode and resets to page 1.
	SetSort(mode catalog.SortMode)
	// SetPageSize updates the page size and resets to page 1.
	SetPageSize(n int) error
	// GoToPage jumps to a page without the reset rule.
	GoToPage(n int) error
	// NextPage advances one page, bounded by the last page.
	NextPage()
	// PrevPage steps back one page, bounded by the first page.
	PrevPage()
	// FirstPage jumps to page 1.
	FirstPage()
	// LastPage jumps to the last derivable page.
	LastPage()

	// Derived computes the current page and its metadata.
	Derived() ([]catalog.Product, Meta)
	// Controls derives the pagination control strip descriptors.
	Controls() []Control

	// Get fetches a single product from the remote service.
	Get(ctx context.Context, id string) (*catalog.Product, error)
	// Create posts a new product and reloads the local state.
	Create(ctx context.Context, in Input) (*catalog.Product, error)
	// Update overwrites an existing product and reloads the local state.
	Update(ctx context.Context, id string, in Input) (*catalog.Product, error)
	// Delete removes a product after confirmation and reloads the
	// local state.
	Delete(ctx context.Context, id string, confirm Confirmer) error
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	remote  *remote.Client
	store   *state.Store
	coord   *mutate.Coordinator
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	remoteClient := remote.New(options.baseURL, httpClient)
	store := state.NewStore(options.pageSize)

	return &client{
		options: options,
		remote:  remoteClient,
		store:   store,
		coord:   mutate.New(remoteClient, store),
	}, nil
}

func (c *client) Load(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, c.options.logger)
	return c.store.Reload(ctx, c.remote)
}

func (c *client) Products() []catalog.Product {
	return c.store.Products()
}

func (c *client) Params() catalog.ViewParams {
	return c.store.Params()
}

func (c *client) SetSearch(term string) {
	c.store.SetSearch(term)
}

func (c *client) SetSort(mode catalog.SortMode) {
	c.store.SetSort(mode)
}

func (c *client) SetPageSize(n int) error {
	return c.store.SetPageSize(n)
}

func (c *client) GoToPage(n int) error {
	return c.store.GoToPage(n)
}

func (c *client) NextPage()  { c.store.NextPage() }
func (c *client) PrevPage()  { c.store.PrevPage() }
func (c *client) FirstPage() { c.store.FirstPage() }
func (c *client) LastPage()  { c.store.LastPage() }

func (c *client) Derived() ([]catalog.Product, Meta) {
	return c.store.Derived()
}

func (c *client) Controls() []Control {
	return c.store.Controls()
}

func (c *client) Get(ctx context.Context, id string) (*catalog.Product, error) {
	ctx = logging.WithLogger(ctx, c.options.logger)
	return c.remote.Get(ctx, id)
}

func (c *client) Create(ctx context.Context, in Input) (*catalog.Product, error) {
	ctx = logging.WithLogger(ctx, c.options.logger)
	return c.coord.Create(ctx, in)
}

func (c *client) Update(ctx context.Context, id string, in Input) (*catalog.Product, error) {
	ctx = logging.WithLogger(ctx, c.options.logger)
	return c.coord.Update(ctx, id, in)
}

func (c *client) Delete(ctx context.Context, id string, confirm Confirmer) error {
	ctx = logging.WithLogger(ctx, c.options.logger)
	return c.coord.Delete(ctx, id, confirm)
}
