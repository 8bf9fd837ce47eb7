// Package state owns the in-memory product collection and the current
// view parameters. The collection is a copy of the remote store's data,
// populated on load and replaced wholesale after every successful
// mutation; it is never authoritative.
package state

import (
	"context"
	"sync"

	"github.com/shopfolk/prodcat/internal/view"
	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// Lister loads the full product collection from the source of truth.
type Lister interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// Store holds the product snapshot and view parameters behind a mutex,
// so it is safe to drive from multiple goroutines.
type Store struct {
	mu       sync.RWMutex
	products []catalog.Product
	params   catalog.ViewParams
	gen      uint64
}

// NewStore creates an empty store with default view parameters.
func NewStore(pageSize int) *Store {
	return &Store{params: catalog.DefaultViewParams(pageSize)}
}

// SetSearch updates the search term and resets to the first page.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Search = term
	s.params.Page = 1
}

// SetSort updates the sort mode and resets to the first page.
func (s *Store) SetSort(mode catalog.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Sort = mode
	s.params.Page = 1
}

// SetPageSize updates the page size and resets to the first page.
// Non-positive sizes are rejected.
func (s *Store) SetPageSize(n int) error {
	if n < 1 {
		return errors.NewValidationError("page_size", n, "must be a positive integer")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.PageSize = n
	s.params.Page = 1
	return nil
}

// GoToPage jumps directly to the requested page without the reset rule.
// The page is stored as requested; derivation clamps it against the
// current total page count.
func (s *Store) GoToPage(n int) error {
	if n < 1 {
		return errors.NewValidationError("page", n, "must be a positive integer")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Page = n
	return nil
}

// NextPage advances one page, staying put at the last page and when
// there are no pages at all.
func (s *Store) NextPage() {
	s.step(+1)
}

// PrevPage steps back one page, staying put at the first page and when
// there are no pages at all.
func (s *Store) PrevPage() {
	s.step(-1)
}

func (s *Store) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, meta := view.Derive(s.products, s.params)
	if meta.TotalPages == 0 {
		return
	}
	s.params.Page = view.ClampPage(meta.Page+delta, meta.TotalPages)
}

// FirstPage jumps to page 1.
func (s *Store) FirstPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Page = 1
}

// LastPage jumps to the last page of the current derivation; no-op when
// there are no pages.
func (s *Store) LastPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, meta := view.Derive(s.products, s.params)
	if meta.TotalPages == 0 {
		return
	}
	s.params.Page = meta.TotalPages
}

// Params returns the current view parameters.
func (s *Store) Params() catalog.ViewParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Products returns a copy of the current product snapshot.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]catalog.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Replace swaps in a freshly loaded collection. View parameters persist;
// an out-of-range page is corrected at derivation time.
func (s *Store) Replace(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.products = products
}

// Derived computes the current page and its metadata.
func (s *Store) Derived() ([]catalog.Product, view.Meta) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.Derive(s.products, s.params)
}

// Controls derives the pagination control strip for the current view.
func (s *Store) Controls() []view.Control {
	_, meta := s.Derived()
	return view.Controls(meta.Page, meta.TotalPages)
}

// Reload fetches the full collection and replaces the snapshot. On
// failure the previous snapshot is left intact. Reloads are guarded by a
// generation counter: a response that lost the race against a newer
// Replace or Reload is dropped instead of overwriting fresher state.
func (s *Store) Reload(ctx context.Context, lister Lister) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	products, err := lister.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		logging.Ctx(ctx).Debug().
			Uint64("generation", gen).
			Msg("Dropping stale reload response")
		return nil
	}
	s.products = products
	return nil
}
