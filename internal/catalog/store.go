package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Store holds the catalog state for one dashboard mount: the product list,
// fixed in feed order once loaded, and the mutable search term. All reads of
// derived data are pure projections; nothing derived is cached.
//
// The Store is mutated only from the UI event loop, one message at a time, so
// it carries no locking.
type Store struct {
	products   []Product
	searchTerm string
	started    bool
	loaded     bool
	err        error
}

// NewStore returns an empty store awaiting its one-shot load.
func NewStore() *Store {
	return &Store{}
}

// BeginLoad marks the one-shot load as issued and reports whether the caller
// should actually perform it. A second call returns false, so a duplicate
// mount or re-render cannot re-trigger the fetch.
func (s *Store) BeginLoad() bool {
	if s.started {
		return false
	}
	s.started = true
	return true
}

// FinishLoad records the outcome of the load. On error the product list stays
// empty and the error is held for the controller to surface; the store never
// raises it further.
func (s *Store) FinishLoad(products []Product, err error) {
	s.loaded = true
	if err != nil {
		s.err = err
		return
	}
	s.products = products
	s.err = nil
}

// Loaded reports whether the load has completed, successfully or not.
func (s *Store) Loaded() bool { return s.loaded }

// Err returns the recorded load failure, nil on success or before completion.
func (s *Store) Err() error { return s.err }

// Products returns the full list in feed order. Callers must not mutate it.
func (s *Store) Products() []Product { return s.products }

// SetSearchTerm replaces the search term. Total; no failure mode.
func (s *Store) SetSearchTerm(term string) { s.searchTerm = term }

// SearchTerm returns the current search term.
func (s *Store) SearchTerm() string { return s.searchTerm }

// VisibleProducts projects the subsequence of products whose title contains
// the search term case-insensitively, in feed order. An empty term yields the
// full list.
func (s *Store) VisibleProducts() []Product {
	if s.searchTerm == "" {
		return s.products
	}
	term := strings.ToLower(s.searchTerm)
	return lo.Filter(s.products, func(p Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), term)
	})
}
