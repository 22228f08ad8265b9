// Package catalog owns the product list fetched from the remote feed and the
// search projection over it. The functionality is split across files:
//   - product.go: the normalized Product record
//   - feed.go: the one-shot HTTP feed client
//   - store.go: the Store state machine and its projections
package catalog

// Product is one catalog entry, normalized from a raw feed record at fetch
// time. Immutable after normalization.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
