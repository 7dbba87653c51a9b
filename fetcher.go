package flatscan

import "context"

// Fetcher retrieves raw markup from URLs. Link-shape validation happens
// before Fetch is called; implementations only transport.
type Fetcher interface {
	// Fetch returns the markup served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// ListingWriter persists one extracted listing.
// Implementations own naming and layout policy (file path, table schema).
type ListingWriter interface {
	CreateListing(ctx context.Context, apt *Apartment) error
}
