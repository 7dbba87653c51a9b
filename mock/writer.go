package mock

import (
	"context"

	"github.com/avolos/flatscan"
)

var _ flatscan.ListingWriter = (*ListingWriter)(nil)

// ListingWriter is a mock implementation of flatscan.ListingWriter.
type ListingWriter struct {
	CreateListingFn func(ctx context.Context, apt *flatscan.Apartment) error
}

func (w *ListingWriter) CreateListing(ctx context.Context, apt *flatscan.Apartment) error {
	return w.CreateListingFn(ctx, apt)
}
