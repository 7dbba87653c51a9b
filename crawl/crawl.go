// Package crawl orchestrates listing extraction. It resolves sources
// (local files or validated links), discovers listing links on catalog
// pages, and fans extraction out over de-duplicated links with bounded
// concurrency. The extraction core itself stays synchronous; concurrency
// exists only here.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/extract"
	"github.com/avolos/flatscan/grammar"
)

// DefaultConcurrency bounds the catalog fan-out when no limit is set.
const DefaultConcurrency = 8

// frontierExpectedLinks sizes the Bloom filter backing link de-duplication.
const (
	frontierExpectedLinks = 1000
	frontierFalsePositive = 0.001
)

// Crawler extracts listings from local files or from the source site.
type Crawler struct {
	Fetcher     flatscan.Fetcher
	Limiter     *HostLimiter // optional politeness limiter
	Concurrency int
	Logger      *slog.Logger
}

// ExtractListing extracts a single listing. src is either a path to a
// local markup file or a single-listing URL; malformed links fail with
// EINVALID before any network access.
func (c *Crawler) ExtractListing(ctx context.Context, src string) (*flatscan.Apartment, error) {
	markup, err := c.content(ctx, src, grammar.IsListingLink, "listing")
	if err != nil {
		return nil, err
	}
	return extract.Listing(markup)
}

// ExtractCatalog extracts every listing referenced by a catalog page.
// Discovered links are collapsed into a set before dispatch; each listing
// is fetched and extracted independently and concurrently. The batch is
// all-or-nothing: the first extraction failure fails the whole result,
// though in-flight sibling extractions are not interrupted.
func (c *Crawler) ExtractCatalog(ctx context.Context, src string) ([]*flatscan.Apartment, error) {
	markup, err := c.content(ctx, src, grammar.IsCatalogLink, "catalog")
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier(frontierExpectedLinks, frontierFalsePositive)
	for _, link := range grammar.ListingLinks(markup) {
		frontier.Push(link)
	}
	links := frontier.Drain()
	if len(links) == 0 {
		return nil, flatscan.Errorf(flatscan.ESYNTAX, "no listing links recognized in catalog")
	}

	run := uuid.New().String()
	c.logger().Debug("catalog extraction", "run", run, "source", src, "links", len(links))

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	apartments := make([]*flatscan.Apartment, len(links))
	var mu sync.Mutex

	// A plain group, not WithContext: one failed listing fails the batch
	// but does not cancel in-flight siblings, their results are simply
	// discarded with the batch.
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			apt, err := c.ExtractListing(ctx, link)
			if err != nil {
				c.logger().Debug("listing failed", "run", run, "link", link, "error", err)
				return err
			}
			mu.Lock()
			apartments[i] = apt
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger().Debug("catalog extracted", "run", run, "listings", len(apartments))
	return apartments, nil
}

// content resolves a source string to markup. An existing local file wins;
// otherwise the source must be a link of the expected shape.
func (c *Crawler) content(ctx context.Context, src string, validLink func(string) bool, kind string) (string, error) {
	if data, err := os.ReadFile(src); err == nil {
		return string(data), nil
	}
	if !validLink(src) {
		return "", flatscan.Errorf(flatscan.EINVALID, "not a local file or %s link: %q", kind, src)
	}
	if c.Limiter != nil {
		u, err := url.Parse(src)
		if err != nil {
			return "", flatscan.Errorf(flatscan.EINVALID, "invalid URL %q: %v", src, err)
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return c.Fetcher.Fetch(ctx, src)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
