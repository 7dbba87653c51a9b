package crawl

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier is an in-memory link set with Bloom filter de-duplication.
// Links keep first-seen order; duplicates are dropped. It is safe for
// concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	links []string
}

// NewFrontier creates a Frontier sized for n expected links with the
// given false positive rate for de-duplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a link to the frontier.
// Returns false if the link has already been seen.
func (f *Frontier) Push(link string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(link) {
		return false
	}
	f.seen.AddString(link)
	f.links = append(f.links, link)
	return true
}

// Drain returns the collected links and empties the frontier.
// Seen-state is retained, so drained links cannot be re-pushed.
func (f *Frontier) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	links := f.links
	f.links = nil
	return links
}

// Len returns the number of queued links.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.links)
}

// Seen returns true if the link has been pushed before.
func (f *Frontier) Seen(link string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(link)
}
