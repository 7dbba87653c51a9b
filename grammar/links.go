package grammar

import (
	"regexp"
	"strings"
)

// Link shapes of the source site. Both validators are pure syntactic
// checks used to classify a source string before any network access.
var (
	listingLinkRe = regexp.MustCompile(`^https://rieltor\.ua/(?:[a-z][a-z0-9-]*/)?flats-rent/view/\d+/?$`)
	catalogLinkRe = regexp.MustCompile(`^https://rieltor\.ua/(?:[a-z][a-z0-9-]*/)?flats-rent(?:/[a-z0-9-]+)*/?(?:\?\S*)?$`)

	hrefListingRe = regexp.MustCompile(`href="(https://rieltor\.ua/(?:[a-z][a-z0-9-]*/)?flats-rent/view/\d+/?)"`)
)

// IsListingLink reports whether s has the shape of a single-listing URL.
func IsListingLink(s string) bool {
	return listingLinkRe.MatchString(s)
}

// IsCatalogLink reports whether s has the shape of a listing-search URL.
// Single-listing URLs are not catalog links even though the path shape
// overlaps.
func IsCatalogLink(s string) bool {
	return catalogLinkRe.MatchString(s) && !strings.Contains(s, "/view/")
}

// ListingLinks returns every single-listing URL referenced by a catalog
// page, in document order. Duplicates are preserved; callers collapse them
// into a set before dispatch.
func ListingLinks(src string) []string {
	var links []string
	for _, m := range hrefListingRe.FindAllStringSubmatch(src, -1) {
		links = append(links, m[1])
	}
	return links
}
