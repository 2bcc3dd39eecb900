package scraper

import "context"

// LinkDiscoverer extracts crawlable page URLs from HTML.
type LinkDiscoverer interface {
	// DiscoverLinks scans all hyperlinks in the markup and returns the
	// normalized same-domain URLs, duplicate-free, in document order.
	// A malformed href is skipped; a parse failure for the whole page is
	// returned as an error and treated by callers as an empty result.
	DiscoverLinks(html string, baseURL string) ([]string, error)
}

// URLSource discovers documentation URLs for a site without scanning a page,
// e.g. from its sitemap.
type URLSource interface {
	Discover(ctx context.Context, baseURL string) ([]string, error)
}
