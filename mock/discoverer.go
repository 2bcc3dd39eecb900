package mock

import (
	"context"

	scraper "github.com/c0d33ngr/gitbook-scraper"
)

var _ scraper.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of scraper.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html string, baseURL string) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]string, error) {
	return d.DiscoverLinksFn(html, baseURL)
}

var _ scraper.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of scraper.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverFn(ctx, baseURL)
}
