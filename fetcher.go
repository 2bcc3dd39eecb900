package scraper

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET request and returns the response body.
	// Transport failures and non-2xx statuses are reported uniformly as
	// EUNAVAILABLE errors; a single attempt is made per call.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
