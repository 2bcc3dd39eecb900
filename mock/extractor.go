package mock

import scraper "github.com/c0d33ngr/gitbook-scraper"

var _ scraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scraper.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scraper.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scraper.ExtractResult, error) {
	return e.ExtractFn(html)
}
