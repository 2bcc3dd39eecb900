// Package readability provides an alternative scraper.Extractor built on
// go-readability's content scoring, for pages where the selector heuristics
// pick up too much chrome.
package readability

import (
	"strings"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	readability "github.com/go-shiori/go-readability"
)

// Label reported in ExtractResult.Selector for regions chosen by the
// readability algorithm.
const Label = "readability"

// Ensure Extractor implements scraper.Extractor at compile time.
var _ scraper.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content region.
func (e *Extractor) Extract(html string) (*scraper.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, scraper.Errorf(scraper.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINTERNAL, "readability extraction failed: %v", err)
	}

	return &scraper.ExtractResult{
		ContentHTML: article.Content,
		Selector:    Label,
	}, nil
}
