// Package goquery provides selector-based implementations of the scraper's
// content extraction and link discovery interfaces.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// contentSelectors is the ordered list of heuristics for locating the main
// content region. Earlier entries win when multiple match: semantic HTML5
// regions first, then classes and ids used by common documentation
// renderers.
var contentSelectors = []string{
	"main",
	"article",
	"[role='main']",
	".markdown-body",
	".book-body",
	".content",
	"#content",
	".main-content",
	".documentation-page",
	".post-content",
	".entry-content",
}

// Ensure Extractor implements scraper.Extractor at compile time.
var _ scraper.Extractor = (*Extractor)(nil)

// Extractor locates the main content region of a page using an ordered list
// of CSS selector heuristics, falling back to the document body and finally
// the entire document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the first matching content region.
// Non-empty input always yields a region; empty input is an EINVALID error.
func (e *Extractor) Extract(html string) (*scraper.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, scraper.Errorf(scraper.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return renderRegion(sel, selector)
		}
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return renderRegion(body, scraper.SelectorBodyFallback)
	}

	return renderRegion(doc.Selection, scraper.SelectorDocumentFallback)
}

// renderRegion serializes the selected region back to HTML after removing
// its direct-child nav elements. Nested navs stay; only top-level chrome is
// stripped.
func renderRegion(sel *goquery.Selection, label string) (*scraper.ExtractResult, error) {
	sel.ChildrenFiltered("nav").Remove()

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINTERNAL, "failed to render content region: %v", err)
	}

	return &scraper.ExtractResult{
		ContentHTML: html,
		Selector:    label,
	}, nil
}
