package scraper

// Fallback labels reported in ExtractResult.Selector when no content
// heuristic matched.
const (
	SelectorBodyFallback     = "body (fallback)"
	SelectorDocumentFallback = "document (fallback)"
	SelectorRawFallback      = "raw-html (fallback)"
)

// ExtractResult holds the content region selected from an HTML page.
type ExtractResult struct {
	// ContentHTML is the markup fragment believed to be the page's
	// substantive content.
	ContentHTML string

	// Selector names the heuristic that matched, or one of the fallback
	// labels above.
	Selector string
}

// Extractor locates the main content region of an HTML page.
type Extractor interface {
	// Extract tries an ordered list of selector heuristics and returns the
	// first match, degrading to the document body and finally the entire
	// document. Given non-empty input it always returns some region; empty
	// input is an EINVALID error.
	Extract(html string) (*ExtractResult, error)
}
