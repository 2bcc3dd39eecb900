package scraper

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Hyperlinks are kept
	// inline, lines are not wrapped, and code spans use backticks.
	// Implementations degrade on internal failure: the result is an error
	// annotation followed by the raw input, with a nil error, so no page
	// is silently dropped. Empty input yields an empty document.
	Convert(html string) (string, error)
}
