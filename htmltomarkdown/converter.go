// Package htmltomarkdown provides an HTML-to-Markdown implementation of
// scraper.Converter.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// Ensure Converter implements scraper.Converter at compile time.
var _ scraper.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Links are kept inline, output lines are not wrapped, and code spans use
// backticks.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Empty input yields an empty
// document. An internal conversion failure is not propagated: the result is
// an error annotation followed by the raw input, so no page is silently
// dropped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	markdown, err := c.conv.ConvertString(html)
	if err != nil {
		return "<!-- error converting HTML to Markdown: " + err.Error() + " -->\n" + html, nil
	}

	return markdown, nil
}
