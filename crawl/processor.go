// Package crawl provides the per-page processing pipeline and the crawl
// orchestrator that drives it over a discovered link set.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/fs"
)

// PageResult summarizes the processing of one URL.
type PageResult struct {
	URL      string
	Filename string
	Selector string
	Hash     string
	Bytes    int

	// Skipped is true when the converted document was empty and no file
	// was written.
	Skipped bool
}

// Processor runs the linear pipeline for a single page:
// fetch, extract, convert, derive filename, save.
type Processor struct {
	Fetcher   scraper.Fetcher
	Extractor scraper.Extractor
	Converter scraper.Converter
	Writer    scraper.DocumentWriter
	Logger    *slog.Logger
}

// Process fetches and persists one page. A fetch failure aborts the page
// with nothing written. An extraction failure degrades to the raw markup as
// the content region, and a conversion failure degrades to an annotated
// passthrough; neither aborts. An empty converted document is skipped
// without writing a zero-byte file.
func (p *Processor) Process(ctx context.Context, pageURL, baseURL string) (*PageResult, error) {
	logger := p.logger()

	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	contentHTML := html
	selector := scraper.SelectorRawFallback
	if extracted, err := p.Extractor.Extract(html); err != nil {
		logger.Warn("content extraction failed, converting raw HTML",
			"url", pageURL,
			"err", err,
		)
	} else {
		contentHTML = extracted.ContentHTML
		selector = extracted.Selector
	}

	markdown, err := p.Converter.Convert(contentHTML)
	if err != nil {
		logger.Warn("markdown conversion failed, keeping raw content",
			"url", pageURL,
			"err", err,
		)
		markdown = fmt.Sprintf("<!-- error converting HTML to Markdown: %v -->\n%s", err, contentHTML)
	}

	filename := fs.FromURL(pageURL, baseURL)

	result := &PageResult{
		URL:      pageURL,
		Filename: filename,
		Selector: selector,
	}

	if strings.TrimSpace(markdown) == "" {
		logger.Warn("no content to save", "url", pageURL, "file", filename)
		result.Skipped = true
		return result, nil
	}

	doc := &scraper.Document{
		SourceURL: pageURL,
		Filename:  filename,
		Content:   markdown,
	}
	if err := p.Writer.WriteDocument(ctx, doc); err != nil {
		return nil, err
	}

	result.Hash = contentHash(markdown)
	result.Bytes = len(markdown)
	return result, nil
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// contentHash computes a stable hash of the markdown using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
