package mock

import (
	"context"

	scraper "github.com/c0d33ngr/gitbook-scraper"
)

var _ scraper.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of scraper.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *scraper.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *scraper.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
