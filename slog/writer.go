package slog

import (
	"context"
	"log/slog"
	"time"

	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// Ensure LoggingWriter implements scraper.DocumentWriter.
var _ scraper.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with per-write logging.
type LoggingWriter struct {
	next   scraper.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next scraper.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDocument(ctx context.Context, doc *scraper.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write document",
			"file", doc.Filename,
			"bytes", len(doc.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}
