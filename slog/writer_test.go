package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/mock"
	scraperslog "github.com/c0d33ngr/gitbook-scraper/slog"
)

func TestLoggingWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs write with file and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written *scraper.Document
		inner := &mock.DocumentWriter{
			WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
				written = doc
				return nil
			},
		}

		writer := scraperslog.NewLoggingWriter(inner, logger)
		doc := &scraper.Document{
			SourceURL: "https://example.com/docs/guide",
			Filename:  "guide.md",
			Content:   "# Guide",
		}
		err := writer.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, written)
		output := buf.String()
		assert.Contains(t, output, "write document")
		assert.Contains(t, output, "file=guide.md")
		assert.Contains(t, output, "bytes=7")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentWriter{
			WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
				return scraper.Errorf(scraper.EINTERNAL, "disk full")
			},
		}

		writer := scraperslog.NewLoggingWriter(inner, logger)
		err := writer.WriteDocument(context.Background(), &scraper.Document{
			SourceURL: "https://example.com/docs/guide",
			Filename:  "guide.md",
			Content:   "# Guide",
		})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "write document")
		assert.Contains(t, output, "disk full")
	})
}
