package crawl_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/crawl"
	"github.com/c0d33ngr/gitbook-scraper/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_Process(t *testing.T) {
	t.Parallel()

	const (
		baseURL = "https://example.com/docs"
		pageURL = "https://example.com/docs/guide"
	)

	t.Run("writes converted content", func(t *testing.T) {
		t.Parallel()

		var written *scraper.Document
		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					assert.Equal(t, pageURL, url)
					return "<html><body><main><p>Hello</p></main></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					return &scraper.ExtractResult{ContentHTML: "<main><p>Hello</p></main>", Selector: "main"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "Hello", nil
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					written = doc
					return nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.NoError(t, err)
		require.NotNil(t, written)

		assert.Equal(t, "guide.md", written.Filename)
		assert.Equal(t, pageURL, written.SourceURL)
		assert.Equal(t, "Hello", written.Content)

		assert.False(t, result.Skipped)
		assert.Equal(t, "main", result.Selector)
		assert.Equal(t, "guide.md", result.Filename)
		assert.Equal(t, len("Hello"), result.Bytes)
		assert.NotEmpty(t, result.Hash)
	})

	t.Run("fetch failure writes nothing", func(t *testing.T) {
		t.Parallel()

		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", scraper.Errorf(scraper.EUNAVAILABLE, "HTTP 503 for %s", url)
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					t.Fatal("extractor should not run after a failed fetch")
					return nil, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					t.Fatal("converter should not run after a failed fetch")
					return "", nil
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					t.Fatal("writer should not run after a failed fetch")
					return nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, scraper.EUNAVAILABLE, scraper.ErrorCode(err))
	})

	t.Run("extraction failure falls back to raw HTML", func(t *testing.T) {
		t.Parallel()

		const rawHTML = "<html><body><p>raw page</p></body></html>"

		var converted string
		var written *scraper.Document
		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return rawHTML, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					return nil, scraper.Errorf(scraper.EINTERNAL, "parse failure")
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = html
					return "raw page", nil
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					written = doc
					return nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.NoError(t, err)
		require.NotNil(t, written)

		assert.Equal(t, rawHTML, converted)
		assert.NotEmpty(t, written.Content)
		assert.Equal(t, scraper.SelectorRawFallback, result.Selector)
	})

	t.Run("conversion failure keeps annotated content", func(t *testing.T) {
		t.Parallel()

		var written *scraper.Document
		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<main><p>Hello</p></main>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					return &scraper.ExtractResult{ContentHTML: "<main><p>Hello</p></main>", Selector: "main"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "", scraper.Errorf(scraper.EINTERNAL, "bad markup")
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					written = doc
					return nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.NoError(t, err)
		require.NotNil(t, written)

		assert.Contains(t, written.Content, "error converting HTML to Markdown")
		assert.Contains(t, written.Content, "<main><p>Hello</p></main>")
		assert.False(t, result.Skipped)
	})

	t.Run("empty document skips write", func(t *testing.T) {
		t.Parallel()

		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<main></main>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					return &scraper.ExtractResult{ContentHTML: "<main></main>", Selector: "main"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "   \n\t", nil
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					t.Fatal("writer should not run for an empty document")
					return nil
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Zero(t, result.Bytes)
	})

	t.Run("write failure propagates", func(t *testing.T) {
		t.Parallel()

		p := &crawl.Processor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<main><p>Hello</p></main>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*scraper.ExtractResult, error) {
					return &scraper.ExtractResult{ContentHTML: "<main><p>Hello</p></main>", Selector: "main"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "Hello", nil
				},
			},
			Writer: &mock.DocumentWriter{
				WriteDocumentFn: func(ctx context.Context, doc *scraper.Document) error {
					return scraper.Errorf(scraper.EINTERNAL, "disk full")
				},
			},
			Logger: discardLogger(),
		}

		result, err := p.Process(context.Background(), pageURL, baseURL)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, scraper.EINTERNAL, scraper.ErrorCode(err))
	})
}
