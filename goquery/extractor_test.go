package goquery_test

import (
	"testing"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Extractor implements scraper.Extractor.
var _ scraper.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers main over other candidate regions", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="content"><p>Sidebar summary</p></div>
<main><p>Primary documentation text</p></main>
<article><p>Secondary article</p></article>
</body>
</html>`

		ext := goquery.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "main", result.Selector)
		assert.Contains(t, result.ContentHTML, "Primary documentation text")
		assert.NotContains(t, result.ContentHTML, "Sidebar summary")
	})

	t.Run("matches documentation renderer classes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="markdown-body"><p>Rendered docs</p></div></body></html>`

		ext := goquery.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, ".markdown-body", result.Selector)
		assert.Contains(t, result.ContentHTML, "Rendered docs")
	})

	t.Run("uses first structural match when several selectors apply", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>In article</p></article><div id="content"><p>In div</p></div></body></html>`

		ext := goquery.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "article", result.Selector)
	})

	t.Run("falls back to body when no selector matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="unrelated"><p>Loose content</p></div></body></html>`

		ext := goquery.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, scraper.SelectorBodyFallback, result.Selector)
		assert.Contains(t, result.ContentHTML, "Loose content")
	})

	t.Run("removes direct-child nav but keeps nested navs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<nav><a href="/docs/a">Chrome link</a></nav>
<p>Kept paragraph</p>
<section><nav><a href="/docs/b">Nested nav link</a></nav></section>
</main></body></html>`

		ext := goquery.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Chrome link")
		assert.Contains(t, result.ContentHTML, "Kept paragraph")
		assert.Contains(t, result.ContentHTML, "Nested nav link")
	})

	t.Run("empty input is an error", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		_, err := ext.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	})
}
