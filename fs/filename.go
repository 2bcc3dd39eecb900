// Package fs provides file-based persistence for converted documentation
// pages: filename derivation, document writing, and the crawl manifest.
package fs

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocExtension is appended to every derived filename.
const DocExtension = ".md"

// Fallback names used when derivation cannot produce a usable filename.
const (
	fallbackBasename = "untitled_page"
	errorFilename    = "error_url" + DocExtension
)

var (
	unsafeURLChars   = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	unsafeTitleChars = regexp.MustCompile(`[^a-zA-Z0-9\-_ ]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// FromURL derives a filesystem-safe filename from a page URL. The base URL's
// path prefix is stripped, the final path segment is sanitized to
// [A-Za-z0-9_-], and the document extension is appended. An empty remainder
// yields "index"; a fully sanitized-away segment yields "untitled_page".
//
// Pure function of its inputs: the same URL and base always derive the same
// name, and distinct URLs may collide. Collisions silently overwrite, which
// is a documented limitation of the output mapping.
func FromURL(pageURL, baseURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return errorFilename
	}
	b, err := url.Parse(baseURL)
	if err != nil {
		return errorFilename
	}

	pagePath := strings.TrimRight(u.Path, "/")
	basePath := strings.TrimRight(b.Path, "/")

	relative := pagePath
	if strings.HasPrefix(pagePath, basePath) {
		relative = pagePath[len(basePath):]
	}

	segment := "index"
	if relative != "" {
		segment = path.Base(relative)
	}

	safe := unsafeURLChars.ReplaceAllString(segment, "_")
	safe = strings.Trim(safe, "._-")

	if safe == "" {
		safe = fallbackBasename
	}
	if strings.HasPrefix(safe, ".") || strings.HasPrefix(safe, "-") {
		safe = "page_" + safe
	}

	return safe + DocExtension
}

// FromTitle derives a filename from the page's title element. It is a manual
// fallback for URLs that derive unhelpful names and is not invoked by the
// main pipeline. The defaultName is used when the title is absent or
// sanitizes to nothing.
func FromTitle(html, defaultName string) string {
	if strings.TrimSpace(html) == "" {
		return defaultName + DocExtension
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return defaultName + DocExtension
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return defaultName + DocExtension
	}

	safe := unsafeTitleChars.ReplaceAllString(title, "")
	safe = whitespaceRuns.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, "._-")

	if safe == "" {
		safe = defaultName
	}

	return safe + DocExtension
}
