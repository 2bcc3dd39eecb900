package scraper

import (
	"net/url"
	"strings"
)

// skippedExtensions lists path suffixes that identify non-document assets.
// Links resolving to these are excluded from discovery.
var skippedExtensions = []string{".pdf", ".jpg", ".png", ".gif", ".zip"}

// NormalizeURL canonicalizes a raw href found on pageURL relative to baseURL.
// It resolves relative references, then rejects links that leave the crawl
// boundary: different scheme or host than baseURL, a path outside baseURL's
// path prefix, fragment-only and mailto links, and known non-document file
// extensions. Accepted URLs have query and fragment stripped.
//
// The trailing slash is preserved only when the resolved path already ended
// in "/" and is not the root path; no slash is ever added. This mirrors the
// original normalization rule rather than enforcing a single canonical form.
//
// The second return value is false when the href is rejected.
func NormalizeURL(rawHref string, pageURL, baseURL *url.URL) (string, bool) {
	href := strings.TrimSpace(rawHref)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := pageURL.ResolveReference(ref)

	if resolved.Scheme != baseURL.Scheme || resolved.Host != baseURL.Host {
		return "", false
	}
	if !strings.HasPrefix(resolved.Path, baseURL.Path) {
		return "", false
	}
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(resolved.Path, ext) {
			return "", false
		}
	}

	path := strings.TrimRight(resolved.Path, "/")
	if strings.HasSuffix(resolved.Path, "/") && resolved.Path != "/" {
		path += "/"
	}

	normalized := url.URL{
		Scheme: resolved.Scheme,
		Host:   resolved.Host,
		Path:   path,
	}
	return normalized.String(), true
}
