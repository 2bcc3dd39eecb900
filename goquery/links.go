package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// Ensure LinkDiscoverer implements scraper.LinkDiscoverer at compile time.
var _ scraper.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer extracts same-domain page links from HTML.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks scans all anchors in the markup and returns the normalized
// URLs accepted by scraper.NormalizeURL, duplicate-free, in document order.
// Malformed hrefs are skipped individually.
func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}

		normalized, ok := scraper.NormalizeURL(href, base, base)
		if !ok {
			return
		}

		if seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links, nil
}
