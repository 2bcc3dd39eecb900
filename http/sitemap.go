package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// Ensure SitemapService implements scraper.URLSource at compile time.
var _ scraper.URLSource = (*SitemapService)(nil)

// SitemapService discovers documentation URLs from a site's sitemap.
// It checks robots.txt for Sitemap directives, falls back to /sitemap.xml,
// resolves sitemap indexes recursively, and keeps only URLs within the base
// URL's path prefix.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// Discover finds all URLs from the site's sitemap that fall under baseURL's
// path prefix. Returns an empty slice (not nil) when no sitemap exists.
func (s *SitemapService) Discover(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the docs path.
	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seen := make(map[string]bool)
	var urls []string
	for _, sitemapURL := range sitemapURLs {
		found, err := s.collectURLs(ctx, sitemapURL, 0, seen)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}

	if pathPrefix == "" {
		return urls, nil
	}

	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		if strings.HasPrefix(parsed.Path, pathPrefix) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// findSitemapURLs returns sitemap locations from robots.txt Sitemap
// directives, falling back to the conventional /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.String() + "/robots.txt"

	body, status, err := s.get(ctx, robotsURL)
	if err == nil && status == http.StatusOK {
		var sitemaps []string
		scanner := bufio.NewScanner(strings.NewReader(body))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if len(line) < len("sitemap:") || !strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
				continue
			}
			loc := strings.TrimSpace(line[len("sitemap:"):])
			if loc != "" {
				sitemaps = append(sitemaps, loc)
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}

	fallback := root.String() + "/sitemap.xml"
	if _, status, err := s.get(ctx, fallback); err == nil && status == http.StatusOK {
		return []string{fallback}, nil
	}

	return nil, nil
}

// collectURLs fetches one sitemap document and returns the page URLs it
// lists, recursing into sitemap indexes.
func (s *SitemapService) collectURLs(ctx context.Context, sitemapURL string, depth int, seen map[string]bool) ([]string, error) {
	if depth >= maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, status, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, scraper.Errorf(scraper.EUNAVAILABLE, "HTTP %d for sitemap %s", status, sitemapURL)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}

	rootEl := doc.Root()
	if rootEl == nil {
		return nil, nil
	}

	switch rootEl.Tag {
	case "sitemapindex":
		var urls []string
		for _, sm := range rootEl.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested, err := s.collectURLs(ctx, strings.TrimSpace(loc.Text()), depth+1, seen)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	case "urlset":
		var urls []string
		for _, u := range rootEl.SelectElements("url") {
			loc := u.SelectElement("loc")
			if loc == nil {
				continue
			}
			if text := strings.TrimSpace(loc.Text()); text != "" {
				urls = append(urls, text)
			}
		}
		return urls, nil
	default:
		return nil, scraper.Errorf(scraper.EINVALID, "unexpected sitemap root element %q in %s", rootEl.Tag, sitemapURL)
	}
}

func (s *SitemapService) get(ctx context.Context, rawURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, scraper.Errorf(scraper.EINVALID, "invalid request for %s: %v", rawURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, scraper.Errorf(scraper.EUNAVAILABLE, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, scraper.Errorf(scraper.EUNAVAILABLE, "read body of %s: %v", rawURL, err)
	}

	return string(body), resp.StatusCode, nil
}
