package crawl

import (
	"context"
	"log/slog"
	"slices"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/fs"
)

// Crawler orchestrates a one-shot archival run: it fetches the start page,
// discovers the link set, and drives the Processor over every link,
// isolating failures per page.
type Crawler struct {
	Fetcher    scraper.Fetcher
	Discoverer scraper.LinkDiscoverer
	Processor  *Processor
	Logger     *slog.Logger

	// Sitemaps, when set, is consulted for the URL set before falling back
	// to start-page link discovery.
	Sitemaps scraper.URLSource
}

// Result holds the outcome of a crawl run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// Run executes the crawl described by cfg. Only two conditions abort the
// run: a failed start-page fetch and an empty discovered link set. Every
// other failure is confined to its page, logged, and counted in the result.
func (c *Crawler) Run(ctx context.Context, cfg scraper.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := c.logger()

	startURL, err := cfg.StartURL()
	if err != nil {
		return nil, err
	}

	logger.Info("starting extraction",
		"base_url", cfg.BaseURL,
		"start_url", startURL,
		"output_dir", cfg.OutputDir,
	)

	startHTML, err := c.Fetcher.Fetch(ctx, startURL)
	if err != nil {
		return nil, scraper.Errorf(scraper.EUNAVAILABLE, "failed to fetch the starting page %s: %s", startURL, scraper.ErrorMessage(err))
	}

	links := c.discoverLinks(ctx, startHTML, cfg.BaseURL)
	if !slices.Contains(links, startURL) {
		links = append(links, startURL)
		logger.Debug("added starting URL to processing list", "url", startURL)
	}
	if len(links) == 0 {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "no links found to process")
	}

	logger.Info("discovered link set", "count", len(links))

	var result Result
	var entries []fs.ManifestEntry

	for _, link := range links {
		page, err := c.processPage(ctx, link, cfg.BaseURL)
		if err != nil {
			logger.Error("page processing failed", "url", link, "err", err)
			result.Failed++
			continue
		}
		if page.Skipped {
			result.Skipped++
			continue
		}

		result.Saved++
		result.Bytes += page.Bytes
		entries = append(entries, fs.ManifestEntry{
			URL:      page.URL,
			File:     page.Filename,
			Selector: page.Selector,
			Hash:     page.Hash,
			Bytes:    page.Bytes,
		})
		logger.Info("saved page", "url", page.URL, "file", page.Filename, "selector", page.Selector)
	}

	if len(entries) > 0 {
		if err := fs.WriteManifest(cfg.OutputDir, cfg.BaseURL, entries); err != nil {
			logger.Error("failed to write manifest", "err", err)
		}
	}

	logger.Info("extraction completed",
		"saved", result.Saved,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return &result, nil
}

// discoverLinks builds the URL set for the run. The sitemap source is
// preferred when configured; any sitemap failure or empty result falls back
// to scanning the start page's markup. Discovery failures are soft: the
// start URL alone still gets processed.
func (c *Crawler) discoverLinks(ctx context.Context, startHTML, baseURL string) []string {
	logger := c.logger()

	if c.Sitemaps != nil {
		urls, err := c.Sitemaps.Discover(ctx, baseURL)
		if err != nil {
			logger.Warn("sitemap discovery failed, falling back to page links", "err", err)
		} else if len(urls) > 0 {
			logger.Debug("sitemap discovery succeeded", "count", len(urls))
			return urls
		}
	}

	links, err := c.Discoverer.DiscoverLinks(startHTML, baseURL)
	if err != nil {
		logger.Warn("link discovery failed", "err", err)
		return nil
	}
	return links
}

// processPage invokes the Processor with a panic boundary so one page's
// failure never halts the remainder of the run.
func (c *Crawler) processPage(ctx context.Context, pageURL, baseURL string) (result *PageResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = scraper.Errorf(scraper.EINTERNAL, "unexpected error processing %s: %v", pageURL, r)
		}
	}()
	return c.Processor.Process(ctx, pageURL, baseURL)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
