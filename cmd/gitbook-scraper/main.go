package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	scraper "github.com/c0d33ngr/gitbook-scraper"
	"github.com/c0d33ngr/gitbook-scraper/crawl"
	"github.com/c0d33ngr/gitbook-scraper/fs"
	"github.com/c0d33ngr/gitbook-scraper/goquery"
	"github.com/c0d33ngr/gitbook-scraper/htmltomarkdown"
	scraperhttp "github.com/c0d33ngr/gitbook-scraper/http"
	"github.com/c0d33ngr/gitbook-scraper/readability"
	scraperslog "github.com/c0d33ngr/gitbook-scraper/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gitbook-scraper"),
		kong.Description("Archive a documentation site as local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := scraper.DefaultConfig()
	if cli.BaseURL != "" {
		cfg.BaseURL = cli.BaseURL
	}
	if cli.StartPath != "" {
		cfg.StartPath = cli.StartPath
	}
	if cli.OutputDir != "" {
		cfg.OutputDir = cli.OutputDir
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	opts := []scraperhttp.Option{scraperhttp.WithTimeout(timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, scraperhttp.WithUserAgent(cli.UserAgent))
	}
	httpFetcher := scraperhttp.NewFetcher(opts...)
	defer httpFetcher.Close()

	var fetcher scraper.Fetcher = httpFetcher
	var writer scraper.DocumentWriter = fs.NewWriter(cfg.OutputDir)
	if cli.Verbose {
		fetcher = scraperslog.NewLoggingFetcher(fetcher, logger)
		writer = scraperslog.NewLoggingWriter(writer, logger)
	}

	var extractor scraper.Extractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	crawler := &crawl.Crawler{
		Fetcher:    fetcher,
		Discoverer: goquery.NewLinkDiscoverer(),
		Processor: &crawl.Processor{
			Fetcher:   fetcher,
			Extractor: extractor,
			Converter: htmltomarkdown.NewConverter(),
			Writer:    writer,
			Logger:    logger,
		},
		Logger: logger,
	}
	if cli.Sitemap {
		crawler.Sitemaps = scraperhttp.NewSitemapService(nil)
	}

	result, err := crawler.Run(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved %d pages to %s (%d skipped, %d failed)\n",
		result.Saved, cfg.OutputDir, result.Skipped, result.Failed)
	return nil
}
