package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL   string        `arg:"" optional:"" help:"Root URL that scopes the crawl (default: Make.com API docs)"`
	StartPath string        `short:"s" help:"Path of the page scanned for links (default: getting started page)"`
	OutputDir string        `short:"o" help:"Directory markdown files are written to (default: extracted_docs)"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `help:"User-Agent header sent with every request"`
	Extractor string        `default:"selector" enum:"selector,readability" help:"Content extraction strategy"`
	Sitemap   bool          `help:"Prefer the site's sitemap for URL discovery"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
}
