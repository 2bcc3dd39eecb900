package scraper

import "net/url"

// Default crawl configuration values.
const (
	DefaultBaseURL   = "https://developers.make.com/api-documentation"
	DefaultStartPath = "/api-documentation/getting-started"
	DefaultOutputDir = "extracted_docs"
)

// Config holds the three values that define a crawl run. It is passed
// explicitly into the orchestrator so multiple configurations can coexist
// in one process.
type Config struct {
	// BaseURL is the root URL defining the crawl's domain and path boundary.
	// Only links within it are followed.
	BaseURL string

	// StartPath is the path, relative to BaseURL's host, identifying the
	// first page to fetch and the seed for link discovery.
	StartPath string

	// OutputDir is the directory markdown files are written to.
	// Created lazily on first write if absent.
	OutputDir string
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		StartPath: DefaultStartPath,
		OutputDir: DefaultOutputDir,
	}
}

// Validate returns an error if the config cannot drive a crawl.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Errorf(EINVALID, "invalid base URL %q: %v", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	if c.StartPath == "" {
		return Errorf(EINVALID, "start path required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	return nil
}

// StartURL resolves the start path against the base URL.
func (c *Config) StartURL() (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", c.BaseURL, err)
	}
	ref, err := url.Parse(c.StartPath)
	if err != nil {
		return "", Errorf(EINVALID, "invalid start path %q: %v", c.StartPath, err)
	}
	return base.ResolveReference(ref).String(), nil
}
