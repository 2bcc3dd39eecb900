package mock

import scraper "github.com/c0d33ngr/gitbook-scraper"

var _ scraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of scraper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
