package fs

import (
	"context"
	"os"
	"path/filepath"

	scraper "github.com/c0d33ngr/gitbook-scraper"
)

// Ensure Writer implements scraper.DocumentWriter at compile time.
var _ scraper.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files into a single directory.
// The directory is created lazily on first write. Writes are full
// overwrites; no versioning or appending.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteDocument writes a document to disk, creating the output directory if
// it does not exist yet.
func (w *Writer) WriteDocument(ctx context.Context, doc *scraper.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return scraper.Errorf(scraper.EINTERNAL, "create output directory %q: %v", w.baseDir, err)
	}

	fullPath := filepath.Join(w.baseDir, doc.Filename)
	if err := os.WriteFile(fullPath, []byte(doc.Content), 0644); err != nil {
		return scraper.Errorf(scraper.EINTERNAL, "write %q: %v", fullPath, err)
	}
	return nil
}
