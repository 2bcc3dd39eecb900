package scraper

import "context"

// Document represents a crawled page converted to markdown, ready to be
// persisted. Its lifetime ends at the file write; nothing is kept across
// runs.
type Document struct {
	// SourceURL is the normalized URL the page was fetched from.
	SourceURL string

	// Filename is the derived file name, including extension.
	// Two distinct URLs that derive the same filename silently overwrite
	// each other; this is a documented limitation, not enforced uniqueness.
	Filename string

	// Content is the markdown text, written UTF-8 with full overwrite
	// semantics.
	Content string
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Filename == "" {
		return Errorf(EINVALID, "document filename required")
	}
	return nil
}

// DocumentWriter persists documents to storage.
type DocumentWriter interface {
	// WriteDocument writes a document, creating the output directory if
	// it does not exist yet. An existing file with the same name is
	// overwritten.
	WriteDocument(ctx context.Context, doc *Document) error
}
