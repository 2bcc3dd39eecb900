// Package scraper provides a one-shot archiver for documentation websites.
// It crawls a documentation site starting from a single page, discovers
// linked pages within the same domain, extracts the main content region of
// each page, converts it to markdown, and writes one file per page to a
// local output directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package scraper
