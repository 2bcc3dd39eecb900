package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ManifestFilename is the name of the crawl manifest written alongside the
// markdown files.
const ManifestFilename = "manifest.json"

// ManifestEntry records one saved page. Entries carry no timestamps so that
// repeat runs over unchanged content produce byte-identical manifests.
type ManifestEntry struct {
	URL      string `json:"url"`
	File     string `json:"file"`
	Selector string `json:"selector"`
	Hash     string `json:"hash"`
	Bytes    int    `json:"bytes"`
}

// Manifest is the index of a completed crawl run.
type Manifest struct {
	BaseURL string          `json:"base_url"`
	Pages   []ManifestEntry `json:"pages"`
}

// WriteManifest writes the manifest into dir, sorted by filename for
// deterministic output. An existing manifest is overwritten.
func WriteManifest(dir, baseURL string, entries []ManifestEntry) error {
	sorted := make([]ManifestEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].URL < sorted[j].URL
	})

	m := Manifest{
		BaseURL: baseURL,
		Pages:   sorted,
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFilename), data, 0644)
}

// ReadManifest loads a manifest previously written by WriteManifest.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
