package blueprint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCatalogUnavailable indicates the blueprint directory is missing or
// cannot be read at all. An existing but empty directory is not an error.
var ErrCatalogUnavailable = errors.New("blueprint: catalog unavailable")

// ErrNotFound indicates no blueprint with the requested name exists.
var ErrNotFound = errors.New("blueprint: not found")

// metadataFile is an optional companion file inside the catalog directory
// mapping blueprint filenames to human-readable summaries. When present, its
// summaries replace first-line previews and its ordering leads the listing.
const metadataFile = "blueprints.yaml"

// Catalog enumerates blueprint files in a directory.
type Catalog struct {
	dir string
}

// NewCatalog returns a catalog rooted at dir. The directory is not checked
// until List or Get is called.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the catalog directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// List returns all *.md blueprints in the catalog, sorted by filename for
// determinism. When a parseable blueprints.yaml is present, entries listed
// there come first in metadata order with their summaries as previews, and
// any unlisted markdown files follow in sorted order. An empty directory
// yields an empty slice, not an error.
func (c *Catalog) List() ([]Blueprint, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	meta := c.loadMetadata()

	var blueprints []Blueprint
	listed := make(map[string]bool, len(meta))

	// Metadata order leads the listing when summaries are available.
	for _, m := range meta {
		path := filepath.Join(c.dir, m.name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue // stale metadata entry, file was removed
		}
		listed[m.name] = true
		blueprints = append(blueprints, Blueprint{
			Name:    m.name,
			Preview: m.summary,
			path:    path,
		})
	}

	for _, name := range names {
		if listed[name] {
			continue
		}
		path := filepath.Join(c.dir, name)
		blueprints = append(blueprints, Blueprint{
			Name:    name,
			Preview: firstLine(path),
			path:    path,
		})
	}

	return blueprints, nil
}

// Get returns the blueprint with the exact given filename, or ErrNotFound.
func (c *Catalog) Get(name string) (Blueprint, error) {
	blueprints, err := c.List()
	if err != nil {
		return Blueprint{}, err
	}
	for _, b := range blueprints {
		if b.Name == name {
			return b, nil
		}
	}
	return Blueprint{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

type metaEntry struct {
	name    string
	summary string
}

// loadMetadata reads blueprints.yaml if present. Any failure (missing file,
// bad YAML, wrong shape) silently falls back to first-line previews.
func (c *Catalog) loadMetadata() []metaEntry {
	data, err := os.ReadFile(filepath.Join(c.dir, metadataFile))
	if err != nil {
		return nil
	}

	// Decode through yaml.Node to preserve the order the file was written in.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	mapping := doc.Content[0]
	var meta []metaEntry
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			continue
		}
		meta = append(meta, metaEntry{name: key.Value, summary: value.Value})
	}
	return meta
}

// firstLine extracts the trimmed first non-empty line of the file, or ""
// when the file is empty or unreadable.
func firstLine(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
