// Package blueprint provides read access to a catalog of prompt template
// files ("blueprints") stored as markdown in a single directory. The
// filesystem is the source of truth: blueprints are created and removed by
// whoever edits the directory, and this package only ever reads them.
package blueprint

import (
	"fmt"
	"os"
)

// Blueprint is a single selectable catalog entry. Name is the filename and
// acts as the unique identifier. Preview is derived when the catalog is
// listed; Content is read from disk on demand.
type Blueprint struct {
	// Name is the file name within the catalog directory, e.g. "001_persona.md".
	Name string

	// Preview is a short human-readable summary: either the entry from the
	// catalog's metadata file, or the trimmed first non-empty line of the
	// blueprint itself. Empty files have an empty preview.
	Preview string

	path string
}

// Content reads and returns the full blueprint text. The content is never
// cached or truncated.
func (b Blueprint) Content() (string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return "", fmt.Errorf("blueprint: read %s: %w", b.Name, err)
	}
	return string(data), nil
}

// Path returns the absolute location of the blueprint file on disk.
func (b Blueprint) Path() string {
	return b.path
}
