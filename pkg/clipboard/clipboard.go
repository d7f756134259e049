// Package clipboard transfers blueprint content to the system clipboard
// through the platform clipboard utility (pbcopy, xclip, xsel, ...).
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the platform clipboard utility is missing or
// failed. Callers surface this to the user rather than swallowing it; the
// only side effect of a copy is the clipboard itself, so a failed copy
// leaves no state to clean up.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Copier writes text to the system clipboard.
type Copier interface {
	// Copy places the full, untruncated content on the clipboard.
	Copy(content string) error
}

// System is the production Copier backed by the platform clipboard utility.
type System struct{}

// NewSystem returns a Copier that uses the platform clipboard.
func NewSystem() System {
	return System{}
}

// Copy writes content to the system clipboard. Content of any length is
// passed through whole.
func (System) Copy(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found (install xclip or xsel on Linux)", ErrUnavailable)
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
