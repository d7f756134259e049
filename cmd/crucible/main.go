// Package main provides the Crucible CLI, a prompt blueprint library that
// lives in the terminal: pick a markdown prompt template from the catalog
// and it lands on the system clipboard, ready to paste into any model chat.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/crucible-sh/crucible/pkg/blueprint"
	"github.com/crucible-sh/crucible/pkg/clipboard"
	"github.com/crucible-sh/crucible/pkg/selection"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer closeLogging()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps the error taxonomy to distinct process exit codes so
// scripts can tell a missing catalog from a failed clipboard hand-off.
func exitCode(err error) int {
	switch {
	case errors.Is(err, blueprint.ErrCatalogUnavailable):
		return 2
	case errors.Is(err, selection.ErrInvalidSelection):
		return 3
	case errors.Is(err, clipboard.ErrUnavailable):
		return 4
	default:
		return 1
	}
}
