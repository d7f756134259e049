package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crucible-sh/crucible/pkg/blueprint"
	"github.com/crucible-sh/crucible/pkg/tokens"
)

var (
	indexStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
)

// ListingOption configures RenderListing.
type ListingOption func(*listing)

type listing struct {
	counter *tokens.Counter
}

// WithTokenCounts annotates each entry with its token count.
func WithTokenCounts(counter *tokens.Counter) ListingOption {
	return func(l *listing) {
		l.counter = counter
	}
}

// RenderListing formats the catalog as numbered lines of
// "index: name - preview", 1-based to match interactive selection.
func RenderListing(blueprints []blueprint.Blueprint, opts ...ListingOption) string {
	var l listing
	for _, opt := range opts {
		opt(&l)
	}

	var sb strings.Builder
	for i, b := range blueprints {
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%d:", i+1)))
		sb.WriteString(" ")
		sb.WriteString(nameStyle.Render(b.Name))
		if b.Preview != "" {
			sb.WriteString(" - ")
			sb.WriteString(previewStyle.Render(b.Preview))
		}
		if l.counter != nil {
			if content, err := b.Content(); err == nil {
				sb.WriteString(" ")
				sb.WriteString(tokenStyle.Render(fmt.Sprintf("(%d tokens)", l.counter.Count(content))))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
