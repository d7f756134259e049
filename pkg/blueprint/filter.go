package blueprint

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter narrows a catalog listing. Search matches against both name and
// preview; Category matches against the leading portion of the filename.
// Both accept glob syntax (*, ?, [...]) and match case-insensitively; terms
// without glob metacharacters behave as plain substring / prefix matches.
type Filter struct {
	Search   string
	Category string
}

// IsZero reports whether the filter would pass everything through.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == ""
}

// Apply returns the blueprints matching the filter, preserving input order.
func (f Filter) Apply(blueprints []Blueprint) ([]Blueprint, error) {
	if f.IsZero() {
		return blueprints, nil
	}

	var search, category glob.Glob
	var err error

	if f.Search != "" {
		search, err = compileContains(f.Search)
		if err != nil {
			return nil, fmt.Errorf("blueprint: invalid search pattern %q: %w", f.Search, err)
		}
	}
	if f.Category != "" {
		category, err = compilePrefix(f.Category)
		if err != nil {
			return nil, fmt.Errorf("blueprint: invalid category pattern %q: %w", f.Category, err)
		}
	}

	var matched []Blueprint
	for _, b := range blueprints {
		if search != nil &&
			!search.Match(strings.ToLower(b.Name)) &&
			!search.Match(strings.ToLower(b.Preview)) {
			continue
		}
		if category != nil && !category.Match(strings.ToLower(b.Name)) {
			continue
		}
		matched = append(matched, b)
	}
	return matched, nil
}

// compileContains builds a match-anywhere glob from the term.
func compileContains(term string) (glob.Glob, error) {
	return glob.Compile("*" + strings.ToLower(term) + "*")
}

// compilePrefix builds a match-at-start glob from the term.
func compilePrefix(term string) (glob.Glob, error) {
	return glob.Compile(strings.ToLower(term) + "*")
}
