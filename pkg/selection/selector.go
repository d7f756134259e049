// Package selection resolves which blueprint the user wants: from the
// persisted memory of the previous run when possible, otherwise through an
// interactive numeric prompt or a name lookup.
package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/crucible-sh/crucible/pkg/blueprint"
	"github.com/crucible-sh/crucible/pkg/memory"
	"github.com/crucible-sh/crucible/pkg/output"
)

// ErrInvalidSelection indicates the user could not be resolved to a single
// blueprint: the retry budget for bad input was exhausted, a name query was
// ambiguous or matched nothing, or the catalog has nothing to select.
var ErrInvalidSelection = errors.New("selection: invalid selection")

// defaultMaxRetries bounds how many times a bad numeric input re-prompts
// before the operation fails.
const defaultMaxRetries = 3

// Selector resolves a blueprint from the catalog, consulting the memory
// store before falling back to an interactive prompt.
type Selector struct {
	catalog *blueprint.Catalog
	store   memory.Store

	reader     *bufio.Reader
	writer     io.Writer
	maxRetries int
}

// Option configures a Selector.
type Option func(*Selector)

// WithInput sets the reader user input comes from (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(s *Selector) {
		s.reader = bufio.NewReader(r)
	}
}

// WithOutput sets the writer prompts and listings go to (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Selector) {
		s.writer = w
	}
}

// WithMaxRetries sets the bad-input retry budget for the numeric prompt.
func WithMaxRetries(n int) Option {
	return func(s *Selector) {
		s.maxRetries = n
	}
}

// NewSelector creates a selector over the given catalog and memory store.
func NewSelector(catalog *blueprint.Catalog, store memory.Store, opts ...Option) *Selector {
	s := &Selector{
		catalog:    catalog,
		store:      store,
		reader:     bufio.NewReader(os.Stdin),
		writer:     os.Stdout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the blueprint to act on.
//
// With forcePrompt false, a memory record naming a blueprint still present
// in the catalog is returned directly without prompting. A record naming a
// vanished blueprint falls back to the interactive prompt rather than
// failing. With forcePrompt true, memory is ignored entirely.
//
// A successful interactive selection is persisted before returning, so that
// the memory file only ever names a blueprint the user actually chose.
func (s *Selector) Resolve(forcePrompt bool) (blueprint.Blueprint, error) {
	blueprints, err := s.catalog.List()
	if err != nil {
		return blueprint.Blueprint{}, err
	}

	if !forcePrompt {
		if b, ok := s.remembered(blueprints); ok {
			return b, nil
		}
	}

	selected, err := s.prompt(blueprints)
	if err != nil {
		return blueprint.Blueprint{}, err
	}

	s.persist(selected)
	return selected, nil
}

// ResolveByName returns the blueprint whose filename equals query, or, when
// no exact match exists, the single blueprint whose filename contains query
// (case-insensitive). Ambiguous queries list the candidates and fail.
// Memory is bypassed for lookup but updated on success, matching the
// interactive path.
func (s *Selector) ResolveByName(query string) (blueprint.Blueprint, error) {
	blueprints, err := s.catalog.List()
	if err != nil {
		return blueprint.Blueprint{}, err
	}

	var matches []blueprint.Blueprint
	lowered := strings.ToLower(query)
	for _, b := range blueprints {
		if b.Name == query {
			matches = []blueprint.Blueprint{b}
			break
		}
		if strings.Contains(strings.ToLower(b.Name), lowered) {
			matches = append(matches, b)
		}
	}

	switch len(matches) {
	case 0:
		return blueprint.Blueprint{}, fmt.Errorf("%w: no blueprint matches %q", ErrInvalidSelection, query)
	case 1:
		s.persist(matches[0])
		return matches[0], nil
	default:
		var names []string
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return blueprint.Blueprint{}, fmt.Errorf("%w: %q matches multiple blueprints: %s",
			ErrInvalidSelection, query, strings.Join(names, ", "))
	}
}

// remembered returns the blueprint named by the memory store if it is still
// present in the catalog.
func (s *Selector) remembered(blueprints []blueprint.Blueprint) (blueprint.Blueprint, bool) {
	name, ok, err := s.store.Last()
	if err != nil {
		slog.Warn("could not read selection memory", "error", err)
		return blueprint.Blueprint{}, false
	}
	if !ok {
		return blueprint.Blueprint{}, false
	}
	for _, b := range blueprints {
		if b.Name == name {
			return b, true
		}
	}
	// Remembered blueprint was deleted from the catalog; fall back to the
	// interactive prompt.
	return blueprint.Blueprint{}, false
}

// prompt displays the catalog and reads a 1-based numeric index, re-prompting
// on invalid input until the retry budget is exhausted.
func (s *Selector) prompt(blueprints []blueprint.Blueprint) (blueprint.Blueprint, error) {
	if len(blueprints) == 0 {
		return blueprint.Blueprint{}, fmt.Errorf("%w: catalog is empty", ErrInvalidSelection)
	}

	fmt.Fprint(s.writer, output.RenderListing(blueprints))

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		fmt.Fprint(s.writer, "Select blueprint number: ")

		line, err := s.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return blueprint.Blueprint{}, fmt.Errorf("selection: read input: %w", err)
		}
		input := strings.TrimSpace(line)

		index, convErr := strconv.Atoi(input)
		if convErr == nil && index >= 1 && index <= len(blueprints) {
			return blueprints[index-1], nil
		}

		fmt.Fprintf(s.writer, "Invalid selection %q: enter a number between 1 and %d\n", input, len(blueprints))

		if err == io.EOF {
			break // input stream ended, nothing more to read
		}
	}

	return blueprint.Blueprint{}, fmt.Errorf("%w: no valid choice after %d attempts", ErrInvalidSelection, s.maxRetries)
}

// persist records the selection. Persistence is best-effort: a selection the
// user already made should not fail because the memory file could not be
// written.
func (s *Selector) persist(b blueprint.Blueprint) {
	if err := s.store.SetLast(b.Name); err != nil {
		slog.Warn("could not persist selection memory", "blueprint", b.Name, "error", err)
	}
}
