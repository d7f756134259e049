package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBlueprint(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write blueprint %s: %v", name, err)
	}
}

func TestCatalogList(t *testing.T) {
	t.Run("returns entries sorted by filename", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "002_b.md", "Title B\nbody")
		writeBlueprint(t, dir, "001_a.md", "Title A\nbody")
		writeBlueprint(t, dir, "010_c.md", "Title C")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}

		want := []string{"001_a.md", "002_b.md", "010_c.md"}
		if len(blueprints) != len(want) {
			t.Fatalf("Expected %d blueprints, got %d", len(want), len(blueprints))
		}
		for i, name := range want {
			if blueprints[i].Name != name {
				t.Errorf("Expected blueprints[%d] = %s, got %s", i, name, blueprints[i].Name)
			}
		}
	})

	t.Run("preview is the trimmed first non-empty line", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "a.md", "\n\n   # Domain Expert Persona   \nmore text")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if blueprints[0].Preview != "# Domain Expert Persona" {
			t.Errorf("Expected trimmed first line preview, got %q", blueprints[0].Preview)
		}
	})

	t.Run("empty file yields an empty preview", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "empty.md", "")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if blueprints[0].Preview != "" {
			t.Errorf("Expected empty preview, got %q", blueprints[0].Preview)
		}
	})

	t.Run("ignores non-markdown files and subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "a.md", "A")
		writeBlueprint(t, dir, "notes.txt", "not a blueprint")
		if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0755); err != nil {
			t.Fatal(err)
		}

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(blueprints) != 1 || blueprints[0].Name != "a.md" {
			t.Errorf("Expected only a.md, got %v", blueprints)
		}
	})

	t.Run("missing directory returns ErrCatalogUnavailable", func(t *testing.T) {
		_, err := NewCatalog(filepath.Join(t.TempDir(), "nope")).List()
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Errorf("Expected ErrCatalogUnavailable, got %v", err)
		}
	})

	t.Run("empty directory yields empty slice without error", func(t *testing.T) {
		blueprints, err := NewCatalog(t.TempDir()).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(blueprints) != 0 {
			t.Errorf("Expected no blueprints, got %d", len(blueprints))
		}
	})
}

func TestCatalogMetadata(t *testing.T) {
	t.Run("metadata summaries and ordering lead the listing", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "001_a.md", "First line A")
		writeBlueprint(t, dir, "002_b.md", "First line B")
		writeBlueprint(t, dir, "003_c.md", "First line C")
		writeBlueprint(t, dir, "blueprints.yaml",
			"002_b.md: Brainstorming prompts\n001_a.md: Persona blueprint\n")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}

		if len(blueprints) != 3 {
			t.Fatalf("Expected 3 blueprints, got %d", len(blueprints))
		}
		// YAML order first, then unlisted files in sorted order.
		if blueprints[0].Name != "002_b.md" || blueprints[0].Preview != "Brainstorming prompts" {
			t.Errorf("Unexpected first entry: %+v", blueprints[0])
		}
		if blueprints[1].Name != "001_a.md" || blueprints[1].Preview != "Persona blueprint" {
			t.Errorf("Unexpected second entry: %+v", blueprints[1])
		}
		if blueprints[2].Name != "003_c.md" || blueprints[2].Preview != "First line C" {
			t.Errorf("Unexpected third entry: %+v", blueprints[2])
		}
	})

	t.Run("stale metadata entries are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "001_a.md", "First line A")
		writeBlueprint(t, dir, "blueprints.yaml",
			"gone.md: Removed blueprint\n001_a.md: Persona blueprint\n")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(blueprints) != 1 || blueprints[0].Name != "001_a.md" {
			t.Errorf("Expected only 001_a.md, got %v", blueprints)
		}
	})

	t.Run("corrupt metadata falls back to first-line previews", func(t *testing.T) {
		dir := t.TempDir()
		writeBlueprint(t, dir, "001_a.md", "First line A")
		writeBlueprint(t, dir, "blueprints.yaml", "::: not yaml {{{")

		blueprints, err := NewCatalog(dir).List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if blueprints[0].Preview != "First line A" {
			t.Errorf("Expected first-line fallback, got %q", blueprints[0].Preview)
		}
	})
}

func TestCatalogGet(t *testing.T) {
	dir := t.TempDir()
	writeBlueprint(t, dir, "001_a.md", "Title A")

	catalog := NewCatalog(dir)

	t.Run("finds existing blueprint", func(t *testing.T) {
		b, err := catalog.Get("001_a.md")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if b.Name != "001_a.md" {
			t.Errorf("Expected 001_a.md, got %s", b.Name)
		}
	})

	t.Run("unknown name returns ErrNotFound", func(t *testing.T) {
		_, err := catalog.Get("missing.md")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestBlueprintContent(t *testing.T) {
	dir := t.TempDir()

	// Content must round-trip whole regardless of size.
	long := "# Big Blueprint\n" + strings.Repeat("x", 50_000)
	writeBlueprint(t, dir, "big.md", long)

	blueprints, err := NewCatalog(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	content, err := blueprints[0].Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if content != long {
		t.Errorf("Content was modified or truncated: got %d bytes, want %d", len(content), len(long))
	}
}
