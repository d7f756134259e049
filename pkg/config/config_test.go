package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero settings", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "config.json"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s != (Settings{}) {
			t.Errorf("Expected zero settings, got %+v", s)
		}
	})

	t.Run("reads all fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
  "blueprint_dir": "/srv/blueprints",
  "memory_file": "/tmp/mem.json",
  "format": "yaml"
}`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s.BlueprintDir != "/srv/blueprints" {
			t.Errorf("Unexpected BlueprintDir %q", s.BlueprintDir)
		}
		if s.MemoryFile != "/tmp/mem.json" {
			t.Errorf("Unexpected MemoryFile %q", s.MemoryFile)
		}
		if s.Format != "yaml" {
			t.Errorf("Unexpected Format %q", s.Format)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{nope"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path); err == nil {
			t.Error("Expected an error for malformed config")
		}
	})
}
