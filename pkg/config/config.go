// Package config loads persistent user settings for the Crucible CLI.
// Settings are the lowest-priority layer: command-line flags and environment
// variables always win over the config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds user defaults from ~/.crucible/config.json. All fields are
// optional; zero values mean "no preference".
type Settings struct {
	// BlueprintDir is the default catalog directory.
	BlueprintDir string `json:"blueprint_dir,omitempty"`

	// MemoryFile is the default selection memory location.
	MemoryFile string `json:"memory_file,omitempty"`

	// Format is the default output format (text, json, yaml).
	Format string `json:"format,omitempty"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".crucible", "config.json"), nil
}

// Load reads settings from path (DefaultPath when empty). A missing file
// yields zero settings, not an error; a malformed file is an error, since
// silently ignoring explicit configuration would be surprising.
func Load(path string) (Settings, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Settings{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}
