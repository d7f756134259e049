package memory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// record is the on-disk shape of the memory file.
type record struct {
	Version      string `json:"version"`
	LastSelected string `json:"last_selected"`
}

const recordVersion = "1"

// FileStore implements Store using a single JSON file.
//
// The file is read in full on every Last call and replaced atomically
// (temp file + rename) on every SetLast, so a crashed write never leaves a
// partial record behind. There is no cross-process locking: concurrent
// invocations are not a supported scenario and the last writer wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed memory store at path.
// If path is empty, defaults to ~/.crucible/memory.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("memory: resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".crucible", "memory.json")
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the memory file.
func (s *FileStore) Path() string {
	return s.path
}

// Last reads the remembered blueprint name from disk. A missing file means
// no memory yet. A corrupt or unparseable file is treated identically to a
// missing one: the record is disposable and interactive selection rebuilds it.
func (s *FileStore) Last() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("memory: read %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("memory file is corrupt, ignoring it", "path", s.path, "error", err)
		return "", false, nil
	}
	if rec.LastSelected == "" {
		return "", false, nil
	}
	return rec.LastSelected, true, nil
}

// SetLast overwrites the memory file with the given blueprint name,
// creating the parent directory on first use.
func (s *FileStore) SetLast(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("memory: create directory: %w", err)
	}

	data, err := json.MarshalIndent(record{Version: recordVersion, LastSelected: name}, "", "  ")
	if err != nil {
		return fmt.Errorf("memory: encode record: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("memory: write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("memory: atomic rename %s: %w", s.path, err)
	}
	return nil
}
