// Package logging routes diagnostic logs to a session-specific file so
// interactive output (catalog listings, prompts) stays clean. Each process
// run gets its own session ID; every component in the process shares the
// same log file.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

var (
	// Session ID for the current execution, shared across components.
	sessionID     string
	sessionIDOnce sync.Once
)

// getSessionID returns or creates the session ID for this execution.
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// Session is an initialized file-backed logging session. Closing it flushes
// and releases the log file; the slog default logger remains valid but
// subsequent writes after Close are discarded by the OS, so Close belongs at
// process exit.
type Session struct {
	id        string
	path      string
	file      *os.File
	closeOnce sync.Once
}

// Init opens the session log file under dir (default ~/.crucible/logs) and
// installs a text slog handler writing to it as the process default logger.
// Verbose lowers the handler level from Warn to Debug.
//
// If the log file cannot be created, logging falls back to stderr and the
// error is returned so callers can mention the degraded mode; the returned
// Session is still usable.
func Init(dir string, verbose bool) (*Session, error) {
	s := &Session{id: getSessionID()}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	file, err := s.open(dir)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return s, err
	}

	s.file = file
	s.path = file.Name()
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})))
	return s, nil
}

func (s *Session) open(dir string) (*os.File, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".crucible", "logs")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}

	path := filepath.Join(dir, s.id+"-crucible.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return file, nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Path returns the log file location, or "" in stderr fallback mode.
func (s *Session) Path() string {
	return s.path
}

// Close closes the log file. Safe to call multiple times.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.file != nil {
			err = s.file.Close()
		}
	})
	return err
}
