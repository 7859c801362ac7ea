package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerStore persists the session token to a file, the TUI equivalent of
// the browser's localStorage token entry. Losing the marker is harmless;
// it only exists so logout has something real to clear.
type MarkerStore struct {
	path string
}

// NewMarkerStore builds a store writing to the given path.
func NewMarkerStore(path string) *MarkerStore {
	return &MarkerStore{path: path}
}

// Write stores the token, creating parent directories as needed.
func (s *MarkerStore) Write(token string) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create marker dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}
	return nil
}

// Read returns the stored token, or "" when no marker exists.
func (s *MarkerStore) Read() (string, error) {
	if s.path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read marker: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Clear removes the marker. Clearing an absent marker is not an error.
func (s *MarkerStore) Clear() error {
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
