// Package session persists the small bits of per-user client state
// that survive between runs, currently just the last-selected list.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const sessionFileName = "session.json"

// State is what gets written to disk.
type State struct {
	ActiveListID string    `json:"active_list_id"`
	SavedAt      time.Time `json:"saved_at"`
}

// Dir is the directory session state lives in. Empty means ~/.handla.
type Store struct {
	Dir string
}

func (s Store) dir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".handla"), nil
}

func (s Store) path() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

// Load returns the saved state, or nil when none exists yet.
// HANDLA_LIST overrides the file.
func (s Store) Load() (*State, error) {
	if env := strings.TrimSpace(os.Getenv("HANDLA_LIST")); env != "" {
		return &State{ActiveListID: env}, nil
	}

	p, err := s.path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // no prior session
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &st, nil
}

// Save writes the state with owner-only permissions.
func (s Store) Save(st State) error {
	if strings.TrimSpace(st.ActiveListID) == "" {
		return fmt.Errorf("empty list id")
	}
	dir, err := s.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	st.SavedAt = time.Now()
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	p := filepath.Join(dir, sessionFileName)
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Clear removes the saved state; a missing file is fine.
func (s Store) Clear() error {
	p, err := s.path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
