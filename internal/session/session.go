// Package session persists the bearer token issued at login. The token is
// the only durable client-side state; everything else lives in memory for
// the duration of a command.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nyunja/fity-cli/internal/common"
)

// Session carries the credentials attached to every backend request. Login
// populates it, logout clears it.
type Session struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
	Email   string    `json:"email,omitempty"`
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Load reads the saved session. Returns ErrNotAuthenticated when no session
// has been saved yet.
func Load() (*Session, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get session file path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.Token == "" {
		return nil, common.ErrNotAuthenticated
	}

	return &s, nil
}

// Save writes a new session after a successful login or registration.
func Save(token, email string) (*Session, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get session file path: %w", err)
	}

	s := &Session{
		Token:   token,
		Email:   email,
		SavedAt: time.Now(),
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0600); err != nil { // Owner only
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Debug("Saved session", "path", path, "email", email)

	return s, nil
}

// Clear removes the saved session. Clearing an absent session is not an
// error.
func Clear() error {
	path, err := stateFilePath()
	if err != nil {
		return fmt.Errorf("failed to get session file path: %w", err)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func stateFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	// Use XDG_DATA_HOME if set, otherwise ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}

	fityDir := filepath.Join(dataDir, "fity")
	if err := os.MkdirAll(fityDir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(fityDir, "session.json"), nil
}
