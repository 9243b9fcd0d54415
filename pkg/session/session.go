// Package session holds the current bearer token for the running process.
//
// The CLI analogue of tab-scoped browser storage: a token lives in a small
// file under the user's home directory (or only in memory) and disappears on
// logout. Callers that clear the session are responsible for driving any
// dependent view state in the same step.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store owns the lifecycle of the session token.
type Store interface {
	// Token returns the current token, or ok=false when no session exists.
	Token() (tok string, ok bool)
	// SetToken replaces the current token.
	SetToken(tok string) error
	// Clear destroys the session. Clearing an absent session is a no-op.
	Clear() error
}

// MemStore keeps the token in memory only. Used in tests and wherever a
// strictly ephemeral session is wanted.
type MemStore struct {
	tok string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Token() (string, bool) { return s.tok, s.tok != "" }

func (s *MemStore) SetToken(tok string) error {
	s.tok = tok
	return nil
}

func (s *MemStore) Clear() error {
	s.tok = ""
	return nil
}

// FileStore persists the token to a file, with an environment variable taking
// precedence on reads so CI and scripts can inject a session without touching
// the file.
type FileStore struct {
	path   string
	envKey string
}

// NewFileStore creates a store backed by the file at path. envKey may be empty
// to disable the environment override.
func NewFileStore(path, envKey string) *FileStore {
	return &FileStore{path: path, envKey: envKey}
}

// DefaultPath returns ~/.gradia/token.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("session.DefaultPath: %w", err)
	}
	return filepath.Join(home, ".gradia", "token"), nil
}

func (s *FileStore) Token() (string, bool) {
	if s.envKey != "" {
		if tok := os.Getenv(s.envKey); tok != "" {
			return tok, true
		}
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(data))
	return tok, tok != ""
}

func (s *FileStore) SetToken(tok string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session.SetToken: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0o600); err != nil {
		return fmt.Errorf("session.SetToken: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}
