package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStoreLifecycle(t *testing.T) {
	s := NewMemStore()
	if _, ok := s.Token(); ok {
		t.Error("fresh store reports a token")
	}
	if err := s.SetToken("abc.def.ghi"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	tok, ok := s.Token()
	if !ok || tok != "abc.def.ghi" {
		t.Errorf("Token() = %q, %v; want token, true", tok, ok)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Error("cleared store still reports a token")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileStore(path, "")

	if _, ok := s.Token(); ok {
		t.Error("empty file store reports a token")
	}
	if err := s.SetToken("abc.def.ghi"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	tok, ok := s.Token()
	if !ok || tok != "abc.def.ghi" {
		t.Errorf("Token() = %q, %v; want stored token, true", tok, ok)
	}

	// Trailing whitespace in the file must be trimmed.
	if err := os.WriteFile(path, []byte("  padded.tok.en \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	tok, _ = s.Token()
	if tok != "padded.tok.en" {
		t.Errorf("Token() = %q, want trimmed token", tok)
	}
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path, "")
	if err := s.SetToken("x.y.z"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Error("cleared file store still reports a token")
	}
}

func TestFileStoreEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path, "GRADIA_TEST_TOKEN")
	if err := s.SetToken("from.file.tok"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADIA_TEST_TOKEN", "from.env.tok")
	tok, ok := s.Token()
	if !ok || tok != "from.env.tok" {
		t.Errorf("Token() = %q, want env value to win", tok)
	}
}
