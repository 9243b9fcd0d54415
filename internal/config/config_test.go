package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := New()
	if c.SigninURL() != "https://01.gritlab.ax/api/auth/signin" {
		t.Errorf("SigninURL() = %q", c.SigninURL())
	}
	if c.GraphQLURL() != "https://01.gritlab.ax/api/graphql-engine/v1/graphql" {
		t.Errorf("GraphQLURL() = %q", c.GraphQLURL())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRADIA_CONFIG", "")
	t.Setenv("GRADIA_DOMAIN", "01.example.org")
	t.Setenv("GRADIA_LOG_LEVEL", "debug")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Domain != "01.example.org" {
		t.Errorf("Domain = %q, want env override", c.Domain)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
	// Untouched fields keep their defaults.
	if c.SigninPath != "/api/auth/signin" {
		t.Errorf("SigninPath = %q, want default", c.SigninPath)
	}
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradia.yaml")
	yaml := "domain: file.example.org\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADIA_CONFIG", path)
	t.Setenv("GRADIA_DOMAIN", "env.example.org")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Domain != "env.example.org" {
		t.Errorf("Domain = %q, env must beat file", c.Domain)
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want file value", c.LogLevel)
	}
}

func TestLoadNormalizesDomain(t *testing.T) {
	t.Setenv("GRADIA_CONFIG", "")
	t.Setenv("GRADIA_DOMAIN", "https://01.example.org/")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Domain != "01.example.org" {
		t.Errorf("Domain = %q, want scheme and slash stripped", c.Domain)
	}
}

func TestLoadRejectsEmptyDomain(t *testing.T) {
	t.Setenv("GRADIA_CONFIG", "")
	t.Setenv("GRADIA_DOMAIN", "   ")
	if _, err := Load(); err == nil {
		t.Error("Load() accepted a blank domain")
	}
}
