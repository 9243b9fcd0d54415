package main

import (
	"strings"
	"testing"

	"github.com/naveenspark/gradia/internal/config"
)

func TestExportPath(t *testing.T) {
	if got := exportPath(nil); got != "profile.svg" {
		t.Errorf("exportPath(nil) = %q, want default", got)
	}
	if got := exportPath([]string{"out.svg"}); got != "out.svg" {
		t.Errorf("exportPath = %q, want out.svg", got)
	}
	if got := exportPath([]string{""}); got != "profile.svg" {
		t.Errorf("exportPath with empty arg = %q, want default", got)
	}
}

func TestLogPathConfigOverride(t *testing.T) {
	cfg := config.New()
	cfg.LogFile = "/tmp/custom.log"
	got, err := logPath(cfg)
	if err != nil {
		t.Fatalf("logPath error: %v", err)
	}
	if got != "/tmp/custom.log" {
		t.Errorf("logPath = %q, want the config override", got)
	}
}

func TestLogPathDefaultUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	got, err := logPath(config.New())
	if err != nil {
		t.Fatalf("logPath error: %v", err)
	}
	if !strings.HasSuffix(got, "/.gradia/gradia.log") {
		t.Errorf("logPath = %q, want ~/.gradia/gradia.log", got)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("GRADIA_CONFIG", "")
	err := run([]string{"frobnicate"})
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error %q should name the bad command", err)
	}
}
