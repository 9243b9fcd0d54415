package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/naveenspark/gradia/internal/config"
	"github.com/naveenspark/gradia/internal/render"
	"github.com/naveenspark/gradia/internal/tui"
	"github.com/naveenspark/gradia/pkg/client"
	"github.com/naveenspark/gradia/pkg/logger"
	"github.com/naveenspark/gradia/pkg/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	godotenv.Load() //nolint:errcheck // a missing .env is the normal case

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Println("gradia " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "logout":
			return runLogout(cfg)
		case "export":
			return runExport(cfg, exportPath(args[1:]))
		default:
			return fmt.Errorf("unknown command %q (see 'gradia help')", args[0])
		}
	}
	return runTUI(cfg)
}

func printHelp() {
	fmt.Print(`gradia — terminal dashboard for your school profile

Usage:
  gradia                open the dashboard (prompts for login when needed)
  gradia export [path]  write the dashboard as SVG (default profile.svg)
  gradia logout         clear the stored session
  gradia version        show version

Environment:
  GRADIA_TOKEN      session token, overrides the token file
  GRADIA_DOMAIN     platform domain (default 01.gritlab.ax)
  GRADIA_CONFIG     path to a yaml config file
  GRADIA_LOG_LEVEL  debug, info, warn or error
`)
}

// exportPath resolves the optional export target argument.
func exportPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "profile.svg"
}

// logPath resolves where the log file lives: config override or
// ~/.gradia/gradia.log next to the token.
func logPath(cfg *config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".gradia", "gradia.log"), nil
}

// newClient wires the session store, file logger and API client together.
// The returned cleanup closes the log file.
func newClient(cfg *config.Config) (*client.Client, session.Store, func(), error) {
	tokenFile := cfg.TokenFile
	if tokenFile == "" {
		var err error
		tokenFile, err = session.DefaultPath()
		if err != nil {
			return nil, nil, nil, err
		}
	}
	store := session.NewFileStore(tokenFile, "GRADIA_TOKEN")

	log := logger.Nop()
	cleanup := func() {}
	if path, err := logPath(cfg); err == nil {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0700); mkErr == nil {
			if f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600); openErr == nil {
				log = logger.New(f, cfg.LogLevel)
				cleanup = func() { f.Close() } //nolint:errcheck
			}
		}
	}

	c := client.New(cfg.SigninURL(), cfg.GraphQLURL(), store, client.WithLogger(log))
	return c, store, cleanup, nil
}

func runTUI(cfg *config.Config) error {
	c, _, cleanup, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	app := tui.NewApp(c, cfg.ProfileURL())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout(cfg *config.Config) error {
	_, store, cleanup, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := store.Token(); !ok {
		fmt.Println("Already logged out.")
		return nil
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

func runExport(cfg *config.Config, path string) error {
	c, _, cleanup, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	dash, err := c.FetchDashboard(context.Background())
	if err != nil {
		if client.IsAuthFailure(err) {
			return fmt.Errorf("no usable session — run 'gradia' and sign in first")
		}
		return fmt.Errorf("load dashboard: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	if err := render.SVG(f, dash, float64(cfg.ExportWidth), float64(cfg.ExportHeight)); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Printf("Exported dashboard for %s to %s\n", dash.User.Login, path)
	return nil
}
