package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load layers configuration, low to high precedence:
//  1. defaults (New)
//  2. yaml file named by GRADIA_CONFIG, when set
//  3. environment variables with the GRADIA_ prefix (GRADIA_DOMAIN,
//     GRADIA_LOG_LEVEL, ...)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GRADIA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// GRADIA_SIGNIN_PATH -> signin_path; underscores match the koanf tags.
	envProvider := env.Provider("GRADIA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gradia_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	cfg.normalize()
	if cfg.Domain == "" {
		return nil, errors.New("domain must not be empty")
	}
	if cfg.ExportWidth <= 0 || cfg.ExportHeight <= 0 {
		return nil, errors.New("export dimensions must be positive")
	}
	return &cfg, nil
}
