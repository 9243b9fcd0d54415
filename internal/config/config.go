// Package config holds process configuration for the gradia CLI.
package config

import "strings"

// Config is the full process configuration. Defaults target the school
// platform the client was written against; everything is overridable via
// yaml file or environment.
type Config struct {
	// Domain of the platform, e.g. "01.gritlab.ax".
	Domain string `koanf:"domain"`

	// SigninPath is the identity endpoint path on Domain.
	SigninPath string `koanf:"signin_path"`

	// GraphQLPath is the data endpoint path on Domain.
	GraphQLPath string `koanf:"graphql_path"`

	// TokenFile overrides where the session token lives. Empty means
	// ~/.gradia/token.
	TokenFile string `koanf:"token_file"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile overrides where logs go. Empty means ~/.gradia/gradia.log.
	LogFile string `koanf:"log_file"`

	// ExportWidth and ExportHeight size the XP chart in SVG exports.
	ExportWidth  int `koanf:"export_width"`
	ExportHeight int `koanf:"export_height"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		Domain:       "01.gritlab.ax",
		SigninPath:   "/api/auth/signin",
		GraphQLPath:  "/api/graphql-engine/v1/graphql",
		LogLevel:     "info",
		ExportWidth:  800,
		ExportHeight: 400,
	}
}

// SigninURL is the full identity endpoint URL.
func (c *Config) SigninURL() string {
	return "https://" + c.Domain + c.SigninPath
}

// GraphQLURL is the full data endpoint URL.
func (c *Config) GraphQLURL() string {
	return "https://" + c.Domain + c.GraphQLPath
}

// ProfileURL is the web profile page, for the open-in-browser key.
func (c *Config) ProfileURL() string {
	return "https://" + c.Domain + "/profile"
}

// normalize trims stray whitespace and leading scheme from Domain so URL
// building stays predictable.
func (c *Config) normalize() {
	c.Domain = strings.TrimSpace(c.Domain)
	c.Domain = strings.TrimPrefix(c.Domain, "https://")
	c.Domain = strings.TrimPrefix(c.Domain, "http://")
	c.Domain = strings.TrimSuffix(c.Domain, "/")
}
