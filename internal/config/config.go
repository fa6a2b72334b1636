// Package config resolves postboard settings from flags, environment,
// an optional config file and built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"postboard/internal/board"
	"postboard/internal/loader"

	"github.com/rs/zerolog"
)

// Flag names. Config file keys and env vars map onto these.
const (
	FlagURL      = "url"
	FlagIDs      = "ids"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
	FlagFormat   = "format"
)

type Config struct {
	URL      string
	IDs      string
	LogFile  string
	LogLevel string
	Format   string
}

func Default() Config {
	return Config{
		URL:      loader.DefaultURL,
		IDs:      board.IDFromLength.String(),
		LogLevel: zerolog.InfoLevel.String(),
		Format:   "json",
	}
}

// Validate normalizes values and rejects unknown enums.
func (c *Config) Validate() error {
	c.URL = strings.TrimSpace(c.URL)
	if c.URL == "" {
		c.URL = loader.DefaultURL
	}
	if _, err := board.ParseIDPolicy(strings.TrimSpace(c.IDs)); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown format: %s (expected json|text)", c.Format)
	}
	return nil
}

func (c Config) IDPolicy() board.IDPolicy {
	p, _ := board.ParseIDPolicy(strings.TrimSpace(c.IDs))
	return p
}

func (c Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.postboard).
	if v := strings.TrimSpace(os.Getenv("POSTBOARD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".postboard"), nil
}

// DefaultPath returns <Dir>/config.toml.
func DefaultPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// Resolve layers the config file (explicit path, or the default path when it
// exists) and the environment over Default, skipping keys whose flag was set.
func Resolve(cfg *Config, path string, changed map[string]bool) error {
	if path == "" {
		if p := DefaultPath(); p != "" && fileExists(p) {
			path = p
		}
	}
	if path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		ApplyFile(cfg, fc, changed)
	}
	ApplyEnv(cfg, changed)
	return cfg.Validate()
}

// setter only writes values whose flag was not explicitly set.
type setter struct {
	changed map[string]bool
}

func (s setter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
