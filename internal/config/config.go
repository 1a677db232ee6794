// Package config handles configuration loading and validation for tada.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Themes accepted by the theme key.
var Themes = []string{"classic", "neon", "mono"}

// IDSchemes accepted by the id_scheme key.
var IDSchemes = []string{"sequence", "uuid"}

// Config holds the application configuration.
type Config struct {
	Theme         string `yaml:"theme" toml:"theme"`
	Placeholder   string `yaml:"placeholder" toml:"placeholder"`
	CharLimit     int    `yaml:"char_limit" toml:"char_limit"`         // 0 = unlimited
	ProgressWidth int    `yaml:"progress_width" toml:"progress_width"` // cells in the progress bar
	IDScheme      string `yaml:"id_scheme" toml:"id_scheme"`
	AltScreen     bool   `yaml:"alt_screen" toml:"alt_screen"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:         "classic",
		Placeholder:   "Add a new todo...",
		ProgressWidth: 28,
		IDScheme:      "sequence",
		AltScreen:     true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tada/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tada", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tada", "config.yml")
}

// Load reads configuration from path. A missing file yields the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// A non-empty theme replaces the file's theme before validation.
func Load(path, theme string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if theme != "" {
		cfg.Theme = theme
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults fills string fields a config file left blank.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.IDScheme == "" {
		c.IDScheme = defaults.IDScheme
	}
	if c.ProgressWidth == 0 {
		c.ProgressWidth = defaults.ProgressWidth
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Themes, strings.ToLower(c.Theme)) {
		errs = append(errs, fmt.Errorf("theme %q: must be one of %s", c.Theme, strings.Join(Themes, ", ")))
	}
	if !slices.Contains(IDSchemes, c.IDScheme) {
		errs = append(errs, fmt.Errorf("id_scheme %q: must be one of %s", c.IDScheme, strings.Join(IDSchemes, ", ")))
	}
	if c.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("char_limit: must not be negative, got %d", c.CharLimit))
	}
	if c.ProgressWidth < 0 {
		errs = append(errs, fmt.Errorf("progress_width: must not be negative, got %d", c.ProgressWidth))
	}
	return errors.Join(errs...)
}
