package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"termfolio/internal/app"
	"termfolio/internal/errors"
	"termfolio/internal/log"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the dashboard configuration.
type Config struct {
	TickRate Duration `yaml:"tick_rate" toml:"tick_rate"` // Period of the refresh tick
	Title    string   `yaml:"title" toml:"title"`         // Shown in the title bar
	Mouse    bool     `yaml:"mouse" toml:"mouse"`         // Report mouse events
	Theme    struct {
		Name string `yaml:"name" toml:"name"` // One of ListThemes()
	} `yaml:"theme" toml:"theme"`
	Log struct {
		Level string `yaml:"level" toml:"level"` // debug, info, warn or error
		File  string `yaml:"file" toml:"file"`   // Empty disables logging while the dashboard runs
		JSON  bool   `yaml:"json" toml:"json"`
	} `yaml:"log" toml:"log"`
	// Content replaces the built-in text of a section, keyed by section name.
	Content map[string][]string `yaml:"content,omitempty" toml:"content,omitempty"`
}

// Environment variables that override the file.
const (
	EnvTickRate = "TERMFOLIO_TICK_RATE"
	EnvTheme    = "TERMFOLIO_THEME"
	EnvLogFile  = "TERMFOLIO_LOG_FILE"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// DefaultPath returns $XDG_CONFIG_HOME/termfolio/config.yaml, falling back
// to ~/.config/termfolio/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termfolio", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "termfolio", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path. A missing
// file yields the defaults. Environment overrides are applied last.
func LoadConfigFile(path string) (*Config, error) {
	cfg, err := ReadConfigFile(path)
	if errors.IsConfigNotFound(err) {
		log.LogWithFields(log.F("path", path)).Debug("no config file, using defaults")
		return finish(New())
	}
	return cfg, err
}

// ReadConfigFile is LoadConfigFile for a file that must exist: a missing
// file is reported as a ConfigNotFound error.
func ReadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := New()
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func decode(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvTickRate); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.NewConfigError("invalid environment override", EnvTickRate, errors.InvalidConfig, err)
		}
		cfg.TickRate = Duration{d}
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{
		TickRate: Duration{250 * time.Millisecond},
		Title:    "termfolio",
		Mouse:    true,
		Content:  map[string][]string{},
	}
	cfg.Theme.Name = "default"
	cfg.Log.Level = "info"
	return cfg
}

// SaveConfig writes cfg to path as TOML when the path ends in .toml and as
// YAML otherwise. Parent directories are created.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal encodes cfg in the format implied by path's extension.
func Marshal(cfg *Config, path string) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return buf.Bytes(), nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.TickRate.Duration <= 0 {
		return errors.NewConfigError("tick rate must be positive", "tick_rate", errors.InvalidConfig, nil)
	}

	if _, ok := themes[c.Theme.Name]; !ok {
		return errors.NewConfigError(
			fmt.Sprintf("unknown theme %q (available: %s)", c.Theme.Name, strings.Join(ListThemes(), ", ")),
			"theme.name", errors.InvalidConfig, nil)
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		return errors.NewConfigError(fmt.Sprintf("unknown log level %q", c.Log.Level), "log.level", errors.InvalidConfig, nil)
	}

	for name := range c.Content {
		if _, ok := app.ParseSection(name); !ok {
			return errors.NewConfigError(fmt.Sprintf("unknown section %q", name), "content", errors.InvalidConfig, nil)
		}
	}

	return nil
}

// SectionContent returns the configured lines for s, if any.
func (c *Config) SectionContent(s app.Section) ([]string, bool) {
	keys := make([]string, 0, len(c.Content))
	for k := range c.Content {
		keys = append(keys, k)
	}
	// Deterministic when a file lists the same section twice with different case.
	sort.Strings(keys)
	for _, k := range keys {
		if sec, ok := app.ParseSection(k); ok && sec == s {
			return c.Content[k], true
		}
	}
	return nil, false
}
