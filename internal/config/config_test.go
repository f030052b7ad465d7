package config

import (
	"path/filepath"
	"testing"
	"time"

	"termfolio/internal/app"
	"termfolio/internal/errors"
	"termfolio/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv(EnvTickRate, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLogFile, "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := New()
	assert.Equal(t, 250*time.Millisecond, cfg.TickRate.Duration)
	assert.Equal(t, "termfolio", cfg.Title)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestReadConfigFileMissing(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := ReadConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigNotFound(err))
	assert.False(t, errors.IsInvalidConfig(err))
	assert.Contains(t, err.Error(), path)
}

func TestLoadConfigFileYAML(t *testing.T) {
	clearEnv(t)
	path := testutils.WriteFile(t, t.TempDir(), "config.yaml", `
tick_rate: 100ms
title: Andrea
mouse: false
theme:
  name: ocean
log:
  level: debug
  file: /tmp/termfolio.log
content:
  profile:
    - Hello there
    - Second line
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.TickRate.Duration)
	assert.Equal(t, "Andrea", cfg.Title)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "ocean", cfg.Theme.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/termfolio.log", cfg.Log.File)

	lines, ok := cfg.SectionContent(app.Profile)
	require.True(t, ok)
	assert.Equal(t, []string{"Hello there", "Second line"}, lines)

	_, ok = cfg.SectionContent(app.Skills)
	assert.False(t, ok)
}

func TestLoadConfigFileKeepsDefaultsForMissingKeys(t *testing.T) {
	clearEnv(t)
	path := testutils.WriteFile(t, t.TempDir(), "config.yaml", "title: Only a title\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Only a title", cfg.Title)
	assert.Equal(t, 250*time.Millisecond, cfg.TickRate.Duration)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "default", cfg.Theme.Name)
}

func TestLoadConfigFileTOML(t *testing.T) {
	clearEnv(t)
	path := testutils.WriteFile(t, t.TempDir(), "config.toml", `
tick_rate = "1s"
title = "From TOML"

[theme]
name = "sunset"

[content]
Contact = ["mail: someone@example.com"]
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.TickRate.Duration)
	assert.Equal(t, "From TOML", cfg.Title)
	assert.Equal(t, "sunset", cfg.Theme.Name)

	lines, ok := cfg.SectionContent(app.Contact)
	require.True(t, ok)
	assert.Equal(t, []string{"mail: someone@example.com"}, lines)
}

func TestLoadConfigFileErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		file    string
		content string
		param   string
	}{
		{"bad yaml", "c.yaml", "tick_rate: [1, 2", "c.yaml"},
		{"bad duration", "c.yaml", "tick_rate: soon\n", "c.yaml"},
		{"negative duration", "c.yaml", "tick_rate: -1s\n", "c.yaml"},
		{"zero tick rate", "c.yaml", "tick_rate: 0s\n", "tick_rate"},
		{"unknown theme", "c.yaml", "theme:\n  name: neon\n", "theme.name"},
		{"unknown level", "c.yaml", "log:\n  level: chatty\n", "log.level"},
		{"unknown section", "c.yaml", "content:\n  blog: [hi]\n", "content"},
		{"bad toml", "c.toml", "tick_rate = ", "c.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutils.WriteFile(t, t.TempDir(), tt.file, tt.content)
			_, err := LoadConfigFile(path)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err), "got %v", err)

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Contains(t, configErr.Param(), tt.param)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := testutils.WriteFile(t, t.TempDir(), "config.yaml", "tick_rate: 100ms\ntheme:\n  name: ocean\n")

	t.Setenv(EnvTickRate, "2s")
	t.Setenv(EnvTheme, "dark")
	t.Setenv(EnvLogFile, "/var/log/tf.log")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.TickRate.Duration)
	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Equal(t, "/var/log/tf.log", cfg.Log.File)

	t.Setenv(EnvTickRate, "whenever")
	_, err = LoadConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	clearEnv(t)
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := New()
			cfg.TickRate = Duration{time.Second}
			cfg.Theme.Name = "light"
			cfg.Content["skills"] = []string{"Go", "Rust"}
			require.NoError(t, SaveConfig(cfg, path))

			loaded, err := LoadConfigFile(path)
			require.NoError(t, err)
			assert.Equal(t, time.Second, loaded.TickRate.Duration)
			assert.Equal(t, "light", loaded.Theme.Name)

			lines, ok := loaded.SectionContent(app.Skills)
			require.True(t, ok)
			assert.Equal(t, []string{"Go", "Rust"}, lines)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "termfolio", "config.yaml"), path)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/someone", ".config", "termfolio", "config.yaml"), path)
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}

func TestThemes(t *testing.T) {
	names := ListThemes()
	assert.Equal(t, []string{"dark", "default", "light", "monochrome", "ocean", "sunset"}, names)

	for _, name := range names {
		theme := GetTheme(name)
		assert.Equal(t, name, theme.Name)
		assert.NotEmpty(t, theme.Primary)
		assert.NotEmpty(t, theme.StatusBg)
	}

	fallback := GetTheme("does-not-exist")
	assert.Equal(t, "default", fallback.Name)
}

func TestDuration(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration)

	require.NoError(t, d.UnmarshalText(nil))
	assert.Equal(t, time.Duration(0), d.Duration)

	text, err := Duration{250 * time.Millisecond}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(text))
}
