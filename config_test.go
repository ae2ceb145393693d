package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "error", LogFormat: "console"}, cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOWC_LOG_LEVEL", "DEBUG")
	t.Setenv("GOWC_LOG_FORMAT", "json")

	cfg, err := loadConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "debug", LogFormat: "json"}, cfg)
}

func TestLoadConfig_HomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "gowc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("log_level = \"info\"\n"), 0o644))

	cfg, err := loadConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"info\"\nlog_format = \"json\"\n"), 0o644))
	t.Setenv("GOWC_CONFIG", path)
	t.Setenv("GOWC_LOG_LEVEL", "warn")

	cfg, err := loadConfig(viper.New())

	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "warn", LogFormat: "json"}, cfg)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOWC_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := loadConfig(viper.New())

	require.Error(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"logger":"wc"`)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(Config{LogLevel: "debug", LogFormat: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("details")
	require.Contains(t, buf.String(), "details")
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	_, err := newLogger(Config{LogLevel: "loud", LogFormat: "console"}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = newLogger(Config{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}
