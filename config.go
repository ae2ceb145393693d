package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GOWC"

// Config holds settings read from the config file and GOWC_* environment
// variables. None of them change what is counted or printed on stdout.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // console or json
}

// loadConfig reads the optional config file and the environment into v.
// Precedence is default < config file < environment. The config file path
// can be overridden with GOWC_CONFIG.
func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("log_level", "error")
	v.SetDefault("log_format", "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// "config" has no default, so AutomaticEnv alone would not expose it.
	_ = v.BindEnv("config")

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gowc"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		LogLevel:  strings.ToLower(v.GetString("log_level")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
	}
	return cfg, readErr
}
