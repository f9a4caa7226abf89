// Package config resolves CLI defaults from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvFormat    = "CGPACALC_FORMAT"
	EnvLogLevel  = "CGPACALC_LOG_LEVEL"
	EnvLogFormat = "CGPACALC_LOG_FORMAT"
	EnvFailBelow = "CGPACALC_FAIL_BELOW"
)

// Config holds defaults for the calc command. Flags override these.
type Config struct {
	Format    string   `yaml:"format"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	FailBelow *float64 `yaml:"fail_below"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Format:    "md",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load applies, in order, the built-in defaults, the YAML file at path (if it
// exists), and environment variables. A .env file in the working directory is
// loaded first if present. An empty path skips the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config.Load: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvFailBelow); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config.Load: %s: invalid number %q", EnvFailBelow, v)
		}
		cfg.FailBelow = &f
	}
	return cfg, nil
}
