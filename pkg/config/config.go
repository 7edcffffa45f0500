// Package config loads server configuration from FILETOOLS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/hamzaessahbaoui/workspace-files/pkg/logging"
)

// Prefix is the environment variable prefix, e.g. FILETOOLS_ROOT.
const Prefix = "FILETOOLS"

// Config holds all server configuration.
type Config struct {
	Root          string `envconfig:"ROOT" default:"workspace"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev        bool   `envconfig:"LOG_DEV" default:"false"`
	MetricsAddr   string `envconfig:"METRICS_ADDR"`
	ServerName    string `envconfig:"SERVER_NAME" default:"File MCP Server"`
	ServerVersion string `envconfig:"SERVER_VERSION" default:"1.0.0"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Root:          "workspace",
		LogLevel:      "info",
		ServerName:    "File MCP Server",
		ServerVersion: "1.0.0",
	}
}

// Validate rejects an empty root and an unknown log level.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("config: workspace root is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Logging returns the logger configuration derived from c.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Development = c.LogDev
	return cfg
}
