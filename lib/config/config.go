// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the notion-mcp server.
//
// Configuration is loaded from a single YAML file specified by:
//   - the NOTION_MCP_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// The config file is optional — every field has a working default. The API
// token is deliberately not config-file material: it is read from the
// NOTION_API_KEY environment variable only, so config files stay safe to
// commit and share.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	// BaseURL is the Notion API base URL. Override for testing against
	// a fake server; production use never changes this.
	BaseURL string `yaml:"base_url"`

	// APIVersion is the value sent in the Notion-Version header.
	APIVersion string `yaml:"api_version"`

	// LogLevel controls slog output on stderr: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// SlimResponses controls whether page tool responses are stripped of
	// metadata noise before being returned to the agent. Defaults to true.
	SlimResponses *bool `yaml:"slim_responses"`
}

// Default returns the default configuration. These are complete working
// values — the config file only overrides them.
func Default() *Config {
	slim := true
	return &Config{
		BaseURL:       "https://api.notion.com",
		APIVersion:    "2025-09-03",
		LogLevel:      "info",
		SlimResponses: &slim,
	}
}

// Load loads configuration from the NOTION_MCP_CONFIG environment
// variable. When the variable is not set, the defaults are returned.
func Load() (*Config, error) {
	path := os.Getenv("NOTION_MCP_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("api_version is required")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the slog level for the configured log_level string.
// Validate has already confirmed the value parses.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// Slim reports whether responses should be slimmed. Nil (unset) means true.
func (c *Config) Slim() bool {
	return c.SlimResponses == nil || *c.SlimResponses
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q (expected debug, info, warn, or error)", name)
	}
}
