// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Command notion-mcp runs an MCP server exposing the Notion API as tools
// over stdio. Configuration comes from an optional YAML file (--config or
// NOTION_MCP_CONFIG); the API token comes from NOTION_API_KEY.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/notionkit/notion-mcp/lib/config"
	"github.com/notionkit/notion-mcp/lib/version"
	"github.com/notionkit/notion-mcp/mcp"
	"github.com/notionkit/notion-mcp/notion"
	"github.com/notionkit/notion-mcp/tool"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("notion-mcp", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file (overrides NOTION_MCP_CONFIG)")
	baseURL := flags.String("base-url", "", "override the API base URL")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, or error")
	showVersion := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Printf("notion-mcp %s\n", version.Info())
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	// Logs go to stderr; stdout carries the JSON-RPC stream.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	token := os.Getenv("NOTION_API_KEY")
	if token == "" {
		fmt.Fprintf(os.Stderr, "error: NOTION_API_KEY environment variable is not set\n")
		return 1
	}

	client, err := notion.NewClient(notion.ClientConfig{
		BaseURL:    cfg.BaseURL,
		APIVersion: cfg.APIVersion,
		Token:      token,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer client.CloseIdleConnections()

	registry, err := tool.NewRegistry(logger, tool.All(client, tool.Options{
		SlimResponses: cfg.Slim(),
	})...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	logger.Info("notion-mcp serving on stdio",
		"version", version.Short(),
		"tools", len(registry.Tools()),
		"api_version", cfg.APIVersion,
	)

	if err := mcp.NewServer(registry, logger).Serve(); err != nil {
		logger.Error("server terminated", "error", err)
		return 1
	}
	return 0
}

// loadConfig prefers the --config flag over the NOTION_MCP_CONFIG
// environment variable; with neither set the defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
