// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

// Options configures tool construction.
type Options struct {
	// SlimResponses strips metadata noise from page tool responses
	// before they are returned to the agent.
	SlimResponses bool
}

// All returns the complete tool table for a workspace client, in the
// order the tools are listed to agents.
func All(client *notion.Client, options Options) []*Tool {
	var tools []*Tool
	tools = append(tools, pageTools(client, options)...)
	tools = append(tools, databaseTools(client)...)
	tools = append(tools, blockTools(client)...)
	tools = append(tools, userTools(client)...)
	tools = append(tools, commentTools(client)...)
	tools = append(tools, searchTools(client)...)
	return tools
}

// Annotation presets. Read-only tools never touch workspace state;
// mutating tools change it reversibly; destructive tools archive,
// delete, or erase content.
func readOnlyTool() *Annotations {
	yes := true
	return &Annotations{ReadOnly: &yes, Idempotent: &yes}
}

func mutatingTool() *Annotations {
	no := false
	return &Annotations{Destructive: &no}
}

func destructiveTool() *Annotations {
	yes := true
	return &Annotations{Destructive: &yes}
}

func paginationArgs() []Arg {
	return []Arg{
		{Name: "start_cursor", Shape: ShapeString, Description: "Cursor for pagination"},
		{Name: "page_size", Shape: ShapeInt, Description: "Number of results per page"},
	}
}

// slimmed wraps a handler so its successful payload is slimmed before it
// reaches the agent. Disabled wrapping returns the handler unchanged.
func slimmed(enabled bool, handler Handler) Handler {
	if !enabled {
		return handler
	}
	return func(ctx context.Context, args Args) (json.RawMessage, error) {
		payload, err := handler(ctx, args)
		if err != nil {
			return nil, err
		}
		return Slim(payload), nil
	}
}
