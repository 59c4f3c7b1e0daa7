// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func userTools(client *notion.Client) []*Tool {
	return []*Tool{
		{
			Name:        "get_users",
			Description: "List all users in the Notion workspace.",
			Annotations: readOnlyTool(),
			Args:        paginationArgs(),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.ListUsers(ctx,
					args.String("start_cursor"),
					args.Int("page_size"),
				)
			},
		},
		{
			Name:        "get_user",
			Description: "Retrieve a Notion user by their ID.",
			Annotations: readOnlyTool(),
			Args: []Arg{
				{Name: "user_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the user to retrieve"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetUser(ctx, args.String("user_id"))
			},
		},
		{
			Name:        "get_self",
			Description: "Retrieve the bot user associated with the current API token.",
			Annotations: readOnlyTool(),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetSelf(ctx)
			},
		},
	}
}
