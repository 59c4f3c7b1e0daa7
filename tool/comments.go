// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func commentTools(client *notion.Client) []*Tool {
	return []*Tool{
		{
			Name:        "create_comment",
			Description: "Create a comment on a Notion page or block.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "parent", Shape: ShapeObject, Required: true,
					Description: `Parent object, e.g. {"page_id": "..."}`},
				{Name: "rich_text", Shape: ShapeList, Required: true,
					Description: `Rich-text content array, e.g. [{"type": "text", "text": {"content": "Hello!"}}]`},
				{Name: "discussion_id", Shape: ShapeString,
					Description: "UUID of an existing discussion thread to reply to. Omit to start a new top-level comment."},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.CreateComment(ctx, notion.CreateCommentRequest{
					Parent:       args.Raw("parent"),
					RichText:     args.Raw("rich_text"),
					DiscussionID: args.String("discussion_id"),
				})
			},
		},
		{
			Name:        "get_comments",
			Description: "List comments on a Notion block or page.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the block or page to list comments for"},
			}, paginationArgs()...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.ListComments(ctx,
					args.String("block_id"),
					args.String("start_cursor"),
					args.Int("page_size"),
				)
			},
		},
	}
}
