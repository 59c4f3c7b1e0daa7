// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func blockTools(client *notion.Client) []*Tool {
	return []*Tool{
		{
			Name:        "get_block",
			Description: "Retrieve a Notion block by its ID.",
			Annotations: readOnlyTool(),
			Args: []Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the block to retrieve"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetBlock(ctx, args.String("block_id"))
			},
		},
		{
			Name:        "get_block_children",
			Description: "List child blocks of a Notion block.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the parent block"},
			}, paginationArgs()...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetBlockChildren(ctx,
					args.String("block_id"),
					args.String("start_cursor"),
					args.Int("page_size"),
				)
			},
		},
		{
			Name:        "append_block_children",
			Description: "Append child blocks to a Notion block.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the parent block to append children to"},
				{Name: "children", Shape: ShapeList, Required: true,
					Description: "List of block objects to append"},
				{Name: "position", Shape: ShapeObject,
					Description: `Position object controlling where children are inserted, e.g. {"type": "after_block", "after_block": {"id": "<block_id>"}}`},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.AppendBlockChildren(ctx,
					args.String("block_id"),
					args.Raw("children"),
					args.Raw("position"),
				)
			},
		},
		{
			Name:        "update_block",
			Description: "Update a Notion block.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the block to update"},
				{Name: "content", Shape: ShapeObject,
					Description: `Block properties to update. The keys depend on the block type, e.g. {"paragraph": {"rich_text": [...]}}`},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				content := args.Raw("content")
				if content == nil {
					content = json.RawMessage("{}")
				}
				return client.UpdateBlock(ctx, args.String("block_id"), content)
			},
		},
		{
			Name:        "delete_block",
			Description: "Delete (archive) a Notion block.",
			Annotations: destructiveTool(),
			Args: []Arg{
				{Name: "block_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the block to delete"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.DeleteBlock(ctx, args.String("block_id"))
			},
		},
	}
}
