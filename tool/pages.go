// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func pageTools(client *notion.Client, options Options) []*Tool {
	slim := options.SlimResponses
	return []*Tool{
		{
			Name:        "create_page",
			Description: "Create a new Notion page.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "parent", Shape: ShapeObject, Required: true,
					Description: `Parent object, e.g. {"type": "page_id", "page_id": "..."}`},
				{Name: "properties", Shape: ShapeObject, Required: true,
					Description: "Page properties mapping"},
				{Name: "children", Shape: ShapeList,
					Description: "List of block children to append. Cannot be used together with template."},
				{Name: "template", Shape: ShapeObject,
					Description: `Data-source template, e.g. {"type": "none"}, {"type": "default"}, or {"type": "template_id", "template_id": "<uuid>"}`},
				{Name: "position", Shape: ShapeObject,
					Description: `Position object controlling where content is inserted, e.g. {"type": "page_start"}, {"type": "page_end"}, or {"type": "after_block", "after_block": {"id": "<block_id>"}}`},
				{Name: "icon", Shape: ShapeObject,
					Description: `Page icon, e.g. {"type": "emoji", "emoji": "..."}`},
				{Name: "cover", Shape: ShapeObject,
					Description: `Page cover, e.g. {"type": "external", "external": {"url": "https://..."}}`},
			},
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.CreatePage(ctx, notion.CreatePageRequest{
					Parent:     args.Raw("parent"),
					Properties: args.Raw("properties"),
					Children:   args.Raw("children"),
					Template:   args.Raw("template"),
					Position:   args.Raw("position"),
					Icon:       args.Raw("icon"),
					Cover:      args.Raw("cover"),
				})
			}),
		},
		{
			Name:        "get_page",
			Description: "Retrieve a Notion page by its ID.",
			Annotations: readOnlyTool(),
			Args: []Arg{
				{Name: "page_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the page to retrieve"},
				{Name: "filter_properties", Shape: ShapeList,
					Description: "List of property IDs to include in the response"},
			},
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				filterProperties, err := args.StringList("filter_properties")
				if err != nil {
					return nil, err
				}
				return client.GetPage(ctx, args.String("page_id"), filterProperties)
			}),
		},
		{
			Name:        "get_page_property_item",
			Description: "Retrieve a page property item. Essential for relations, rollups, and long rich_text.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "page_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the page"},
				{Name: "property_id", Shape: ShapeString, Required: true,
					Description: "The ID of the property to retrieve"},
			}, paginationArgs()...),
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetPagePropertyItem(ctx,
					args.String("page_id"),
					args.String("property_id"),
					args.String("start_cursor"),
					args.Int("page_size"),
				)
			}),
		},
		{
			Name:        "update_page",
			Description: "Update a Notion page's properties, icon, or cover.",
			Annotations: destructiveTool(),
			Args: []Arg{
				{Name: "page_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the page to update"},
				{Name: "properties", Shape: ShapeObject,
					Description: "Properties to update"},
				{Name: "erase_content", Shape: ShapeBool,
					Description: "If true, clears ALL block content from the page. WARNING: This is destructive and irreversible."},
				{Name: "icon", Shape: ShapeObject,
					Description: `Page icon, e.g. {"type": "emoji", "emoji": "..."}`},
				{Name: "cover", Shape: ShapeObject,
					Description: `Page cover, e.g. {"type": "external", "external": {"url": "https://..."}}`},
			},
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.UpdatePage(ctx, args.String("page_id"), notion.UpdatePageRequest{
					Properties:   args.Raw("properties"),
					Icon:         args.Raw("icon"),
					Cover:        args.Raw("cover"),
					EraseContent: args.BoolPtr("erase_content"),
				})
			}),
		},
		{
			Name:        "archive_page",
			Description: "Archive (soft-delete) a Notion page.",
			Annotations: destructiveTool(),
			Args: []Arg{
				{Name: "page_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the page to archive"},
			},
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.ArchivePage(ctx, args.String("page_id"))
			}),
		},
		{
			Name:        "move_page",
			Description: "Move a Notion page to a new parent.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "page_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the page to move"},
				{Name: "parent", Shape: ShapeObject, Required: true,
					Description: `New parent object, e.g. {"type": "page_id", "page_id": "..."}`},
			},
			Handler: slimmed(slim, func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.MovePage(ctx, args.String("page_id"), args.Raw("parent"))
			}),
		},
	}
}
