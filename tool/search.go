// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func searchTools(client *notion.Client) []*Tool {
	return []*Tool{
		{
			Name:        "search",
			Description: "Search Notion pages and databases by title.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "query", Shape: ShapeString,
					Description: "Text query to search for"},
				{Name: "filter", Shape: ShapeObject,
					Description: `Filter object, e.g. {"value": "page", "property": "object"}`},
				{Name: "sort", Shape: ShapeObject,
					Description: `Sort object, e.g. {"direction": "ascending", "timestamp": "last_edited_time"}`},
			}, paginationArgs()...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.Search(ctx, notion.SearchRequest{
					Query:       args.String("query"),
					Filter:      args.Raw("filter"),
					Sort:        args.Raw("sort"),
					StartCursor: args.String("start_cursor"),
					PageSize:    args.Int("page_size"),
				})
			},
		},
	}
}
