// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"

	"github.com/notionkit/notion-mcp/notion"
)

func databaseTools(client *notion.Client) []*Tool {
	return []*Tool{
		{
			Name: "create_database",
			Description: "Create a new Notion database. " +
				"In API version 2025-09-03 database properties live on data sources; " +
				"pass properties inside initial_data_source.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "parent", Shape: ShapeObject, Required: true,
					Description: `Parent object, e.g. {"type": "page_id", "page_id": "..."}`},
				{Name: "title", Shape: ShapeList, Required: true,
					Description: `Title rich-text array, e.g. [{"type": "text", "text": {"content": "My DB"}}]`},
				{Name: "initial_data_source", Shape: ShapeObject,
					Description: "Initial data source configuration including properties"},
				{Name: "description", Shape: ShapeList,
					Description: "Description rich-text array"},
				{Name: "is_inline", Shape: ShapeBool,
					Description: "If true, the database is created inline within the parent page"},
				{Name: "icon", Shape: ShapeObject,
					Description: `Database icon, e.g. {"type": "emoji", "emoji": "..."}`},
				{Name: "cover", Shape: ShapeObject,
					Description: `Database cover, e.g. {"type": "external", "external": {"url": "https://..."}}`},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.CreateDatabase(ctx, notion.CreateDatabaseRequest{
					Parent:            args.Raw("parent"),
					Title:             args.Raw("title"),
					InitialDataSource: args.Raw("initial_data_source"),
					Description:       args.Raw("description"),
					IsInline:          args.BoolPtr("is_inline"),
					Icon:              args.Raw("icon"),
					Cover:             args.Raw("cover"),
				})
			},
		},
		{
			Name: "get_database",
			Description: "Retrieve a Notion database by its ID. " +
				"The response contains data_sources but NOT properties; use get_data_source to inspect properties.",
			Annotations: readOnlyTool(),
			Args: []Arg{
				{Name: "database_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the database to retrieve"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetDatabase(ctx, args.String("database_id"))
			},
		},
		{
			Name:        "update_database",
			Description: "Update a Notion database's title, description, icon, or cover.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "database_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the database to update"},
				{Name: "title", Shape: ShapeList,
					Description: "New title rich-text array"},
				{Name: "description", Shape: ShapeList,
					Description: "Description rich-text array"},
				{Name: "icon", Shape: ShapeObject,
					Description: `Database icon, e.g. {"type": "emoji", "emoji": "..."}`},
				{Name: "cover", Shape: ShapeObject,
					Description: `Database cover, e.g. {"type": "external", "external": {"url": "https://..."}}`},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.UpdateDatabase(ctx, args.String("database_id"), notion.UpdateDatabaseRequest{
					Title:       args.Raw("title"),
					Description: args.Raw("description"),
					Icon:        args.Raw("icon"),
					Cover:       args.Raw("cover"),
				})
			},
		},
		{
			Name:        "archive_database",
			Description: "Archive a Notion database.",
			Annotations: destructiveTool(),
			Args: []Arg{
				{Name: "database_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the database to archive"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.ArchiveDatabase(ctx, args.String("database_id"))
			},
		},
		{
			Name: "query_database",
			Description: "Query a Notion database for pages/rows. " +
				"Automatically resolves the first data source and queries it. " +
				"If you already know the data source ID, use query_data_source instead.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "database_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the database to query"},
				{Name: "filter", Shape: ShapeObject,
					Description: `Filter object, e.g. {"property": "Status", "select": {"equals": "Done"}}`},
				{Name: "sorts", Shape: ShapeList,
					Description: `List of sort objects, e.g. [{"property": "Created", "direction": "descending"}]`},
			}, append(paginationArgs(),
				Arg{Name: "filter_properties", Shape: ShapeList,
					Description: "List of property IDs to include in results"},
				Arg{Name: "archived", Shape: ShapeBool,
					Description: "If true, only return archived pages"},
				Arg{Name: "in_trash", Shape: ShapeBool,
					Description: "If true, only return trashed pages"},
			)...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.QueryDatabase(ctx, args.String("database_id"), queryRequest(args))
			},
		},
		{
			Name:        "get_data_source",
			Description: "Retrieve a Notion data source (includes properties).",
			Annotations: readOnlyTool(),
			Args: []Arg{
				{Name: "data_source_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the data source to retrieve"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.GetDataSource(ctx, args.String("data_source_id"))
			},
		},
		{
			Name:        "update_data_source",
			Description: "Update a Notion data source's properties.",
			Annotations: mutatingTool(),
			Args: []Arg{
				{Name: "data_source_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the data source to update"},
				{Name: "properties", Shape: ShapeObject,
					Description: "Properties to update"},
			},
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.UpdateDataSource(ctx, args.String("data_source_id"), args.Raw("properties"))
			},
		},
		{
			Name:        "query_data_source",
			Description: "Query rows in a Notion data source.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "data_source_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the data source to query"},
				{Name: "filter", Shape: ShapeObject,
					Description: `Filter object, e.g. {"property": "Status", "select": {"equals": "Done"}}`},
				{Name: "sorts", Shape: ShapeList,
					Description: `List of sort objects, e.g. [{"property": "Created", "direction": "descending"}]`},
			}, append(paginationArgs(),
				Arg{Name: "filter_properties", Shape: ShapeList,
					Description: "List of property IDs to include in results"},
				Arg{Name: "archived", Shape: ShapeBool,
					Description: "If true, only return archived pages"},
				Arg{Name: "in_trash", Shape: ShapeBool,
					Description: "If true, only return trashed pages"},
				Arg{Name: "result_type", Shape: ShapeString,
					Description: `Result type: "page" or "data_source"`},
			)...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				request := queryRequest(args)
				request.ResultType = args.String("result_type")
				return client.QueryDataSource(ctx, args.String("data_source_id"), request)
			},
		},
		{
			Name:        "list_data_source_templates",
			Description: "List templates for a Notion data source.",
			Annotations: readOnlyTool(),
			Args: append([]Arg{
				{Name: "data_source_id", Shape: ShapeString, Required: true,
					Description: "The UUID of the data source"},
				{Name: "name", Shape: ShapeString,
					Description: "Name filter for templates"},
			}, paginationArgs()...),
			Handler: func(ctx context.Context, args Args) (json.RawMessage, error) {
				return client.ListDataSourceTemplates(ctx,
					args.String("data_source_id"),
					args.String("name"),
					args.String("start_cursor"),
					args.Int("page_size"),
				)
			},
		},
	}
}

// queryRequest assembles the query fields shared by query_database and
// query_data_source.
func queryRequest(args Args) notion.QueryRequest {
	return notion.QueryRequest{
		Filter:           args.Raw("filter"),
		Sorts:            args.Raw("sorts"),
		StartCursor:      args.String("start_cursor"),
		PageSize:         args.Int("page_size"),
		FilterProperties: args.Raw("filter_properties"),
		Archived:         args.BoolPtr("archived"),
		InTrash:          args.BoolPtr("in_trash"),
	}
}
