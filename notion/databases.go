// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateDatabaseRequest is the body for CreateDatabase. Since API version
// 2025-09-03 database properties live on data sources, so the schema goes
// inside InitialDataSource rather than on the database itself.
type CreateDatabaseRequest struct {
	Parent            json.RawMessage `json:"parent"`
	Title             json.RawMessage `json:"title"`
	InitialDataSource json.RawMessage `json:"initial_data_source,omitempty"`
	Description       json.RawMessage `json:"description,omitempty"`
	IsInline          *bool           `json:"is_inline,omitempty"`
	Icon              json.RawMessage `json:"icon,omitempty"`
	Cover             json.RawMessage `json:"cover,omitempty"`
}

// UpdateDatabaseRequest is the body for UpdateDatabase.
type UpdateDatabaseRequest struct {
	Title       json.RawMessage `json:"title,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Icon        json.RawMessage `json:"icon,omitempty"`
	Cover       json.RawMessage `json:"cover,omitempty"`
	Archived    *bool           `json:"archived,omitempty"`
}

// Database is the subset of the database descriptor the client itself
// needs: the data sources contained in the database. Everything else is
// passed through raw.
type Database struct {
	ID          string          `json:"id"`
	DataSources []DataSourceRef `json:"data_sources"`
}

// DataSourceRef identifies one data source inside a database descriptor.
type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// CreateDatabase creates a new database.
func (c *Client) CreateDatabase(ctx context.Context, request CreateDatabaseRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPost, "/v1/databases", nil, request)
}

// GetDatabase retrieves a database descriptor by ID. Since API version
// 2025-09-03 the response lists data_sources but not properties — use
// GetDataSource to inspect the schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/databases/"+url.PathEscape(databaseID), nil, nil)
}

// UpdateDatabase updates a database's title, description, icon, or cover.
func (c *Client) UpdateDatabase(ctx context.Context, databaseID string, request UpdateDatabaseRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPatch, "/v1/databases/"+url.PathEscape(databaseID), nil, request)
}

// ArchiveDatabase archives a database via an update with the archived
// flag set, mirroring ArchivePage.
func (c *Client) ArchiveDatabase(ctx context.Context, databaseID string) (json.RawMessage, error) {
	archived := true
	return c.UpdateDatabase(ctx, databaseID, UpdateDatabaseRequest{Archived: &archived})
}
