// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// QueryRequest is the body for QueryDataSource (and, through resolution,
// QueryDatabase). Only non-zero fields are sent.
type QueryRequest struct {
	Filter           json.RawMessage `json:"filter,omitempty"`
	Sorts            json.RawMessage `json:"sorts,omitempty"`
	StartCursor      string          `json:"start_cursor,omitempty"`
	PageSize         int             `json:"page_size,omitempty"`
	FilterProperties json.RawMessage `json:"filter_properties,omitempty"`
	Archived         *bool           `json:"archived,omitempty"`
	InTrash          *bool           `json:"in_trash,omitempty"`
	ResultType       string          `json:"result_type,omitempty"`
}

// GetDataSource retrieves a data source by ID. The response includes the
// property schema that database descriptors no longer carry.
func (c *Client) GetDataSource(ctx context.Context, dataSourceID string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/data_sources/"+url.PathEscape(dataSourceID), nil, nil)
}

// UpdateDataSource updates a data source's properties.
func (c *Client) UpdateDataSource(ctx context.Context, dataSourceID string, properties json.RawMessage) (json.RawMessage, error) {
	body := map[string]json.RawMessage{"properties": properties}
	return c.doRequest(ctx, http.MethodPatch, "/v1/data_sources/"+url.PathEscape(dataSourceID), nil, body)
}

// QueryDataSource queries the rows of a data source.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, request QueryRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPost, "/v1/data_sources/"+url.PathEscape(dataSourceID)+"/query", nil, request)
}

// ListDataSourceTemplates lists the templates of a data source, optionally
// filtered by name.
func (c *Client) ListDataSourceTemplates(ctx context.Context, dataSourceID string, name string, startCursor string, pageSize int) (json.RawMessage, error) {
	query := paginationQuery(startCursor, pageSize)
	if name != "" {
		query.Set("name", name)
	}
	return c.doRequest(ctx, http.MethodGet, "/v1/data_sources/"+url.PathEscape(dataSourceID)+"/templates", query, nil)
}
