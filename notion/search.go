// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
)

// SearchRequest is the body for Search. All fields are optional; an empty
// request returns everything the integration can see.
type SearchRequest struct {
	Query       string          `json:"query,omitempty"`
	Filter      json.RawMessage `json:"filter,omitempty"`
	Sort        json.RawMessage `json:"sort,omitempty"`
	StartCursor string          `json:"start_cursor,omitempty"`
	PageSize    int             `json:"page_size,omitempty"`
}

// Search searches pages and databases by title.
func (c *Client) Search(ctx context.Context, request SearchRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPost, "/v1/search", nil, request)
}
