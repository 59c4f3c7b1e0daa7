// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// ListUsers lists the users in the workspace.
func (c *Client) ListUsers(ctx context.Context, startCursor string, pageSize int) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/users", paginationQuery(startCursor, pageSize), nil)
}

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil, nil)
}

// GetSelf retrieves the bot user associated with the token.
func (c *Client) GetSelf(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/users/me", nil, nil)
}
