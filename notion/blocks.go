// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// GetBlock retrieves a block by ID.
func (c *Client) GetBlock(ctx context.Context, blockID string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/blocks/"+url.PathEscape(blockID), nil, nil)
}

// GetBlockChildren lists the child blocks of a block or page.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string, startCursor string, pageSize int) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, "/v1/blocks/"+url.PathEscape(blockID)+"/children", paginationQuery(startCursor, pageSize), nil)
}

// AppendBlockChildren appends child blocks to a block or page. position
// optionally controls where the children are inserted; nil appends at the
// end.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children json.RawMessage, position json.RawMessage) (json.RawMessage, error) {
	body := map[string]json.RawMessage{"children": children}
	if position != nil {
		body["position"] = position
	}
	return c.doRequest(ctx, http.MethodPatch, "/v1/blocks/"+url.PathEscape(blockID)+"/children", nil, body)
}

// UpdateBlock updates a block. content is the type-specific update object
// (e.g. {"paragraph": {"rich_text": [...]}}) and becomes the request body
// directly, so any block type works without the client knowing its schema.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, content json.RawMessage) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPatch, "/v1/blocks/"+url.PathEscape(blockID), nil, content)
}

// DeleteBlock deletes (archives) a block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodDelete, "/v1/blocks/"+url.PathEscape(blockID), nil, nil)
}
