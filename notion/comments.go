// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreateCommentRequest is the body for CreateComment. DiscussionID replies
// to an existing thread; when empty a new top-level discussion starts.
type CreateCommentRequest struct {
	Parent       json.RawMessage `json:"parent"`
	RichText     json.RawMessage `json:"rich_text"`
	DiscussionID string          `json:"discussion_id,omitempty"`
}

// CreateComment creates a comment on a page or block.
func (c *Client) CreateComment(ctx context.Context, request CreateCommentRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPost, "/v1/comments", nil, request)
}

// ListComments lists the comments on a block or page.
func (c *Client) ListComments(ctx context.Context, blockID string, startCursor string, pageSize int) (json.RawMessage, error) {
	query := paginationQuery(startCursor, pageSize)
	query.Set("block_id", blockID)
	return c.doRequest(ctx, http.MethodGet, "/v1/comments", query, nil)
}
