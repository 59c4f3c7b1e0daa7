// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreatePageRequest is the body for CreatePage. Children and Template are
// mutually exclusive — the API rejects requests carrying both.
type CreatePageRequest struct {
	Parent     json.RawMessage `json:"parent"`
	Properties json.RawMessage `json:"properties"`
	Children   json.RawMessage `json:"children,omitempty"`
	Template   json.RawMessage `json:"template,omitempty"`
	Position   json.RawMessage `json:"position,omitempty"`
	Icon       json.RawMessage `json:"icon,omitempty"`
	Cover      json.RawMessage `json:"cover,omitempty"`
}

// UpdatePageRequest is the body for UpdatePage. Only non-zero fields are
// sent, so an update touches exactly the fields the caller supplied.
type UpdatePageRequest struct {
	Properties   json.RawMessage `json:"properties,omitempty"`
	Icon         json.RawMessage `json:"icon,omitempty"`
	Cover        json.RawMessage `json:"cover,omitempty"`
	Archived     *bool           `json:"archived,omitempty"`
	EraseContent *bool           `json:"erase_content,omitempty"`
}

// CreatePage creates a new page.
func (c *Client) CreatePage(ctx context.Context, request CreatePageRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPost, "/v1/pages", nil, request)
}

// GetPage retrieves a page by ID. filterProperties optionally restricts
// the returned properties to the listed property IDs.
func (c *Client) GetPage(ctx context.Context, pageID string, filterProperties []string) (json.RawMessage, error) {
	var query url.Values
	if len(filterProperties) > 0 {
		query = url.Values{"filter_properties": filterProperties}
	}
	return c.doRequest(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(pageID), query, nil)
}

// GetPagePropertyItem retrieves a single page property value. Paginated
// property types (relations, rollups, long rich text) use startCursor and
// pageSize to walk the value.
func (c *Client) GetPagePropertyItem(ctx context.Context, pageID, propertyID string, startCursor string, pageSize int) (json.RawMessage, error) {
	path := fmt.Sprintf("/v1/pages/%s/properties/%s", url.PathEscape(pageID), url.PathEscape(propertyID))
	return c.doRequest(ctx, http.MethodGet, path, paginationQuery(startCursor, pageSize), nil)
}

// UpdatePage updates a page's properties, icon, cover, or archived state.
func (c *Client) UpdatePage(ctx context.Context, pageID string, request UpdatePageRequest) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodPatch, "/v1/pages/"+url.PathEscape(pageID), nil, request)
}

// ArchivePage archives (soft-deletes) a page. This is an UpdatePage with
// the archived flag set — there is no separate archive endpoint.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (json.RawMessage, error) {
	archived := true
	return c.UpdatePage(ctx, pageID, UpdatePageRequest{Archived: &archived})
}

// MovePage moves a page to a new parent.
func (c *Client) MovePage(ctx context.Context, pageID string, parent json.RawMessage) (json.RawMessage, error) {
	body := map[string]json.RawMessage{"parent": parent}
	return c.doRequest(ctx, http.MethodPost, "/v1/pages/"+url.PathEscape(pageID)+"/move", nil, body)
}
