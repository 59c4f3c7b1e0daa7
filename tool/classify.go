// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/notionkit/notion-mcp/notion"
)

// Classify translates any failure raised while executing a handler into a
// categorized *Error. Already-categorized errors pass through; structured
// API errors map by HTTP status; transport and cancellation failures map
// to the network kind. Nothing propagates unmapped — anything unrecognized
// becomes a server_error with the original message preserved.
func Classify(err error) *Error {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr
	}

	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(err, apiErr)
	}

	if errors.Is(err, notion.ErrNoDataSources) {
		return &Error{Kind: KindNotFound, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindNetwork, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{Kind: KindNetwork, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{Kind: KindNetwork, Err: err}
	}

	return &Error{Kind: KindServerError, Err: err}
}

// classifyAPIError maps a Notion API error to an error kind by HTTP
// status. Statuses outside the mapped set default to server_error rather
// than leaking an unclassified failure.
func classifyAPIError(err error, apiErr *notion.APIError) *Error {
	kind := KindServerError
	switch {
	case apiErr.Status == 400 || apiErr.Status == 409 || apiErr.Status == 422:
		kind = KindValidation
	case apiErr.Status == 401 || apiErr.Status == 403:
		kind = KindUnauthorized
	case apiErr.Status == 404:
		kind = KindNotFound
	case apiErr.Status == 429:
		kind = KindRateLimited
	case apiErr.Status >= 500:
		kind = KindServerError
	}
	return &Error{Kind: kind, Status: apiErr.Status, Err: err}
}
