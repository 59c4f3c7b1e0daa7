// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"errors"
	"fmt"
)

// APIError represents a structured error response from the Notion API.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *notion.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Status == http.StatusNotFound { ... }
//	}
type APIError struct {
	// Code is the Notion error code (e.g., "validation_error",
	// "object_not_found", "rate_limited").
	Code string `json:"code"`
	// Message is the human-readable error description from the server.
	Message string `json:"message"`
	// Status is the HTTP status code of the response.
	Status int `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Common Notion error codes.
const (
	ErrCodeValidation     = "validation_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeRestricted     = "restricted_resource"
	ErrCodeObjectNotFound = "object_not_found"
	ErrCodeConflict       = "conflict_error"
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeInternal       = "internal_server_error"
	ErrCodeUnavailable    = "service_unavailable"
)

// ErrCodeUnexpected marks an error response whose body was not the
// standard Notion envelope. Synthesized client-side; never sent by the
// API itself.
const ErrCodeUnexpected = "unexpected_response"

// ErrNoDataSources is returned by ResolveDataSource when the database
// descriptor lists no data sources to query.
var ErrNoDataSources = errors.New("database has no data sources")

// IsAPIError checks whether err is an *APIError with the given error code.
func IsAPIError(err error, code string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
