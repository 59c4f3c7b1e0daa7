// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import "fmt"

// ErrorKind classifies tool errors so that MCP clients can make
// programmatic decisions (retry, fix input, escalate) without parsing
// error message text.
type ErrorKind string

const (
	// KindValidation indicates the caller provided invalid input:
	// unknown tool or parameter names, missing required parameters,
	// unparseable values, or a request the API rejected as malformed.
	// The caller should fix the input and retry.
	KindValidation ErrorKind = "validation"

	// KindNotFound indicates a referenced object does not exist: unknown
	// page or block ID, a database with no data sources. Retrying with
	// the same parameters will not help.
	KindNotFound ErrorKind = "not_found"

	// KindUnauthorized indicates the credential was rejected or lacks
	// access to the referenced object.
	KindUnauthorized ErrorKind = "unauthorized"

	// KindRateLimited indicates the API throttled the request. The
	// caller should back off and retry.
	KindRateLimited ErrorKind = "rate_limited"

	// KindServerError indicates a remote failure or an unclassified
	// error. Retrying may help; the original message is preserved.
	KindServerError ErrorKind = "server_error"

	// KindNetwork indicates a transport-level failure: connection
	// refused, timeout, cancelled request.
	KindNetwork ErrorKind = "network"
)

// Error is a categorized error produced while executing a tool. The MCP
// server inspects the Kind to emit structured error metadata alongside
// the human-readable text, so agents can decide whether to retry.
//
// Error wraps an inner error, preserving the full chain for debugging.
// Use the kind-specific constructors (Validation, NotFound, ...) rather
// than constructing Error directly.
type Error struct {
	// Kind classifies the error for programmatic handling.
	Kind ErrorKind

	// Status is the HTTP status of the remote response when the error
	// originated from the API, zero otherwise.
	Status int

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The kind is not included
// in the string — it travels separately via the MCP errorInfo field.
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and errors.As
// to walk the full chain through the Error wrapper.
func (e *Error) Unwrap() error { return e.Err }

// Retriable reports whether repeating the same call might succeed. This
// is advisory metadata for the caller — no retry happens server-side.
func (e *Error) Retriable() bool {
	switch e.Kind {
	case KindRateLimited, KindServerError, KindNetwork:
		return true
	default:
		return false
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced object does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf(format, args...)}
}

// Unauthorized creates an unauthorized error: the credential was rejected.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Err: fmt.Errorf(format, args...)}
}

// RateLimited creates a rate-limited error: the API throttled the call.
func RateLimited(format string, args ...any) *Error {
	return &Error{Kind: KindRateLimited, Err: fmt.Errorf(format, args...)}
}

// ServerError creates a server error: a remote or unclassified failure.
func ServerError(format string, args ...any) *Error {
	return &Error{Kind: KindServerError, Err: fmt.Errorf(format, args...)}
}

// Network creates a network error: a transport-level failure.
func Network(format string, args ...any) *Error {
	return &Error{Kind: KindNetwork, Err: fmt.Errorf(format, args...)}
}
