// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package notion is an authenticated client for the Notion REST API.
//
// The client owns authentication (bearer token), API versioning (the
// Notion-Version header), and endpoint resolution. Endpoint methods return
// the raw JSON payload on success so that callers can pass responses
// through unmodified; structured decoding happens only where the client
// itself needs fields (error envelopes, data source resolution).
//
// All methods take a context.Context and abort the in-flight HTTP request
// when it is cancelled. The client is safe for concurrent use — the only
// shared state is the underlying http.Client connection pool.
package notion
