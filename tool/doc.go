// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool defines the MCP tool surface of the server: the static tool
// registry, argument normalization, the tool error taxonomy, and the 26
// tool definitions wrapping the Notion API client.
//
// The registry is built once at startup and validated eagerly — duplicate
// or empty tool names are construction errors, not runtime surprises. Each
// tool declares the shape of every argument it accepts; the dispatcher
// normalizes arguments against those shapes before the handler runs, so
// handlers always see canonical structured values.
package tool
