// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp implements a Model Context Protocol server over
// newline-delimited JSON-RPC 2.0 on stdio. It handles initialize, ping,
// tools/list, and tools/call, delegating tool execution to a
// [tool.Registry]. Tool failures are reported inside tools/call results
// with structured errorInfo metadata; JSON-RPC errors are reserved for
// protocol-level problems.
package mcp
