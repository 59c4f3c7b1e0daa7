// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/notionkit/notion-mcp/lib/version"
	"github.com/notionkit/notion-mcp/tool"
)

// Server is an MCP server that exposes workspace tools over JSON-RPC 2.0
// on newline-delimited stdio.
type Server struct {
	registry    *tool.Registry
	logger      *slog.Logger
	initialized bool
}

// NewServer creates an MCP server serving the given tool registry.
func NewServer(registry *tool.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{registry: registry, logger: logger}
}

// Serve starts the MCP server reading from os.Stdin and writing to
// os.Stdout. This is the entry point for the notion-mcp binary.
func (s *Server) Serve() error {
	return s.Run(os.Stdin, os.Stdout)
}

// Run processes JSON-RPC 2.0 requests from input and writes responses
// to output until input reaches EOF. Each request occupies a single
// line (newline-delimited JSON-RPC, not Content-Length framed). Lines
// are read without a fixed cap — tool arguments can be arbitrarily
// large (block trees in append_block_children), and an oversized
// request must fail that one request, not the whole session.
func (s *Server) Run(input io.Reader, output io.Writer) error {
	reader := bufio.NewReaderSize(input, 64*1024)
	encoder := json.NewEncoder(output)

	for {
		line, readErr := reader.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			if err := s.handleLine(encoder, trimmed); err != nil {
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

// handleLine processes one newline-delimited JSON-RPC message. The
// returned error is a write failure on the output stream; request-level
// problems are answered on the stream and return nil.
func (s *Server) handleLine(encoder *json.Encoder, line []byte) error {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		if writeErr := writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
			return fmt.Errorf("writing parse error response: %w", writeErr)
		}
		return nil
	}

	if req.JSONRPC != "2.0" {
		if !req.isNotification() {
			if writeErr := writeError(encoder, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
				return fmt.Errorf("writing version error response: %w", writeErr)
			}
		}
		return nil
	}

	// Notifications have no ID and receive no response.
	if req.isNotification() {
		return nil
	}

	return s.dispatch(encoder, &req)
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(encoder *json.Encoder, req *request) error {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(encoder, req)
	case "ping":
		return s.handlePing(encoder, req)
	case "tools/list":
		if !s.initialized {
			return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(encoder, req)
	case "tools/call":
		if !s.initialized {
			return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsCall(encoder, req)
	default:
		return writeError(encoder, req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	// The MCP specification says the server responds with its own
	// protocol version and the client decides whether it can proceed.
	// We do not reject clients that request a different version —
	// all MCP versions are additive, so older clients will simply
	// ignore fields they don't recognize.
	s.initialized = true

	s.logger.Debug("client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
	)

	return writeResult(encoder, req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: serverCapabilities{
			Tools: &toolCapability{},
		},
		ServerInfo: serverInfo{
			Name:    "notion-mcp",
			Version: version.Short(),
		},
	})
}

func (s *Server) handlePing(encoder *json.Encoder, req *request) error {
	return writeResult(encoder, req.ID, map[string]any{})
}

func (s *Server) handleToolsList(encoder *json.Encoder, req *request) error {
	tools := s.registry.Tools()
	descriptions := make([]toolDescription, 0, len(tools))
	for _, t := range tools {
		descriptions = append(descriptions, toolDescription{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: tool.InputSchema(t.Args),
			Annotations: resolveAnnotations(t.Annotations),
		})
	}
	return writeResult(encoder, req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	payload, callErr := s.registry.Call(context.Background(), params.Name, params.Arguments)
	return writeResult(encoder, req.ID, buildToolResult(payload, callErr))
}

// buildToolResult assembles a toolsCallResult from a tool payload and an
// optional categorized error. Tool failures are reported inside the
// result (isError plus errorInfo), never as JSON-RPC protocol errors —
// one bad call must not look like a broken server.
func buildToolResult(payload json.RawMessage, callErr *tool.Error) toolsCallResult {
	result := toolsCallResult{}
	if callErr != nil {
		result.IsError = true
		result.Content = append(result.Content, contentBlock{
			Type: "text",
			Text: callErr.Error(),
		})
		result.ErrorInfo = &errorInfo{
			Category:  string(callErr.Kind),
			Retryable: callErr.Retriable(),
		}
		return result
	}

	// Responses are re-indented for the agent; the payload arrives
	// compact from the API. A payload that won't parse is passed
	// through as-is rather than dropped.
	text := string(payload)
	var buf bytes.Buffer
	if json.Indent(&buf, payload, "", "  ") == nil {
		text = buf.String()
	}
	result.Content = append(result.Content, contentBlock{
		Type: "text",
		Text: text,
	})
	return result
}

// resolveAnnotations translates a tool's behavioral annotations into MCP
// protocol hints. Returns nil when the tool declares none, letting MCP
// clients apply the spec defaults (destructive, non-idempotent,
// open-world).
func resolveAnnotations(annotations *tool.Annotations) *toolAnnotations {
	if annotations == nil {
		return nil
	}
	return &toolAnnotations{
		ReadOnlyHint:    annotations.ReadOnly,
		DestructiveHint: annotations.Destructive,
		IdempotentHint:  annotations.Idempotent,
		OpenWorldHint:   annotations.OpenWorld,
	}
}

// writeResult sends a JSON-RPC 2.0 success response.
func writeResult(encoder *json.Encoder, id json.RawMessage, result any) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// writeError sends a JSON-RPC 2.0 error response.
func writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}
