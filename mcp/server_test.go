// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/notionkit/notion-mcp/tool"
)

// testResponse is a JSON-RPC 2.0 response for test assertions. Result
// is kept as raw JSON so each test can unmarshal it into the expected type.
type testResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *testRPCError   `json:"error"`
}

type testRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRegistry returns a registry with one succeeding and one failing
// tool, enough to exercise every tools/call path.
func testRegistry(t *testing.T) *tool.Registry {
	t.Helper()

	yes := true
	registry, err := tool.NewRegistry(testLogger(),
		&tool.Tool{
			Name:        "echo",
			Description: "Echo the message argument back as JSON.",
			Annotations: &tool.Annotations{ReadOnly: &yes, Idempotent: &yes},
			Args: []tool.Arg{
				{Name: "message", Shape: tool.ShapeString, Required: true,
					Description: "message to echo"},
			},
			Handler: func(ctx context.Context, args tool.Args) (json.RawMessage, error) {
				payload, err := json.Marshal(map[string]string{"message": args.String("message")})
				if err != nil {
					return nil, err
				}
				return payload, nil
			},
		},
		&tool.Tool{
			Name:        "fail",
			Description: "Always fails with a rate limit.",
			Handler: func(ctx context.Context, args tool.Args) (json.RawMessage, error) {
				return nil, tool.RateLimited("slow down")
			},
		},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

// initMessages returns the initialize request and initialized
// notification that start every MCP session.
func initMessages() []map[string]any {
	return []map[string]any{
		{
			"jsonrpc": "2.0",
			"id":      0,
			"method":  "initialize",
			"params": map[string]any{
				"protocolVersion": protocolVersion,
				"capabilities":    map[string]any{},
				"clientInfo":      map[string]any{"name": "test", "version": "1.0"},
			},
		},
		{
			"jsonrpc": "2.0",
			"method":  "notifications/initialized",
		},
	}
}

// mcpSession sends a sequence of JSON-RPC messages to a fresh MCP
// server and returns the responses. Notifications produce no response.
func mcpSession(t *testing.T, messages ...map[string]any) []testResponse {
	t.Helper()

	var input bytes.Buffer
	for _, msg := range messages {
		data, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal message: %v", err)
		}
		input.Write(data)
		input.WriteByte('\n')
	}

	var output bytes.Buffer
	server := NewServer(testRegistry(t), testLogger())
	if err := server.Run(&input, &output); err != nil {
		t.Fatalf("server.Run: %v", err)
	}

	var responses []testResponse
	scanner := bufio.NewScanner(&output)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var resp testResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			t.Fatalf("unmarshal response: %v\nraw: %s", err, line)
		}
		responses = append(responses, resp)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning output: %v", err)
	}

	return responses
}

func callMessage(id int, toolName string, arguments map[string]any) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      toolName,
			"arguments": arguments,
		},
	}
}

func TestInitialize(t *testing.T) {
	responses := mcpSession(t, initMessages()...)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Fatalf("initialize failed: %+v", responses[0].Error)
	}

	var result initializeResult
	if err := json.Unmarshal(responses[0].Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.ProtocolVersion != protocolVersion {
		t.Errorf("protocolVersion = %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "notion-mcp" {
		t.Errorf("serverInfo.name = %q", result.ServerInfo.Name)
	}
	if result.Capabilities.Tools == nil {
		t.Errorf("tools capability not declared")
	}
}

func TestRequestsBeforeInitializeRejected(t *testing.T) {
	responses := mcpSession(t, map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/list",
	})
	if len(responses) != 1 || responses[0].Error == nil {
		t.Fatalf("expected error response, got %+v", responses)
	}
	if responses[0].Error.Code != codeInvalidRequest {
		t.Errorf("code = %d, want %d", responses[0].Error.Code, codeInvalidRequest)
	}
}

func TestToolsList(t *testing.T) {
	messages := append(initMessages(), map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/list",
	})
	responses := mcpSession(t, messages...)
	last := responses[len(responses)-1]
	if last.Error != nil {
		t.Fatalf("tools/list failed: %+v", last.Error)
	}

	var result struct {
		Tools []struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			InputSchema json.RawMessage `json:"inputSchema"`
			Annotations *struct {
				ReadOnlyHint *bool `json:"readOnlyHint"`
			} `json:"annotations"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(last.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(result.Tools))
	}

	echo := result.Tools[0]
	if echo.Name != "echo" {
		t.Errorf("tools[0].name = %q", echo.Name)
	}
	if !strings.Contains(string(echo.InputSchema), `"message"`) {
		t.Errorf("input schema missing declared argument: %s", echo.InputSchema)
	}
	if !strings.Contains(string(echo.InputSchema), `"required":["message"]`) {
		t.Errorf("input schema missing required list: %s", echo.InputSchema)
	}
	if echo.Annotations == nil || echo.Annotations.ReadOnlyHint == nil || !*echo.Annotations.ReadOnlyHint {
		t.Errorf("read-only annotation not surfaced")
	}
}

func TestToolsCallSuccess(t *testing.T) {
	messages := append(initMessages(),
		callMessage(1, "echo", map[string]any{"message": "hello"}))
	responses := mcpSession(t, messages...)
	last := responses[len(responses)-1]
	if last.Error != nil {
		t.Fatalf("tools/call failed: %+v", last.Error)
	}

	var result toolsCallResult
	if err := json.Unmarshal(last.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("content = %+v", result.Content)
	}
	// The payload is re-indented for readability.
	if !strings.Contains(result.Content[0].Text, "\"message\": \"hello\"") {
		t.Errorf("payload text = %q", result.Content[0].Text)
	}
}

func TestToolsCallFailureCarriesErrorInfo(t *testing.T) {
	messages := append(initMessages(), callMessage(1, "fail", nil))
	responses := mcpSession(t, messages...)
	last := responses[len(responses)-1]
	if last.Error != nil {
		t.Fatalf("tool failure surfaced as protocol error: %+v", last.Error)
	}

	var result toolsCallResult
	if err := json.Unmarshal(last.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !result.IsError {
		t.Fatalf("isError not set")
	}
	if result.ErrorInfo == nil {
		t.Fatalf("errorInfo missing")
	}
	if result.ErrorInfo.Category != "rate_limited" {
		t.Errorf("category = %q", result.ErrorInfo.Category)
	}
	if !result.ErrorInfo.Retryable {
		t.Errorf("rate limit not marked retryable")
	}
	if len(result.Content) == 0 || !strings.Contains(result.Content[0].Text, "slow down") {
		t.Errorf("error text missing: %+v", result.Content)
	}
}

func TestToolsCallValidationFailure(t *testing.T) {
	messages := append(initMessages(),
		callMessage(1, "echo", map[string]any{"bogus": 1}))
	responses := mcpSession(t, messages...)
	last := responses[len(responses)-1]

	var result toolsCallResult
	if err := json.Unmarshal(last.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !result.IsError || result.ErrorInfo == nil {
		t.Fatalf("validation failure not reported in result: %+v", result)
	}
	if result.ErrorInfo.Category != "validation" {
		t.Errorf("category = %q", result.ErrorInfo.Category)
	}
	if result.ErrorInfo.Retryable {
		t.Errorf("validation error marked retryable")
	}
}

func TestPing(t *testing.T) {
	responses := mcpSession(t, map[string]any{
		"jsonrpc": "2.0",
		"id":      7,
		"method":  "ping",
	})
	if len(responses) != 1 || responses[0].Error != nil {
		t.Fatalf("ping failed: %+v", responses)
	}
}

func TestUnknownMethod(t *testing.T) {
	messages := append(initMessages(), map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "resources/list",
	})
	responses := mcpSession(t, messages...)
	last := responses[len(responses)-1]
	if last.Error == nil || last.Error.Code != codeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", last)
	}
}

func TestParseErrorResponse(t *testing.T) {
	var input bytes.Buffer
	input.WriteString("this is not json\n")

	var output bytes.Buffer
	server := NewServer(testRegistry(t), testLogger())
	if err := server.Run(&input, &output); err != nil {
		t.Fatalf("server.Run: %v", err)
	}

	var resp testResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v\nraw: %s", err, output.Bytes())
	}
	if resp.Error == nil || resp.Error.Code != codeParseError {
		t.Fatalf("expected parse error, got %+v", resp)
	}
	if string(resp.ID) != "null" {
		t.Errorf("parse error id = %s, want null", resp.ID)
	}
}

func TestOversizedRequestStillServed(t *testing.T) {
	// A single tools/call line well past any fixed read buffer must be
	// answered like any other request, and the session must keep going.
	big := strings.Repeat("x", 2<<20)
	messages := append(initMessages(),
		callMessage(1, "echo", map[string]any{"message": big}),
		map[string]any{"jsonrpc": "2.0", "id": 2, "method": "ping"},
	)
	responses := mcpSession(t, messages...)
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}

	call := responses[1]
	if call.Error != nil {
		t.Fatalf("oversized tools/call failed: %+v", call.Error)
	}
	var result toolsCallResult
	if err := json.Unmarshal(call.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.ErrorInfo)
	}
	if len(result.Content) == 0 || !strings.Contains(result.Content[0].Text, big) {
		t.Errorf("echoed payload truncated")
	}

	if responses[2].Error != nil {
		t.Errorf("ping after oversized call failed: %+v", responses[2].Error)
	}
}

func TestNotificationsProduceNoResponse(t *testing.T) {
	messages := append(initMessages(), map[string]any{
		"jsonrpc": "2.0",
		"method":  "notifications/cancelled",
	})
	responses := mcpSession(t, messages...)
	// Only the initialize response.
	if len(responses) != 1 {
		t.Errorf("expected 1 response, got %d", len(responses))
	}
}
