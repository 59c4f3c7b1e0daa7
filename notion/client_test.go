// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordedRequest captures what the client sent for assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// newTestClient starts an httptest server that records requests and
// responds with the given status and body.
func newTestClient(t *testing.T, status int, responseBody string) (*Client, *[]recordedRequest) {
	t.Helper()

	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, responseBody)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "secret-token",
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, &recorded
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatalf("expected error for missing token")
	}
}

func TestRequestHeaders(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"object": "page", "id": "p1"}`)

	if _, err := client.CreatePage(context.Background(), CreatePageRequest{
		Parent:     json.RawMessage(`{"page_id": "p0"}`),
		Properties: json.RawMessage(`{}`),
	}); err != nil {
		t.Fatalf("CreatePage: %v", err)
	}

	req := (*recorded)[0]
	if got := req.Header.Get("Authorization"); got != "Bearer secret-token" {
		t.Errorf("Authorization = %q", got)
	}
	if got := req.Header.Get("Notion-Version"); got != "2025-09-03" {
		t.Errorf("Notion-Version = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if req.Method != http.MethodPost || req.Path != "/v1/pages" {
		t.Errorf("request = %s %s, want POST /v1/pages", req.Method, req.Path)
	}
}

func TestGetRequestOmitsContentType(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)
	if _, err := client.GetSelf(context.Background()); err != nil {
		t.Fatalf("GetSelf: %v", err)
	}
	if got := (*recorded)[0].Header.Get("Content-Type"); got != "" {
		t.Errorf("Content-Type set on bodyless request: %q", got)
	}
}

func TestAPIErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound,
		`{"object": "error", "status": 404, "code": "object_not_found", "message": "Could not find page"}`)

	_, err := client.GetPage(context.Background(), "missing", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is not *APIError: %v", err)
	}
	if apiErr.Code != ErrCodeObjectNotFound {
		t.Errorf("code = %q", apiErr.Code)
	}
	if apiErr.Status != 404 {
		t.Errorf("status = %d", apiErr.Status)
	}
	if !strings.Contains(apiErr.Error(), "Could not find page") {
		t.Errorf("message lost: %v", apiErr)
	}
}

func TestNonJSONErrorBodySurfaces(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadGateway, `<html>upstream error</html>`)

	_, err := client.GetSelf(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	// The raw body must stay visible and the HTTP status must survive
	// for status-based classification.
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("non-envelope error lost its structure: %v", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", apiErr.Status)
	}
	if apiErr.Code != ErrCodeUnexpected {
		t.Errorf("code = %q", apiErr.Code)
	}
	if !strings.Contains(err.Error(), "upstream error") {
		t.Errorf("raw body not preserved: %v", err)
	}
}

func TestPaginationQueryParameters(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"object": "list", "results": []}`)

	if _, err := client.ListUsers(context.Background(), "cursor-1", 25); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	query := (*recorded)[0].Query
	if !strings.Contains(query, "start_cursor=cursor-1") {
		t.Errorf("start_cursor missing from query: %q", query)
	}
	if !strings.Contains(query, "page_size=25") {
		t.Errorf("page_size missing from query: %q", query)
	}

	// Zero values produce no query string at all.
	if _, err := client.ListUsers(context.Background(), "", 0); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if got := (*recorded)[1].Query; got != "" {
		t.Errorf("unexpected query for defaults: %q", got)
	}
}

func TestGetPageFilterProperties(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"object": "page", "id": "p1"}`)

	if _, err := client.GetPage(context.Background(), "p1", []string{"title", "abc"}); err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	query := (*recorded)[0].Query
	if strings.Count(query, "filter_properties=") != 2 {
		t.Errorf("filter_properties not repeated per value: %q", query)
	}
}

func TestUpdatePageOmitsUnsetFields(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"object": "page", "id": "p1"}`)

	archived := true
	if _, err := client.UpdatePage(context.Background(), "p1", UpdatePageRequest{
		Archived: &archived,
	}); err != nil {
		t.Fatalf("UpdatePage: %v", err)
	}
	if got := string((*recorded)[0].Body); got != `{"archived":true}` {
		t.Errorf("body = %s, want only the archived flag", got)
	}
}

func TestArchivePageIsAnUpdate(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"object": "page", "id": "p1"}`)

	if _, err := client.ArchivePage(context.Background(), "p1"); err != nil {
		t.Fatalf("ArchivePage: %v", err)
	}

	req := (*recorded)[0]
	if req.Method != http.MethodPatch || req.Path != "/v1/pages/p1" {
		t.Errorf("request = %s %s, want PATCH /v1/pages/p1", req.Method, req.Path)
	}
	if string(req.Body) != `{"archived":true}` {
		t.Errorf("body = %s", req.Body)
	}
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetSelf(ctx)
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	// The cancellation must survive the client's error wrapping.
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation not preserved in chain: %v", err)
	}
}
