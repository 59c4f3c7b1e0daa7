// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds response body reads: 64 MB. This exists solely to
// prevent a pathological response from exhausting memory. Legitimate Notion
// API responses are orders of magnitude smaller.
const maxResponseSize int64 = 64 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the base URL of the Notion API. If empty,
	// "https://api.notion.com" is used.
	BaseURL string
	// APIVersion is the value for the Notion-Version header. If empty,
	// "2025-09-03" is used.
	APIVersion string
	// Token is the integration token sent as a bearer credential.
	// Required.
	Token string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is an authenticated Notion API client. It holds the base URL,
// token, and HTTP transport, and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Notion API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("notion: Token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}
	// Validate the URL structure. We store the string form (with trailing
	// slash stripped) and build request URLs by direct concatenation.
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("notion: invalid BaseURL %q: %w", baseURL, err)
	}

	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = "2025-09-03"
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: apiVersion,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's connection pool.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// doRequest performs an HTTP request to the Notion API and returns the
// response body. On 2xx, returns the body. On 4xx/5xx, returns an
// *APIError decoded from the standard Notion error envelope.
// query may be nil for endpoints without query parameters.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, requestBody any) (json.RawMessage, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("notion: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("notion: failed to create request: %w", err)
	}

	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Notion-Version", c.apiVersion)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("notion: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := readResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("notion: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// All Notion error responses use the same JSON envelope.
	var apiErr APIError
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil || apiErr.Code == "" {
		// Server returned a non-JSON or unrecognized error body. This
		// should not happen with the real API. Fail loud with the raw
		// body, but still as an *APIError so the HTTP status stays
		// available for classification (a 429 is rate limiting whatever
		// the body looks like).
		return nil, &APIError{
			Code:    ErrCodeUnexpected,
			Message: fmt.Sprintf("unexpected response from %s %s: %s", method, path, string(responseBody)),
			Status:  response.StatusCode,
		}
	}
	apiErr.Status = response.StatusCode

	return nil, &apiErr
}

// readResponse reads a response body bounded at maxResponseSize.
func readResponse(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxResponseSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxResponseSize)
	}
	return data, nil
}

// paginationQuery builds the query values shared by list endpoints.
func paginationQuery(startCursor string, pageSize int) url.Values {
	query := url.Values{}
	if startCursor != "" {
		query.Set("start_cursor", startCursor)
	}
	if pageSize > 0 {
		query.Set("page_size", fmt.Sprint(pageSize))
	}
	return query
}
