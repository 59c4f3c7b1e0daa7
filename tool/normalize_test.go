// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"errors"
	"testing"
)

func TestNormalizeStructuredEquivalence(t *testing.T) {
	// A native object and its JSON-encoded text form must normalize to
	// identical bytes.
	native := `{"property": "Status", "select": {"equals": "Done"}}`
	encoded := `"{\"property\": \"Status\", \"select\": {\"equals\": \"Done\"}}"`

	fromNative, err := Normalize("filter", []byte(native), ShapeObject)
	if err != nil {
		t.Fatalf("normalize native: %v", err)
	}
	fromText, err := Normalize("filter", []byte(encoded), ShapeObject)
	if err != nil {
		t.Fatalf("normalize text: %v", err)
	}
	if string(fromNative) != string(fromText) {
		t.Errorf("native and text forms differ:\n  native: %s\n  text:   %s", fromNative, fromText)
	}

	// Normalizing an already-normalized value is a no-op.
	again, err := Normalize("filter", fromNative, ShapeObject)
	if err != nil {
		t.Fatalf("re-normalize: %v", err)
	}
	if string(again) != string(fromNative) {
		t.Errorf("normalization is not idempotent: %s vs %s", again, fromNative)
	}
}

func TestNormalizeListEquivalence(t *testing.T) {
	native := `[{"property": "Created", "direction": "descending"}]`
	encoded := `"[{\"property\": \"Created\", \"direction\": \"descending\"}]"`

	fromNative, err := Normalize("sorts", []byte(native), ShapeList)
	if err != nil {
		t.Fatalf("normalize native: %v", err)
	}
	fromText, err := Normalize("sorts", []byte(encoded), ShapeList)
	if err != nil {
		t.Fatalf("normalize text: %v", err)
	}
	if string(fromNative) != string(fromText) {
		t.Errorf("native and text forms differ:\n  native: %s\n  text:   %s", fromNative, fromText)
	}
}

func TestNormalizeScalars(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		shape   Shape
		want    string
		wantErr bool
	}{
		{name: "string", raw: `"hello"`, shape: ShapeString, want: `"hello"`},
		{name: "int", raw: `42`, shape: ShapeInt, want: `42`},
		{name: "bool", raw: `true`, shape: ShapeBool, want: `true`},
		{name: "float rejected as int", raw: `4.5`, shape: ShapeInt, wantErr: true},
		{name: "string rejected as int", raw: `"42"`, shape: ShapeInt, wantErr: true},
		{name: "number rejected as string", raw: `42`, shape: ShapeString, wantErr: true},
		{name: "string rejected as bool", raw: `"true"`, shape: ShapeBool, wantErr: true},
		{name: "empty value", raw: ``, shape: ShapeString, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize("param", []byte(tt.raw), tt.shape)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				assertValidation(t, err)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizeStructuredRejections(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		shape Shape
	}{
		{name: "malformed text", raw: `"{not json"`, shape: ShapeObject},
		{name: "empty text", raw: `"  "`, shape: ShapeObject},
		{name: "array text for object shape", raw: `"[1, 2]"`, shape: ShapeObject},
		{name: "object text for list shape", raw: `"{\"a\": 1}"`, shape: ShapeList},
		{name: "native array for object shape", raw: `[1, 2]`, shape: ShapeObject},
		{name: "native object for list shape", raw: `{"a": 1}`, shape: ShapeList},
		{name: "number for object shape", raw: `42`, shape: ShapeObject},
		{name: "scalar text for object shape", raw: `"42"`, shape: ShapeObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize("param", []byte(tt.raw), tt.shape)
			if err == nil {
				t.Fatalf("expected error, got %s", got)
			}
			assertValidation(t, err)
		})
	}
}

func TestNormalizeTextWithWhitespace(t *testing.T) {
	got, err := Normalize("parent", []byte(`"  {\"page_id\": \"abc\"}  "`), ShapeObject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"page_id":"abc"}` {
		t.Errorf("got %s", got)
	}
}

// assertValidation checks that an error is a categorized validation error.
func assertValidation(t *testing.T, err error) {
	t.Helper()
	var toolErr *Error
	if !errors.As(err, &toolErr) {
		t.Fatalf("error is not a *tool.Error: %v", err)
	}
	if toolErr.Kind != KindValidation {
		t.Errorf("error kind = %q, want %q", toolErr.Kind, KindValidation)
	}
	if toolErr.Retriable() {
		t.Errorf("validation error reported as retriable")
	}
}
