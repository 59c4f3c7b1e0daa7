// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Shape is the declared shape of a tool argument.
type Shape int

const (
	// ShapeString is a plain string value.
	ShapeString Shape = iota
	// ShapeInt is an integer value.
	ShapeInt
	// ShapeBool is a boolean value.
	ShapeBool
	// ShapeObject is a JSON object, accepted either natively or as a
	// JSON-encoded string.
	ShapeObject
	// ShapeList is a JSON array, accepted either natively or as a
	// JSON-encoded string.
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeInt:
		return "integer"
	case ShapeBool:
		return "boolean"
	case ShapeObject:
		return "object"
	case ShapeList:
		return "array"
	default:
		return "unknown"
	}
}

// Normalize converts a raw argument value into the canonical form its
// declared shape requires, or fails with a validation error naming the
// parameter.
//
// Scalars pass through after a type check. For object and array shapes the
// pipeline is two explicit steps: parse-attempt — a string value is
// unquoted and parsed as JSON (calling agents frequently emit encoded text
// for structured parameters); then shape-validate — the value, parsed or
// native, must actually be the declared shape. Both paths re-encode
// compactly, so a native value and its JSON-text encoding normalize to
// identical bytes.
func Normalize(name string, raw json.RawMessage, shape Shape) (json.RawMessage, error) {
	value := bytes.TrimSpace(raw)
	if len(value) == 0 {
		return nil, Validation("parameter %q is empty", name)
	}

	switch shape {
	case ShapeString:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, Validation("parameter %q must be a string", name)
		}
		return compact(name, value)

	case ShapeInt:
		// Unmarshal into int64, not json.Number: a Number target also
		// accepts quoted numerals like "42", which would leave a JSON
		// string where the schema declares an integer.
		var n int64
		if err := json.Unmarshal(value, &n); err != nil {
			return nil, Validation("parameter %q must be an integer", name)
		}
		return compact(name, value)

	case ShapeBool:
		var b bool
		if err := json.Unmarshal(value, &b); err != nil {
			return nil, Validation("parameter %q must be a boolean", name)
		}
		return compact(name, value)

	case ShapeObject, ShapeList:
		return normalizeStructured(name, value, shape)

	default:
		return nil, Validation("parameter %q has an unknown declared shape", name)
	}
}

// normalizeStructured handles the structured-or-text union. A native value
// of the declared shape passes through; a string value is parsed as JSON
// and the result shape-checked.
func normalizeStructured(name string, value []byte, shape Shape) (json.RawMessage, error) {
	open := byte('{')
	if shape == ShapeList {
		open = '['
	}

	if value[0] == open {
		return compact(name, value)
	}

	if value[0] == '"' {
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return nil, Validation("invalid JSON for parameter %q: %v", name, err)
		}
		inner := strings.TrimSpace(text)
		if inner == "" || !json.Valid([]byte(inner)) {
			return nil, Validation("invalid JSON for parameter %q: not valid JSON text", name)
		}
		if inner[0] != open {
			return nil, Validation("parameter %q must be %s (or a JSON-encoded %s)",
				name, article(shape), shape)
		}
		return compact(name, []byte(inner))
	}

	return nil, Validation("parameter %q must be %s (or a JSON-encoded %s)",
		name, article(shape), shape)
}

// compact re-encodes a JSON value without insignificant whitespace. This
// is the canonicalization step that makes native and text-encoded inputs
// normalize identically.
func compact(name string, value []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, Validation("invalid JSON for parameter %q: %v", name, err)
	}
	return buf.Bytes(), nil
}

func article(shape Shape) string {
	if shape == ShapeList {
		return "an array"
	}
	return "an object"
}
