// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Arg declares one argument a tool accepts: its name, expected shape,
// and whether the caller must provide it.
type Arg struct {
	Name        string
	Shape       Shape
	Description string
	Required    bool
}

// Annotations provides MCP behavioral hints about a tool. All fields are
// optional pointers; when nil the MCP-specified defaults apply:
// readOnly=false, destructive=true, idempotent=false, openWorld=true.
type Annotations struct {
	ReadOnly    *bool
	Destructive *bool
	Idempotent  *bool
	OpenWorld   *bool
}

// Args holds the normalized arguments passed to a handler. Every value
// has already been validated against its declared shape — structured
// values are guaranteed to be actual JSON objects or arrays, never
// JSON-encoded text.
type Args map[string]json.RawMessage

// Has reports whether the caller supplied the argument.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Raw returns the normalized raw value, or nil when absent.
func (a Args) Raw(name string) json.RawMessage {
	return a[name]
}

// String returns a string argument, or "" when absent.
func (a Args) String(name string) string {
	raw, ok := a[name]
	if !ok {
		return ""
	}
	var s string
	// Normalization already verified the shape.
	json.Unmarshal(raw, &s)
	return s
}

// Int returns an integer argument, or 0 when absent.
func (a Args) Int(name string) int {
	raw, ok := a[name]
	if !ok {
		return 0
	}
	var n int
	json.Unmarshal(raw, &n)
	return n
}

// BoolPtr returns a boolean argument, or nil when absent. The pointer
// form distinguishes "not supplied" from "explicitly false", which the
// API request structs need for omitempty fields.
func (a Args) BoolPtr(name string) *bool {
	raw, ok := a[name]
	if !ok {
		return nil
	}
	var b bool
	json.Unmarshal(raw, &b)
	return &b
}

// StringList decodes a list argument into a string slice. Fails with a
// validation error when any element is not a string.
func (a Args) StringList(name string) ([]string, error) {
	raw, ok := a[name]
	if !ok {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, Validation("parameter %q must be an array of strings", name)
	}
	return list, nil
}

// Handler executes a tool call with normalized arguments, returning the
// raw result payload or an error for the translator to classify.
type Handler func(ctx context.Context, args Args) (json.RawMessage, error)

// Tool is one entry in the static tool table.
type Tool struct {
	// Name is the tool identifier used in tools/call requests.
	Name string

	// Description is the human-readable tool description for tools/list.
	Description string

	// Annotations carry MCP behavioral hints. Nil means the protocol
	// defaults apply.
	Annotations *Annotations

	// Args declares every argument the tool accepts. Arguments outside
	// this list are rejected.
	Args []Arg

	// Handler executes the call.
	Handler Handler
}

// Registry is the static tool table, built once at process start. It is
// immutable after construction and safe for concurrent use.
type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
	logger *slog.Logger
}

// NewRegistry builds the tool table and validates it eagerly: empty or
// duplicate tool names, nil handlers, and duplicate argument declarations
// are construction errors, caught before any request is served.
func NewRegistry(logger *slog.Logger, tools ...*Tool) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	byName := make(map[string]*Tool, len(tools))
	for _, t := range tools {
		if t.Name == "" {
			return nil, Validation("tool with empty name")
		}
		if t.Handler == nil {
			return nil, Validation("tool %s has no handler", t.Name)
		}
		if _, exists := byName[t.Name]; exists {
			return nil, Validation("duplicate tool name: %s", t.Name)
		}
		seen := make(map[string]bool, len(t.Args))
		for _, arg := range t.Args {
			if arg.Name == "" {
				return nil, Validation("tool %s declares an unnamed argument", t.Name)
			}
			if seen[arg.Name] {
				return nil, Validation("tool %s declares argument %q twice", t.Name, arg.Name)
			}
			seen[arg.Name] = true
		}
		byName[t.Name] = t
	}

	return &Registry{tools: tools, byName: byName, logger: logger}, nil
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []*Tool {
	return r.tools
}

// Call dispatches a tool invocation: look up the handler, normalize every
// declared argument, run the handler, and classify any failure. Exactly
// one of payload and error is non-nil. Failures never escape unclassified
// and never terminate the process.
func (r *Registry) Call(ctx context.Context, name string, arguments json.RawMessage) (json.RawMessage, *Error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, Validation("unknown tool: %s", name)
	}

	provided := map[string]json.RawMessage{}
	if len(arguments) > 0 && string(arguments) != "null" {
		if err := json.Unmarshal(arguments, &provided); err != nil {
			return nil, Validation("invalid arguments for tool %s: %v", name, err)
		}
	}

	declared := make(map[string]Arg, len(t.Args))
	for _, arg := range t.Args {
		declared[arg.Name] = arg
	}
	for argName := range provided {
		if _, ok := declared[argName]; !ok {
			return nil, Validation("unknown parameter %q for tool %s", argName, name)
		}
	}

	normalized := make(Args, len(provided))
	for _, arg := range t.Args {
		raw, ok := provided[arg.Name]
		// JSON null is treated as absent, matching callers that emit
		// explicit nulls for optional parameters they don't use.
		if !ok || string(raw) == "null" {
			if arg.Required {
				return nil, Validation("missing required parameter %q for tool %s", arg.Name, name)
			}
			continue
		}
		value, err := Normalize(arg.Name, raw, arg.Shape)
		if err != nil {
			return nil, Classify(err)
		}
		normalized[arg.Name] = value
	}

	r.logger.Debug("dispatching tool call", "tool", name)

	payload, err := t.Handler(ctx, normalized)
	if err != nil {
		classified := Classify(err)
		r.logger.Debug("tool call failed",
			"tool", name,
			"kind", string(classified.Kind),
			"error", classified.Error(),
		)
		return nil, classified
	}
	return payload, nil
}
