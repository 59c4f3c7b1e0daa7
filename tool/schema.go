// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

// Schema is a JSON Schema representation covering the subset needed for
// MCP tool input descriptions. It maps directly to the JSON Schema
// objects that MCP's inputSchema field expects.
type Schema struct {
	// Type is the JSON Schema type: "object", "string", "boolean",
	// "integer", or "array".
	Type string `json:"type,omitempty"`

	// Description is a human-readable explanation of the parameter.
	Description string `json:"description,omitempty"`

	// Properties maps property names to their schemas. Only set when
	// Type is "object".
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Required lists property names that must be provided.
	Required []string `json:"required,omitempty"`

	// AnyOf expresses union-typed parameters. Structured parameters
	// accept either the native shape or a JSON-encoded string of it.
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// InputSchema builds the MCP inputSchema for a tool from its declared
// argument specs.
func InputSchema(args []Arg) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema, len(args)),
	}
	for _, arg := range args {
		schema.Properties[arg.Name] = argSchema(arg)
		if arg.Required {
			schema.Required = append(schema.Required, arg.Name)
		}
	}
	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}
	return schema
}

// argSchema builds the schema for a single argument. Structured shapes
// are declared as a union with string, since the normalizer accepts a
// JSON-encoded text equivalent for every structured parameter.
func argSchema(arg Arg) *Schema {
	switch arg.Shape {
	case ShapeObject:
		return &Schema{
			Description: arg.Description,
			AnyOf: []*Schema{
				{Type: "object"},
				{Type: "string", Description: "JSON-encoded object"},
			},
		}
	case ShapeList:
		return &Schema{
			Description: arg.Description,
			AnyOf: []*Schema{
				{Type: "array"},
				{Type: "string", Description: "JSON-encoded array"},
			},
		}
	default:
		return &Schema{Type: arg.Shape.String(), Description: arg.Description}
	}
}
