// Copyright 2026 The Notion MCP Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import "encoding/json"

// Slim strips metadata noise from a Notion response payload before it is
// returned to the agent: null values, audit metadata on entity objects,
// default rich-text annotations, and select option IDs. The slimmed
// payload round-trips through the API unchanged in meaning — everything
// removed is either redundant (nulls, defaults) or audit data an agent
// has no use for.
//
// A payload that does not parse as JSON is returned unmodified.
func Slim(payload json.RawMessage) json.RawMessage {
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return payload
	}
	slimmed, err := json.Marshal(slimValue(value))
	if err != nil {
		return payload
	}
	return slimmed
}

// Keys stripped from every object.
var alwaysStripKeys = map[string]bool{
	"object":     true,
	"request_id": true,
}

// Audit metadata stripped from entity objects (pages, blocks, databases,
// data sources, comments).
var entityMetaKeys = map[string]bool{
	"parent":           true,
	"created_by":       true,
	"last_edited_by":   true,
	"created_time":     true,
	"last_edited_time": true,
}

// Boolean flags stripped from entity objects when false.
var entityFalseKeys = map[string]bool{
	"archived":  true,
	"in_trash":  true,
	"is_locked": true,
}

func slimValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return slimMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = slimValue(item)
		}
		return out
	default:
		return value
	}
}

// isEntity reports whether a map is a Notion entity object — a page,
// block, database, data source, or comment — as opposed to an arbitrary
// nested value. Entities carry an id plus one of the keys that only
// entities have. Pages from recent API versions may lack a top-level
// "type", so "properties" participates in the heuristic; databases match
// via "data_sources" and comments via "discussion_id".
func isEntity(m map[string]any) bool {
	if _, ok := m["id"]; !ok {
		return false
	}
	for _, key := range []string{"type", "properties", "data_sources", "discussion_id"} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func slimMap(m map[string]any) map[string]any {
	entity := isEntity(m)
	typeName, _ := m["type"].(string)
	_, isListEnvelope := m["results"]
	_, hasRichText := m["rich_text"]

	out := make(map[string]any, len(m))
	for key, value := range m {
		if value == nil {
			continue
		}
		if alwaysStripKeys[key] {
			continue
		}

		// Entity audit metadata. A property value whose own type names
		// one of the metadata keys (e.g. a created_time property) keeps
		// its data key — only true metadata is stripped.
		if entity && entityMetaKeys[key] && typeName != key {
			continue
		}
		if entity && entityFalseKeys[key] {
			if b, ok := value.(bool); ok && !b {
				continue
			}
		}

		// List envelopes repeat the result type twice ("type" plus an
		// empty echo key) — both are noise.
		if isListEnvelope {
			if key == "type" {
				continue
			}
			if key == typeName && typeName != "" {
				continue
			}
			if key == "page_or_data_source" {
				if echo, ok := value.(map[string]any); ok && len(echo) == 0 {
					continue
				}
			}
		}

		// Block content defaults.
		if hasRichText {
			if key == "color" && value == "default" {
				continue
			}
			if key == "is_toggleable" {
				if b, ok := value.(bool); ok && !b {
					continue
				}
			}
		}

		switch key {
		case "rich_text", "title", "caption":
			if list, ok := value.([]any); ok {
				out[key] = slimRichTextList(list)
				continue
			}
		case "select", "multi_select", "status":
			value = stripSelectIDs(value)
		}

		out[key] = slimValue(value)
	}
	return out
}

// slimRichTextList slims each rich-text item in an array: default
// annotations are dropped, plain_text is dropped for plain text items
// (it duplicates text.content), and nulls disappear through the general
// recursion. For mentions and equations plain_text is the only readable
// rendering, so it stays.
func slimRichTextList(list []any) []any {
	out := make([]any, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			out[i] = slimValue(item)
			continue
		}
		out[i] = slimRichTextItem(m)
	}
	return out
}

func slimRichTextItem(m map[string]any) map[string]any {
	typeName, _ := m["type"].(string)
	out := make(map[string]any, len(m))
	for key, value := range m {
		if value == nil {
			continue
		}
		switch key {
		case "annotations":
			if annotations, ok := value.(map[string]any); ok {
				slimmed := slimAnnotations(annotations)
				if len(slimmed) > 0 {
					out[key] = slimmed
				}
				continue
			}
		case "plain_text":
			if typeName == "text" {
				continue
			}
		}
		out[key] = slimValue(value)
	}
	return out
}

// slimAnnotations keeps only non-default annotation flags: true booleans
// and a color other than "default".
func slimAnnotations(annotations map[string]any) map[string]any {
	out := make(map[string]any, len(annotations))
	for key, value := range annotations {
		if key == "color" {
			if value != "default" && value != nil {
				out[key] = value
			}
			continue
		}
		if b, ok := value.(bool); ok && b {
			out[key] = value
		}
	}
	return out
}

// stripSelectIDs removes option IDs from select, status, and multi_select
// values and from option lists in property definitions. The option name
// is the stable handle an agent works with; the ID is internal.
func stripSelectIDs(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = stripSelectIDs(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if key == "id" {
				continue
			}
			if key == "options" {
				out[key] = stripSelectIDs(item)
				continue
			}
			out[key] = item
		}
		return out
	default:
		return value
	}
}
