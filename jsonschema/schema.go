package jsonschema

import json "github.com/goccy/go-json"

// Schema is a minimal JSON Schema representation used for export.
// It carries only the keywords nonempty.JSONSchema produces.
type Schema struct {
	Type string `json:"type,omitempty"`

	// Annotations
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`
}

// Int returns a pointer to n, for MinLength.
func Int(n int) *int { return &n }

// Marshal renders s as a JSON document.
func Marshal(s *Schema) ([]byte, error) { return json.Marshal(s) }

// MarshalIndent renders s as an indented JSON document.
func MarshalIndent(s *Schema, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(s, prefix, indent)
}
