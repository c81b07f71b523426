// Package jsonschema is the interchange format for enumforge schemas: a
// minimal JSON Schema representation that survives serialization to JSON or
// YAML and round-trips the flexibility tagging through the x-enumforge
// extension. It is a projection, not a validator.
package jsonschema

import (
	gojson "github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation used for interchange.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Enum
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`

	// Nullable follows the OpenAPI convention rather than a {type, null}
	// union, keeping the projection flat.
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// XEnumForge tags a schema as a flexible enum. A two-branch anyOf of
	// {enum, string} without this tag is an ordinary union and is never
	// interpreted as flexible.
	XEnumForge *Ext `json:"x-enumforge,omitempty" yaml:"x-enumforge,omitempty"`
}

// Ext is the x-enumforge extension payload.
type Ext struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Marshal renders a schema document as indented JSON.
func Marshal(s *Schema) ([]byte, error) {
	return gojson.MarshalIndent(s, "", "  ")
}

// Unmarshal parses a JSON schema document.
func Unmarshal(data []byte) (*Schema, error) {
	var s Schema
	if err := gojson.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
