package jsonschema

import (
	"fmt"
	"sort"

	forge "github.com/reoring/enumforge"
)

// Import reconstructs a node tree from an interchange document.
//
// Flexible enums have shipped in two layouts. The current one is a
// two-branch anyOf of {enum, described string} carrying the x-enumforge
// tag; older producers tagged a bare enum before the string branch was
// attached. Import probes each document for whichever layout it uses
// instead of keying off any process-wide flag, so documents of both
// generations can coexist in one process. A tagged document that yields no
// labels under either layout fails with ExtractionError.
func Import(s *Schema) (forge.Node, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: nil schema")
	}
	node, err := importBare(s)
	if err != nil {
		return nil, err
	}
	if s.Nullable {
		node = forge.NullableOf(node)
	}
	return node, nil
}

func importBare(s *Schema) (forge.Node, error) {
	if s.XEnumForge != nil {
		return importFlex(s)
	}
	if len(s.AnyOf) > 0 {
		// Untagged unions are not flexible enums and have no node
		// representation here.
		return nil, fmt.Errorf("jsonschema: untagged anyOf is not supported")
	}
	if s.Enum != nil {
		if len(s.Enum) == 0 {
			return nil, &forge.ExtractionError{Reason: "enum key present but empty"}
		}
		e, err := forge.NewEnum(s.Enum...)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	switch s.Type {
	case "object":
		return importObject(s)
	case "string":
		return forge.String(), nil
	case "boolean":
		return forge.Bool(), nil
	case "number", "integer":
		return forge.Number(), nil
	case "":
		return nil, &forge.ExtractionError{Reason: "document has no recognized shape"}
	default:
		return nil, fmt.Errorf("jsonschema: unsupported type %q", s.Type)
	}
}

// importFlex handles both tagged layouts.
func importFlex(s *Schema) (forge.Node, error) {
	desc := s.XEnumForge.Description
	// Current layout: anyOf [enum, string].
	if len(s.AnyOf) == 2 {
		enumBranch, strBranch := s.AnyOf[0], s.AnyOf[1]
		if len(enumBranch.Enum) > 0 && strBranch.Enum == nil {
			if desc == "" {
				desc = strBranch.Description
			}
			fe, err := forge.NewFlexEnum(desc, enumBranch.Enum...)
			if err != nil {
				return nil, err
			}
			return fe, nil
		}
		return nil, &forge.ExtractionError{Reason: "tagged anyOf branches are not {enum, string}"}
	}
	// Legacy layout: the tag sits directly on a bare enum.
	if len(s.Enum) > 0 {
		fe, err := forge.NewFlexEnum(desc, s.Enum...)
		if err != nil {
			return nil, err
		}
		return fe, nil
	}
	return nil, &forge.ExtractionError{Reason: "tagged document exposes no labels"}
}

func importObject(s *Schema) (forge.Node, error) {
	required := make(map[string]struct{}, len(s.Required))
	for _, k := range s.Required {
		required[k] = struct{}{}
	}
	// Property maps are unordered; sort keys for a deterministic field
	// order across imports.
	names := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	fields := make([]forge.Field, 0, len(names))
	for _, name := range names {
		child, err := Import(s.Properties[name])
		if err != nil {
			return nil, err
		}
		if _, req := required[name]; !req {
			child = forge.OptionalOf(child)
		}
		fields = append(fields, forge.F(name, child))
	}
	return forge.NewObject(fields...), nil
}
