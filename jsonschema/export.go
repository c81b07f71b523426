package jsonschema

import (
	"fmt"
	"sort"

	forge "github.com/reoring/enumforge"
)

// Export projects a schema node tree into the interchange representation.
//
// A FlexEnum is emitted in the canonical layout: a two-branch anyOf of the
// closed enum and a described free-form string, plus the x-enumforge tag so
// that Import can tell it apart from an ordinary union. Wrapper stacks are
// canonicalized: optionality becomes omission from the parent's required
// list, nullability becomes the nullable flag. Redundant repeated wrapper
// layers do not survive the projection.
func Export(n forge.Node) (*Schema, error) {
	if n == nil {
		return nil, fmt.Errorf("jsonschema: nil node")
	}
	inner, stack := forge.Unwrap(n)
	s, err := exportBare(inner)
	if err != nil {
		return nil, err
	}
	for _, k := range stack {
		if k == forge.KindNullable {
			s.Nullable = true
		}
	}
	return s, nil
}

func exportBare(n forge.Node) (*Schema, error) {
	switch t := n.(type) {
	case *forge.Primitive:
		name := t.Name
		if name == "bool" {
			name = "boolean"
		}
		return &Schema{Type: name}, nil
	case *forge.Enum:
		return &Schema{Type: "string", Enum: append([]string(nil), t.Labels...)}, nil
	case *forge.FlexEnum:
		labels, err := forge.LabelsOf(t)
		if err != nil {
			return nil, err
		}
		return &Schema{
			AnyOf: []*Schema{
				{Type: "string", Enum: append([]string(nil), labels...)},
				{Type: "string", Description: t.Description},
			},
			XEnumForge: &Ext{Description: t.Description},
		}, nil
	case *forge.Object:
		props := make(map[string]*Schema, len(t.Fields))
		var required []string
		for _, f := range t.Fields {
			_, stack := forge.Unwrap(f.Schema)
			ps, err := Export(f.Schema)
			if err != nil {
				return nil, err
			}
			props[f.Name] = ps
			optional := false
			for _, k := range stack {
				if k == forge.KindOptional {
					optional = true
				}
			}
			if !optional {
				required = append(required, f.Name)
			}
		}
		sort.Strings(required)
		return &Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: false}, nil
	default:
		return nil, fmt.Errorf("jsonschema: unsupported node kind %d", n.NodeKind())
	}
}
