package enumforge

import (
	"context"
	"encoding/json"

	"github.com/reoring/enumforge/i18n"
)

// Validate checks a decoded value tree against a schema node and returns
// Issues describing every violation found. It exists so that the effect of
// widening is observable: after Extend accepts a novel label, the new
// schema validates data carrying it.
//
// Semantics follow the node model: Optional fields may be absent from an
// object, Nullable values accept nil, a FlexEnum accepts any string, a
// plain Enum only its members. Keys in the data with no schema field are
// ignored (forward compatible, like Extend).
func Validate(ctx context.Context, n Node, v any) error {
	iss := validateAt(ctx, "", n, v)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func validateAt(ctx context.Context, path string, n Node, v any) Issues {
	inner, stack := Unwrap(n)
	if v == nil {
		if hasWrapper(stack, KindNullable) {
			return nil
		}
		return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "null not allowed"}}
	}
	switch t := inner.(type) {
	case *Object:
		return validateObject(ctx, path, t, v)
	case *Enum:
		s, ok := v.(string)
		if !ok {
			return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected string"}}
		}
		if !t.Has(s) {
			return Issues{{Path: ptr(path), Code: CodeInvalidEnum, Message: i18n.T(CodeInvalidEnum, nil), Hint: "value '" + s + "' not in enum"}}
		}
		return nil
	case *FlexEnum:
		if _, ok := v.(string); !ok {
			return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected string"}}
		}
		return nil
	case *Primitive:
		if !primitiveOK(t.Name, v) {
			return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected " + t.Name}}
		}
		return nil
	default:
		return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil)}}
	}
}

func validateObject(ctx context.Context, path string, o *Object, v any) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return Issues{{Path: ptr(path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	var iss Issues
	for _, f := range o.Fields {
		fpath := path + "/" + f.Name
		val, exists := m[f.Name]
		if !exists {
			_, stack := Unwrap(f.Schema)
			if hasWrapper(stack, KindOptional) {
				continue
			}
			iss = AppendIssues(iss, Issue{Path: fpath, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "required property missing"})
			continue
		}
		iss = AppendIssues(iss, validateAt(ctx, fpath, f.Schema, val)...)
	}
	return iss
}

func primitiveOK(name string, v any) bool {
	switch name {
	case "string":
		_, ok := v.(string)
		return ok
	case "bool":
		_, ok := v.(bool)
		return ok
	case "number":
		switch v.(type) {
		case float64, float32, int, int64, json.Number:
			return true
		}
		return false
	default:
		return false
	}
}

// ptr renders a JSON Pointer for the root position.
func ptr(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
