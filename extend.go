package enumforge

import "fmt"

// Extend walks an object schema against a sample of data meant to conform
// to it and returns a schema whose enum fields have been widened to accept
// every novel string value observed in the sample.
//
// Rules, per field:
//
//   - FlexEnum: a string value outside the current label set is appended at
//     the end of a fresh label sequence; the description carries over.
//   - plain Enum: a novel string value widens the set the same way, and the
//     field is promoted to a FlexEnum with DefaultDescription, on the
//     reasoning that a field which has already received out-of-set data will
//     receive more.
//   - Object: recurses when the sample value is itself an object.
//
// Optional/nullable wrapper stacks are restored around every rewritten
// field. Sample keys with no matching field are ignored. Fields with no
// matching sample key are left untouched.
//
// Extend never mutates its input. When no field changes, the returned
// *Object is the input itself, so callers can detect no-op extensions by
// identity; repeated calls with already-known data are guaranteed cheap.
func Extend(schema Node, sample any) (*Object, error) {
	obj, ok := schema.(*Object)
	if !ok {
		return nil, &TypeMismatchError{Want: "object schema", Got: kindName(schema)}
	}
	data, ok := sample.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Want: "object data", Got: fmt.Sprintf("%T", sample)}
	}
	return extendObject(obj, data), nil
}

func extendObject(o *Object, data map[string]any) *Object {
	var out []Field // allocated lazily on first change
	for i, f := range o.Fields {
		v, ok := data[f.Name]
		if !ok {
			continue
		}
		inner, stack := Unwrap(f.Schema)
		var repl Node
		switch t := inner.(type) {
		case *Object:
			if m, ok := v.(map[string]any); ok {
				if next := extendObject(t, m); next != t {
					repl = next
				}
			}
		case *FlexEnum:
			if s, ok := v.(string); ok {
				if next := widenFlex(t, s); next != t {
					repl = next
				}
			}
		case *Enum:
			if s, ok := v.(string); ok {
				repl = promoteEnum(t, s)
			}
		}
		if repl == nil {
			continue
		}
		if out == nil {
			out = append([]Field(nil), o.Fields...)
		}
		out[i] = Field{Name: f.Name, Schema: Rewrap(repl, stack)}
	}
	if out == nil {
		return o
	}
	return &Object{Fields: out}
}

// widenFlex returns f unchanged when value is already a member, otherwise a
// new FlexEnum with the sanitized value appended and the same description.
func widenFlex(f *FlexEnum, value string) *FlexEnum {
	label := sanitizeLabel(value)
	var labels []string
	if f.Enum != nil {
		if f.Enum.Has(label) {
			return f
		}
		labels = f.Enum.Labels
	}
	widened := make([]string, 0, len(labels)+1)
	widened = append(widened, labels...)
	widened = append(widened, label)
	return &FlexEnum{Enum: &Enum{Labels: widened}, Description: f.Description}
}

// promoteEnum returns nil when value is already a member of e. A novel
// value both widens the set and upgrades the field to a FlexEnum carrying
// DefaultDescription.
func promoteEnum(e *Enum, value string) Node {
	label := sanitizeLabel(value)
	if e.Has(label) {
		return nil
	}
	widened := make([]string, 0, len(e.Labels)+1)
	widened = append(widened, e.Labels...)
	widened = append(widened, label)
	return &FlexEnum{Enum: &Enum{Labels: widened}, Description: DefaultDescription}
}
