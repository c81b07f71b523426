package enumforge

import "strings"

// Value-set editor: data-independent add/remove of enum labels. Each
// operation comes in three shapes: raw label sequences, standalone
// enum-shaped nodes, and dotted field paths inside an object schema.
// Unlike Extend, an explicit add never upgrades a plain Enum to a
// FlexEnum.

// AddLabels merges toAdd into labels, sanitizing description echoes and
// deduplicating while preserving order.
func AddLabels(labels []string, toAdd ...string) []string {
	merged := make([]string, 0, len(labels)+len(toAdd))
	merged = append(merged, labels...)
	merged = append(merged, toAdd...)
	return sanitizeLabels(merged)
}

// RemoveLabels filters toRemove out of labels. It fails with EmptyEnumError
// when nothing would remain.
func RemoveLabels(labels []string, toRemove ...string) ([]string, error) {
	drop := make(map[string]struct{}, len(toRemove))
	for _, l := range toRemove {
		drop[l] = struct{}{}
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := drop[l]; ok {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, &EmptyEnumError{}
	}
	return out, nil
}

// AddValues returns a copy of the enum-shaped node n with toAdd merged into
// its label set. Optional/nullable wrappers around n are preserved. A node
// that is not enum-shaped after unwrapping fails with NotAnEnumError.
func AddValues(n Node, toAdd ...string) (Node, error) {
	return editEnumNode(n, "", func(labels []string) ([]string, error) {
		return AddLabels(labels, toAdd...), nil
	})
}

// RemoveValues returns a copy of the enum-shaped node n with toRemove
// filtered out of its label set. Removing every label fails with
// EmptyEnumError. A FlexEnum keeps its free-form branch and description.
func RemoveValues(n Node, toRemove ...string) (Node, error) {
	return editEnumNode(n, "", func(labels []string) ([]string, error) {
		return RemoveLabels(labels, toRemove...)
	})
}

// AddFieldValues rewrites the enum-shaped field at the dotted path inside
// schema, merging toAdd into its label set. The surrounding object spine
// and any wrapper stacks are rebuilt copy-on-write; untouched subtrees are
// shared with the input.
func AddFieldValues(schema *Object, path string, toAdd ...string) (*Object, error) {
	return rewriteAt(schema, path, func(n Node) (Node, error) {
		return editEnumNode(n, path, func(labels []string) ([]string, error) {
			return AddLabels(labels, toAdd...), nil
		})
	})
}

// RemoveFieldValues rewrites the enum-shaped field at the dotted path
// inside schema, filtering toRemove out of its label set.
func RemoveFieldValues(schema *Object, path string, toRemove ...string) (*Object, error) {
	return rewriteAt(schema, path, func(n Node) (Node, error) {
		return editEnumNode(n, path, func(labels []string) ([]string, error) {
			return RemoveLabels(labels, toRemove...)
		})
	})
}

// editEnumNode unwraps n, applies edit to its label sequence, and rewraps.
// Identity is preserved when the edit is a no-op.
func editEnumNode(n Node, field string, edit func([]string) ([]string, error)) (Node, error) {
	inner, stack := Unwrap(n)
	switch t := inner.(type) {
	case *Enum:
		next, err := edit(t.Labels)
		if err != nil {
			return nil, err
		}
		if sameLabels(t.Labels, next) {
			return n, nil
		}
		return Rewrap(&Enum{Labels: next}, stack), nil
	case *FlexEnum:
		labels, err := LabelsOf(t)
		if err != nil {
			return nil, err
		}
		next, err := edit(labels)
		if err != nil {
			return nil, err
		}
		if sameLabels(labels, next) {
			return n, nil
		}
		return Rewrap(&FlexEnum{Enum: &Enum{Labels: next}, Description: t.Description}, stack), nil
	default:
		return nil, &NotAnEnumError{Field: field}
	}
}

// rewriteAt applies fn to the node at the dotted path, rebuilding the spine
// of objects above it. Wrapper stacks on intermediate objects are restored.
// An unresolvable path fails with NotAnEnumError naming the full path.
func rewriteAt(o *Object, path string, fn func(Node) (Node, error)) (*Object, error) {
	parts := strings.Split(path, ".")
	next, err := rewriteParts(o, path, parts, fn)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func rewriteParts(o *Object, full string, parts []string, fn func(Node) (Node, error)) (*Object, error) {
	name := parts[0]
	for i, f := range o.Fields {
		if f.Name != name {
			continue
		}
		var repl Node
		if len(parts) == 1 {
			next, err := fn(f.Schema)
			if err != nil {
				return nil, err
			}
			if next == f.Schema {
				return o, nil
			}
			repl = next
		} else {
			inner, stack := Unwrap(f.Schema)
			child, ok := inner.(*Object)
			if !ok {
				return nil, &NotAnEnumError{Field: full}
			}
			next, err := rewriteParts(child, full, parts[1:], fn)
			if err != nil {
				return nil, err
			}
			if next == child {
				return o, nil
			}
			repl = Rewrap(next, stack)
		}
		fields := append([]Field(nil), o.Fields...)
		fields[i] = Field{Name: name, Schema: repl}
		return &Object{Fields: fields}, nil
	}
	return nil, &NotAnEnumError{Field: full}
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
