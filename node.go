package enumforge

import "strings"

// Kind identifies a schema node type.
type Kind int

const (
	KindPrimitive Kind = iota
	KindEnum
	KindFlexEnum
	KindObject
	KindOptional
	KindNullable
)

// Node is the root schema node interface. Trees built from these nodes are
// treated as immutable: every operation in this package returns a new tree
// sharing unchanged subtrees with its input.
type Node interface {
	NodeKind() Kind
}

// Primitive represents string/bool/number leaves.
type Primitive struct {
	Name string // "string"|"bool"|"number" (JSON compatible names)
}

func (p *Primitive) NodeKind() Kind { return KindPrimitive }

// String returns a string primitive node.
func String() *Primitive { return &Primitive{Name: "string"} }

// Bool returns a bool primitive node.
func Bool() *Primitive { return &Primitive{Name: "bool"} }

// Number returns a number primitive node.
func Number() *Primitive { return &Primitive{Name: "number"} }

// Enum is a closed set of string labels. Labels are unique and their
// insertion order is preserved; an Enum never has zero labels.
type Enum struct {
	Labels []string
}

func (e *Enum) NodeKind() Kind { return KindEnum }

// Has reports whether label is a member of the enum.
func (e *Enum) Has(label string) bool {
	for _, l := range e.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// NewEnum builds an Enum from labels, deduplicating while preserving the
// first occurrence order. It returns EmptyEnumError when no labels remain.
func NewEnum(labels ...string) (*Enum, error) {
	dd := dedupe(labels)
	if len(dd) == 0 {
		return nil, &EmptyEnumError{}
	}
	return &Enum{Labels: dd}, nil
}

// MustEnum is NewEnum that panics on error. Intended for static schema
// definitions in tests and examples.
func MustEnum(labels ...string) *Enum {
	e, err := NewEnum(labels...)
	if err != nil {
		panic(err)
	}
	return e
}

// FlexEnum is an enum that additionally accepts any free-form string. The
// description is shown to the data producer (typically an LLM) as guidance
// for when a new value is appropriate. FlexEnum is an explicit node kind,
// not a tagged two-branch union: an ordinary union of {enum, string} is a
// different thing and is never treated as flexible.
type FlexEnum struct {
	Enum        *Enum
	Description string
}

func (f *FlexEnum) NodeKind() Kind { return KindFlexEnum }

// DefaultDescription is the guidance attached to a FlexEnum when the caller
// supplies none. Extend sanitizes any observed value echoing this text back
// (see SentinelUnknown).
const DefaultDescription = "If none of the existing values apply, provide a new concise value. " +
	"Never answer with this instruction text itself."

// SentinelUnknown replaces labels that echo the default description text.
const SentinelUnknown = "unknown"

// NewFlexEnum builds a FlexEnum from labels. An empty description selects
// DefaultDescription. Returns EmptyEnumError when no labels remain after
// deduplication.
func NewFlexEnum(description string, labels ...string) (*FlexEnum, error) {
	e, err := NewEnum(labels...)
	if err != nil {
		return nil, err
	}
	return Flex(e, description), nil
}

// Flex upgrades an existing Enum to a FlexEnum. An empty description
// selects DefaultDescription. The input enum is shared, not copied.
func Flex(e *Enum, description string) *FlexEnum {
	if description == "" {
		description = DefaultDescription
	}
	return &FlexEnum{Enum: e, Description: description}
}

// Field maps a name to a schema node inside an Object.
type Field struct {
	Name   string
	Schema Node
}

// Object is an ordered collection of named fields. Field names are unique;
// declaration order is preserved and significant for compatibility.
type Object struct {
	Fields []Field
}

func (o *Object) NodeKind() Kind { return KindObject }

// NewObject builds an Object from fields. Later duplicates of a field name
// replace earlier ones in place, keeping the original position.
func NewObject(fields ...Field) *Object {
	out := make([]Field, 0, len(fields))
	idx := make(map[string]int, len(fields))
	for _, f := range fields {
		if at, ok := idx[f.Name]; ok {
			out[at] = f
			continue
		}
		idx[f.Name] = len(out)
		out = append(out, f)
	}
	return &Object{Fields: out}
}

// F is shorthand for constructing a Field.
func F(name string, schema Node) Field { return Field{Name: name, Schema: schema} }

// Get returns the schema for a field name.
func (o *Object) Get(name string) (Node, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

// Optional marks a field whose key may be absent from the data.
type Optional struct {
	Elem Node
}

func (w *Optional) NodeKind() Kind { return KindOptional }

// Nullable marks a node that accepts JSON null in place of a value.
type Nullable struct {
	Elem Node
}

func (w *Nullable) NodeKind() Kind { return KindNullable }

// OptionalOf wraps n as optional.
func OptionalOf(n Node) *Optional { return &Optional{Elem: n} }

// NullableOf wraps n as nullable.
func NullableOf(n Node) *Nullable { return &Nullable{Elem: n} }

// dedupe removes duplicates preserving first occurrence order.
func dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// sanitizeLabel guards against a data producer echoing the instruction text
// back as a value. Any label containing the default description collapses
// to SentinelUnknown.
func sanitizeLabel(label string) string {
	if strings.Contains(label, DefaultDescription) {
		return SentinelUnknown
	}
	return label
}

// sanitizeLabels maps sanitizeLabel over labels and deduplicates again,
// since sanitization can introduce collisions.
func sanitizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, sanitizeLabel(l))
	}
	return dedupe(out)
}
