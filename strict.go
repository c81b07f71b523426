package enumforge

// Strict returns n with all flexibility removed: every FlexEnum becomes a
// plain Enum with the same labels, everywhere in the tree. Unlike Separate
// it discards the descriptions instead of recording them; use it for strict
// validation passes where the layer is not needed afterwards. Unchanged
// subtrees are shared with the input.
func Strict(n Node) Node {
	switch t := n.(type) {
	case *FlexEnum:
		return t.Enum
	case *Object:
		return Deflex(t)
	case *Optional:
		if next := Strict(t.Elem); next != t.Elem {
			return &Optional{Elem: next}
		}
		return t
	case *Nullable:
		if next := Strict(t.Elem); next != t.Elem {
			return &Nullable{Elem: next}
		}
		return t
	default:
		return n
	}
}

// Deflex is Strict over a whole object schema, keeping the *Object type.
func Deflex(schema *Object) *Object {
	var out []Field
	for i, f := range schema.Fields {
		next := Strict(f.Schema)
		if next == f.Schema {
			continue
		}
		if out == nil {
			out = append([]Field(nil), schema.Fields...)
		}
		out[i] = Field{Name: f.Name, Schema: next}
	}
	if out == nil {
		return schema
	}
	return &Object{Fields: out}
}
