package enumforge

// Layer is the side-channel representation of a schema's flexibility: a
// mapping from dotted field path to the flexible-enum metadata recorded
// there. A Layer and the plain schema it was separated from are
// independently serializable (JSON and YAML tags below) and can be
// transmitted or stored apart from each other.
type Layer map[string]LayerEntry

// LayerEntry captures one flexible field's removable state.
type LayerEntry struct {
	Values      []string `json:"values" yaml:"values"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Separate strips the flexibility from every FlexEnum leaf in schema,
// returning a plain closed-enum schema and the Layer holding what was
// removed. Wrapper stacks stay in place; non-enum leaves pass through
// untouched. A schema with no flexible leaves comes back unchanged by
// identity, with an empty layer.
//
// Integrate(Separate(s)) is semantically equivalent to s: same labels, same
// descriptions, same wrapper stacking at every flexible path.
func Separate(schema *Object) (*Object, Layer) {
	layer := Layer{}
	stripped := separateObject(schema, "", layer)
	return stripped, layer
}

func separateObject(o *Object, prefix string, layer Layer) *Object {
	var out []Field
	for i, f := range o.Fields {
		path := joinPath(prefix, f.Name)
		inner, stack := Unwrap(f.Schema)
		var repl Node
		switch t := inner.(type) {
		case *Object:
			if next := separateObject(t, path, layer); next != t {
				repl = Rewrap(next, stack)
			}
		case *FlexEnum:
			labels := append([]string(nil), t.Enum.Labels...)
			layer[path] = LayerEntry{Values: labels, Description: t.Description}
			repl = Rewrap(&Enum{Labels: t.Enum.Labels}, stack)
		}
		if repl == nil {
			continue
		}
		if out == nil {
			out = append([]Field(nil), o.Fields...)
		}
		out[i] = Field{Name: f.Name, Schema: repl}
	}
	if out == nil {
		return o
	}
	return &Object{Fields: out}
}

// Integrate reattaches a flexibility layer to a structurally compatible
// plain schema, rebuilding a FlexEnum at every layer path that still
// resolves to an enum-shaped field. Current labels are kept first and the
// layer's recorded labels are unioned in, so edits made to the plain schema
// while the layer was detached are not lost. Layer paths that no longer
// resolve to an enum are skipped; structural drift is tolerated, not fatal.
func Integrate(schema *Object, layer Layer) *Object {
	if len(layer) == 0 {
		return schema
	}
	return integrateObject(schema, "", layer)
}

func integrateObject(o *Object, prefix string, layer Layer) *Object {
	var out []Field
	for i, f := range o.Fields {
		path := joinPath(prefix, f.Name)
		inner, stack := Unwrap(f.Schema)
		var repl Node
		if entry, ok := layer[path]; ok && isEnumShaped(inner) {
			current, err := LabelsOf(inner)
			if err == nil {
				merged := dedupe(append(append([]string(nil), current...), entry.Values...))
				repl = Rewrap(Flex(&Enum{Labels: merged}, entry.Description), stack)
			}
		} else if child, ok := inner.(*Object); ok {
			if next := integrateObject(child, path, layer); next != child {
				repl = Rewrap(next, stack)
			}
		}
		if repl == nil {
			continue
		}
		if out == nil {
			out = append([]Field(nil), o.Fields...)
		}
		out[i] = Field{Name: f.Name, Schema: repl}
	}
	if out == nil {
		return o
	}
	return &Object{Fields: out}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
