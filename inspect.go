package enumforge

// Wrapper stacks. Optional and nullable layers may stack in any order and
// depth (optional-nullable-optional has been observed in the wild); a
// rewrite of the inner node must restore the exact original ordering, so
// unwrapping records the layers outermost-first.

// Unwrap strips optional/nullable wrappers from n, returning the inner node
// and the wrapper kinds outermost-first. Rewrap with the same stack yields
// an equivalently wrapped node.
func Unwrap(n Node) (Node, []Kind) {
	var stack []Kind
	for {
		switch w := n.(type) {
		case *Optional:
			stack = append(stack, KindOptional)
			n = w.Elem
		case *Nullable:
			stack = append(stack, KindNullable)
			n = w.Elem
		default:
			return n, stack
		}
	}
}

// Rewrap applies a wrapper stack (outermost-first, as returned by Unwrap)
// around n.
func Rewrap(n Node, stack []Kind) Node {
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i] {
		case KindOptional:
			n = &Optional{Elem: n}
		case KindNullable:
			n = &Nullable{Elem: n}
		}
	}
	return n
}

// hasWrapper reports whether kind occurs anywhere in the stack.
func hasWrapper(stack []Kind, kind Kind) bool {
	for _, k := range stack {
		if k == kind {
			return true
		}
	}
	return false
}

// LabelsOf extracts the ordered label sequence from an enum-shaped node
// (Enum or FlexEnum). Any other node fails with ExtractionError.
func LabelsOf(n Node) ([]string, error) {
	switch t := n.(type) {
	case *Enum:
		return t.Labels, nil
	case *FlexEnum:
		if t.Enum == nil {
			return nil, &ExtractionError{Reason: "flex enum has no enumerated branch"}
		}
		return t.Enum.Labels, nil
	default:
		return nil, &ExtractionError{Reason: "node exposes no labels"}
	}
}

// isEnumShaped reports whether n (already unwrapped) is an Enum or FlexEnum.
func isEnumShaped(n Node) bool {
	switch n.(type) {
	case *Enum, *FlexEnum:
		return true
	}
	return false
}

// kindName renders a node kind for error messages.
func kindName(n Node) string {
	if n == nil {
		return "nil"
	}
	switch t := n.(type) {
	case *Primitive:
		return t.Name
	case *Enum:
		return "enum"
	case *FlexEnum:
		return "flex enum"
	case *Object:
		return "object"
	case *Optional:
		return "optional " + kindName(t.Elem)
	case *Nullable:
		return "nullable " + kindName(t.Elem)
	default:
		return "unknown"
	}
}
