package enumforge_test

import (
	"errors"
	"testing"

	forge "github.com/reoring/enumforge"
)

func TestNewEnum_DedupesPreservingOrder(t *testing.T) {
	e, err := forge.NewEnum("b", "a", "b", "c", "a")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"b", "a", "c"}
	if len(e.Labels) != len(want) {
		t.Fatalf("unexpected labels: %v", e.Labels)
	}
	for i, l := range want {
		if e.Labels[i] != l {
			t.Fatalf("order lost: %v", e.Labels)
		}
	}
}

func TestNewEnum_Empty(t *testing.T) {
	_, err := forge.NewEnum()
	if err == nil {
		t.Fatalf("expected EmptyEnumError")
	}
	var ee *forge.EmptyEnumError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EmptyEnumError, got %T", err)
	}
}

func TestFlex_DefaultsDescription(t *testing.T) {
	fe := forge.Flex(forge.MustEnum("a"), "")
	if fe.Description != forge.DefaultDescription {
		t.Fatalf("expected default description, got %q", fe.Description)
	}
	fe2 := forge.Flex(forge.MustEnum("a"), "custom")
	if fe2.Description != "custom" {
		t.Fatalf("custom description lost: %q", fe2.Description)
	}
}

func TestUnwrapRewrap_RestoresStackOrder(t *testing.T) {
	// optional, then nullable, then a redundant optional again
	n := forge.OptionalOf(forge.NullableOf(forge.OptionalOf(forge.MustEnum("a"))))

	inner, stack := forge.Unwrap(n)
	if _, ok := inner.(*forge.Enum); !ok {
		t.Fatalf("unwrap did not reach the enum: %T", inner)
	}
	if len(stack) != 3 {
		t.Fatalf("expected 3 wrapper layers, got %d", len(stack))
	}

	back := forge.Rewrap(forge.MustEnum("a", "b"), stack)
	o1, ok := back.(*forge.Optional)
	if !ok {
		t.Fatalf("layer 1: %T", back)
	}
	n2, ok := o1.Elem.(*forge.Nullable)
	if !ok {
		t.Fatalf("layer 2: %T", o1.Elem)
	}
	if _, ok := n2.Elem.(*forge.Optional); !ok {
		t.Fatalf("layer 3: %T", n2.Elem)
	}
}

func TestLabelsOf_ExtractionError(t *testing.T) {
	_, err := forge.LabelsOf(forge.String())
	if err == nil {
		t.Fatalf("expected ExtractionError")
	}
	var xe *forge.ExtractionError
	if !errors.As(err, &xe) {
		t.Fatalf("expected ExtractionError, got %T", err)
	}
}

func TestNewObject_LaterDuplicateReplacesInPlace(t *testing.T) {
	o := forge.NewObject(
		forge.F("a", forge.String()),
		forge.F("b", forge.Bool()),
		forge.F("a", forge.Number()),
	)
	if len(o.Fields) != 2 {
		t.Fatalf("duplicate field kept: %v", o.Fields)
	}
	if o.Fields[0].Name != "a" || o.Fields[1].Name != "b" {
		t.Fatalf("field order lost: %v", o.Fields)
	}
	n, _ := o.Get("a")
	if p, ok := n.(*forge.Primitive); !ok || p.Name != "number" {
		t.Fatalf("replacement not applied: %#v", n)
	}
}
