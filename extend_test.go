package enumforge_test

import (
	"context"
	"errors"
	"testing"

	forge "github.com/reoring/enumforge"
)

func TestExtend_WidensFlexEnum(t *testing.T) {
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug", "feature"), "")),
	)

	next, err := forge.Extend(schema, map[string]any{"category": "question"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if next == schema {
		t.Fatalf("expected a new schema for a novel value")
	}
	n, _ := next.Get("category")
	fe, ok := n.(*forge.FlexEnum)
	if !ok {
		t.Fatalf("expected FlexEnum, got %T", n)
	}
	want := []string{"bug", "feature", "question"}
	if len(fe.Enum.Labels) != len(want) {
		t.Fatalf("unexpected labels: %v", fe.Enum.Labels)
	}
	for i, l := range want {
		if fe.Enum.Labels[i] != l {
			t.Fatalf("label order lost: %v", fe.Enum.Labels)
		}
	}
}

func TestExtend_MonotonicWidening(t *testing.T) {
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug"), "")),
	)
	seen := map[string]struct{}{"bug": {}}

	for _, v := range []string{"feature", "question", "docs", "feature"} {
		next, err := forge.Extend(schema, map[string]any{"category": v})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		seen[v] = struct{}{}
		n, _ := next.Get("category")
		labels, err := forge.LabelsOf(n)
		if err != nil {
			t.Fatalf("labels: %v", err)
		}
		if len(labels) != len(seen) {
			t.Fatalf("expected %d labels, got %v", len(seen), labels)
		}
		for l := range seen {
			found := false
			for _, got := range labels {
				if got == l {
					found = true
				}
			}
			if !found {
				t.Fatalf("label %q lost after extending with %q: %v", l, v, labels)
			}
		}
		schema = next
	}
}

func TestExtend_IdempotentByIdentity(t *testing.T) {
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug", "feature"), "")),
		forge.F("title", forge.String()),
	)
	data := map[string]any{"category": "bug", "title": "crash on save"}

	for i := 0; i < 2; i++ {
		next, err := forge.Extend(schema, data)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if next != schema {
			t.Fatalf("call %d: expected identical schema reference for known data", i+1)
		}
	}
}

func TestExtend_PromotesPlainEnum(t *testing.T) {
	schema := forge.NewObject(
		forge.F("status", forge.MustEnum("open", "closed")),
	)

	next, err := forge.Extend(schema, map[string]any{"status": "reopened"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	n, _ := next.Get("status")
	fe, ok := n.(*forge.FlexEnum)
	if !ok {
		t.Fatalf("novel value on a plain enum should promote to FlexEnum, got %T", n)
	}
	if fe.Description != forge.DefaultDescription {
		t.Fatalf("promotion should carry the default description, got %q", fe.Description)
	}
	if !fe.Enum.Has("reopened") {
		t.Fatalf("missing widened label: %v", fe.Enum.Labels)
	}

	// A known value on a plain enum changes nothing and does not promote.
	same, err := forge.Extend(schema, map[string]any{"status": "open"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if same != schema {
		t.Fatalf("known value must be a no-op by identity")
	}
}

func TestExtend_DescriptionSurvivesWidening(t *testing.T) {
	const guidance = "Pick the closest category; invent one only as a last resort."
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug"), guidance)),
	)
	next, err := forge.Extend(schema, map[string]any{"category": "feature"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	n, _ := next.Get("category")
	if fe := n.(*forge.FlexEnum); fe.Description != guidance {
		t.Fatalf("description lost across widening: %q", fe.Description)
	}
}

func TestExtend_SanitizesDescriptionEcho(t *testing.T) {
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug"), "")),
	)
	// A mis-wired producer echoes the guidance back, with padding around it.
	echoed := "answer: " + forge.DefaultDescription + "!"
	next, err := forge.Extend(schema, map[string]any{"category": echoed})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	n, _ := next.Get("category")
	labels, _ := forge.LabelsOf(n)
	for _, l := range labels {
		if l == echoed {
			t.Fatalf("instruction text leaked into labels: %v", labels)
		}
	}
	fe := n.(*forge.FlexEnum)
	if !fe.Enum.Has(forge.SentinelUnknown) {
		t.Fatalf("expected sentinel %q, got %v", forge.SentinelUnknown, labels)
	}
}

func TestExtend_PreservesWrapperStack(t *testing.T) {
	ctx := context.Background()
	schema := forge.NewObject(
		forge.F("status", forge.OptionalOf(forge.NullableOf(
			forge.Flex(forge.MustEnum("pending", "done"), ""),
		))),
	)

	next, err := forge.Extend(schema, map[string]any{"status": "in_progress"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, data := range []map[string]any{
		{},
		{"status": nil},
		{"status": "in_progress"},
		{"status": "pending"},
	} {
		if err := forge.Validate(ctx, next, data); err != nil {
			t.Fatalf("widened schema rejected %v: %v", data, err)
		}
	}

	n, _ := next.Get("status")
	opt, ok := n.(*forge.Optional)
	if !ok {
		t.Fatalf("outer optional lost: %T", n)
	}
	if _, ok := opt.Elem.(*forge.Nullable); !ok {
		t.Fatalf("inner nullable lost: %T", opt.Elem)
	}
}

func TestExtend_RecursesIntoNestedObjects(t *testing.T) {
	inner := forge.NewObject(
		forge.F("severity", forge.Flex(forge.MustEnum("low", "high"), "")),
	)
	other := forge.NewObject(
		forge.F("kind", forge.Flex(forge.MustEnum("a"), "")),
	)
	schema := forge.NewObject(
		forge.F("triage", inner),
		forge.F("meta", other),
	)

	next, err := forge.Extend(schema, map[string]any{
		"triage": map[string]any{"severity": "critical"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	n, _ := next.Get("triage")
	tri := n.(*forge.Object)
	sev, _ := tri.Get("severity")
	labels, _ := forge.LabelsOf(sev)
	if len(labels) != 3 || labels[2] != "critical" {
		t.Fatalf("nested widening failed: %v", labels)
	}

	// The untouched sibling subtree is shared by reference.
	m, _ := next.Get("meta")
	if m != forge.Node(other) {
		t.Fatalf("unchanged subtree was rebuilt")
	}
}

func TestExtend_IgnoresUnknownSampleKeys(t *testing.T) {
	schema := forge.NewObject(
		forge.F("category", forge.Flex(forge.MustEnum("bug"), "")),
	)
	next, err := forge.Extend(schema, map[string]any{
		"category":   "bug",
		"confidence": 0.93,
		"debug":      map[string]any{"model": "foo"},
	})
	if err != nil {
		t.Fatalf("extra sample keys must be ignored: %v", err)
	}
	if next != schema {
		t.Fatalf("expected identity for known data with extra keys")
	}
}

func TestExtend_TypeMismatch(t *testing.T) {
	if _, err := forge.Extend(forge.MustEnum("a"), map[string]any{}); err == nil {
		t.Fatalf("expected type mismatch for non-object schema")
	} else {
		var tm *forge.TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("expected TypeMismatchError, got %T", err)
		}
	}

	schema := forge.NewObject(forge.F("x", forge.String()))
	if _, err := forge.Extend(schema, "not an object"); err == nil {
		t.Fatalf("expected type mismatch for non-object data")
	} else {
		var tm *forge.TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("expected TypeMismatchError, got %T", err)
		}
	}
}
