// Package enumforge grows closed enum schemas from observed data. It is
// built for iterative labeling workflows where the universe of valid values
// is discovered incrementally, e.g. a classifier that invents new category
// labels over time.
//
// It provides:
//
// - An immutable schema node model (Object/Enum/FlexEnum/Primitive with
//   Optional/Nullable wrappers) with structural sharing on every rewrite
// - Extend: a diff engine that widens enum fields to cover novel string
//   values found in sample data, promoting touched plain enums to FlexEnum
// - A value-set editor (AddValues/RemoveValues and their field-path forms)
//   for explicit, data-independent edits
// - Separate/Integrate: split the flexibility off into a serializable
//   Layer and reattach it later, so strict validation passes can run on a
//   plain closed-enum schema without losing the evolving value sets
// - Validate plus a stable Issues error model (JSON Pointer, code, message)
//
// Design policy:
// - Schema trees are never mutated; every operation is copy-on-write and a
//   no-op edit returns its input by identity.
// - Keep public APIs in the root package; put the JSON Schema interchange
//   under jsonschema/ and the CLI under cmd/enumforge.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := enumforge.NewObject(
//		enumforge.F("category", enumforge.Flex(enumforge.MustEnum("bug", "feature"), "")),
//	)
//	next, err := enumforge.Extend(schema, map[string]any{"category": "question"})
//	// next now accepts "question"; schema is untouched.
package enumforge
