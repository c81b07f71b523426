package enumforge

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeInvalidEnum  = "invalid_enum"
	CodeEmptyEnum    = "empty_enum"
	CodeNotAnEnum    = "not_an_enum"
	CodeTypeMismatch = "type_mismatch"
	CodeExtraction   = "extraction_failed"
)

// EmptyEnumError reports an edit or construction that would leave an enum
// with zero labels.
type EmptyEnumError struct{}

func (e *EmptyEnumError) Error() string { return "enumforge: enum must have at least one label" }

// NotAnEnumError reports an operation addressed to a field that, after
// unwrapping optional/nullable layers, is neither an Enum nor a FlexEnum.
type NotAnEnumError struct {
	Field string
}

func (e *NotAnEnumError) Error() string {
	if e.Field == "" {
		return "enumforge: node is not an enum"
	}
	return fmt.Sprintf("enumforge: field %q is not an enum", e.Field)
}

// TypeMismatchError reports a root argument with the wrong shape, e.g. a
// non-object schema handed to an object-root operation.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("enumforge: expected %s, got %s", e.Want, e.Got)
}

// ExtractionError reports a node or document that claims to be enumerated
// but yields no labels under any recognized representation. It usually
// signals an unsupported or future schema layout.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "enumforge: cannot extract enum labels: " + e.Reason
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /status).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
