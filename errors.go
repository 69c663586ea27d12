package nonempty

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeTooShort    = "too_short"
	CodeParseError  = "parse_error"
)

var (
	// ErrEmpty is matched by every error that rejects an empty input.
	ErrEmpty = errors.New("nonempty: empty input")

	// ErrZero is returned when the zero String (never constructed, or already
	// consumed by IntoBytes) is encoded or validated.
	ErrZero = errors.New("nonempty: zero String")
)

// RejectedError is returned by the validated constructors. It hands the
// rejected input back to the caller unchanged so nothing is lost on failure.
type RejectedError struct {
	// Input is the exact slice passed to New, including its backing array
	// and capacity. For FromString and Parse it holds the bytes of the input.
	Input []byte
}

func (e *RejectedError) Error() string { return "nonempty: expected a string with a length of more than 0" }

// Unwrap lets errors.Is(err, ErrEmpty) succeed.
func (e *RejectedError) Unwrap() error { return ErrEmpty }

// Text returns the rejected input as a string.
func (e *RejectedError) Text() string { return string(e.Input) }

// Issue represents a single decoding or validation entry.
type Issue struct {
	Path    string // JSON Pointer; "/" for the value itself.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "got":0})
	// for i18n and observability.
	Params map[string]any
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
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at /: expected a string with a length of more than 0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is and errors.As see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
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
