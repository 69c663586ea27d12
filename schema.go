package nonempty

import (
	"context"
	"fmt"

	"github.com/reoring/nonempty/i18n"
	js "github.com/reoring/nonempty/jsonschema"
)

// Schema surfaces the pillars of construction, type checking, value
// validation, and typed validation.
type Schema[T any] interface {
	// Parse transforms an unknown input into T. It returns Issues when
	// validation fails.
	Parse(ctx context.Context, v any) (T, error)

	// TypeCheck verifies that v has an acceptable Go type.
	TypeCheck(ctx context.Context, v any) error

	// RuleCheck runs the length rule assuming TypeCheck already succeeded.
	RuleCheck(ctx context.Context, v any) error

	// Validate composes TypeCheck followed by RuleCheck.
	Validate(ctx context.Context, v any) error

	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema (input side).
	Out() Schema[B]                             // Domain schema (output side).
	Decode(ctx context.Context, a A) (B, error) // A (In) -> B (convert) -> Out.ValidateValue.
	Encode(ctx context.Context, b B) (A, error) // Out.ValidateValue -> A -> In.ValidateValue.
}

// StringSchema returns the Schema used by every decoder in this package. It
// accepts Go strings (and already-built Strings) and rejects empty ones.
func StringSchema() Schema[String] { return stringSchema{} }

// JSONSchema describes String as a JSON Schema document. It carries metadata
// only and performs no validation.
func JSONSchema() *js.Schema {
	return &js.Schema{
		Type:        "string",
		MinLength:   js.Int(1),
		Title:       "Non-Empty String",
		Description: "A string that must contain at least one character",
	}
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s (TypeCheck+RuleCheck).
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (String, error) {
	switch x := v.(type) {
	case string:
		s, err := FromString(x)
		if err != nil {
			return String{}, tooShort(err)
		}
		return s, nil
	case String:
		if err := (stringSchema{}).ValidateValue(ctx, x); err != nil {
			return String{}, err
		}
		return x, nil
	default:
		return String{}, invalidType(fmt.Sprintf("%T", v))
	}
}

func (stringSchema) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case string, String:
		return nil
	default:
		return invalidType(fmt.Sprintf("%T", v))
	}
}

func (stringSchema) RuleCheck(ctx context.Context, v any) error {
	switch x := v.(type) {
	case string:
		if x == "" {
			return tooShort(&RejectedError{Input: []byte(x)})
		}
	case String:
		return (stringSchema{}).ValidateValue(ctx, x)
	}
	return nil
}

func (stringSchema) Validate(ctx context.Context, v any) error {
	if err := (stringSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (stringSchema{}).RuleCheck(ctx, v)
}

func (stringSchema) ValidateValue(ctx context.Context, v String) error {
	if v.IsZero() {
		return tooShort(ErrZero)
	}
	return nil
}

func (stringSchema) JSONSchema() (*js.Schema, error) { return JSONSchema(), nil }

func tooShort(cause error) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeTooShort,
		Message: i18n.T(CodeTooShort, nil),
		Cause:   cause,
		Params:  map[string]any{"min": 1, "got": 0},
	}}
}

func invalidType(got string) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": "string"}),
		Params:  map[string]any{"expected": "string", "got": got},
	}}
}

func parseError(err error) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeParseError,
		Message: i18n.T(CodeParseError, nil),
		Cause:   err,
	}}
}
