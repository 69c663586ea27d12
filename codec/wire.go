package codec

import (
	"context"

	"github.com/reoring/nonempty"
	"github.com/reoring/nonempty/i18n"
	js "github.com/reoring/nonempty/jsonschema"
)

// textSchema is the wire-side schema for plain Go strings. Any string,
// including the empty one, is a valid wire value.
type textSchema struct{}

func (textSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType()
	}
	return s, nil
}

func (textSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return invalidType()
	}
	return nil
}

func (textSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (textSchema) Validate(ctx context.Context, v any) error {
	if err := (textSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (textSchema{}).RuleCheck(ctx, v)
}

func (textSchema) ValidateValue(ctx context.Context, v string) error { return nil }

func (textSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

// bytesSchema is the wire-side schema for raw byte slices. Strings are
// coerced to bytes.
type bytesSchema struct{}

func (bytesSchema) Parse(ctx context.Context, v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, invalidType()
	}
}

func (bytesSchema) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case []byte, string:
		return nil
	default:
		return invalidType()
	}
}

func (bytesSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (bytesSchema) Validate(ctx context.Context, v any) error {
	if err := (bytesSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (bytesSchema{}).RuleCheck(ctx, v)
}

func (bytesSchema) ValidateValue(ctx context.Context, v []byte) error { return nil }

func (bytesSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

func invalidType() nonempty.Issues {
	return nonempty.Issues{{
		Path:    "/",
		Code:    nonempty.CodeInvalidType,
		Message: i18n.T(nonempty.CodeInvalidType, map[string]string{"expected": "string"}),
	}}
}
