package codec

import (
	"context"

	"github.com/reoring/nonempty"
)

// Text returns a Codec[string, nonempty.String]. Decode rejects the empty
// string with a too_short issue; Encode rejects the zero String.
func Text() nonempty.Codec[string, nonempty.String] {
	return &textCodec{in: textSchema{}, out: nonempty.StringSchema()}
}

type textCodec struct {
	in  nonempty.Schema[string]
	out nonempty.Schema[nonempty.String]
}

func (c *textCodec) In() nonempty.Schema[string]           { return c.in }
func (c *textCodec) Out() nonempty.Schema[nonempty.String] { return c.out }

func (c *textCodec) Decode(ctx context.Context, a string) (nonempty.String, error) {
	if err := c.in.ValidateValue(ctx, a); err != nil {
		return nonempty.String{}, err
	}
	return c.out.Parse(ctx, a)
}

func (c *textCodec) Encode(ctx context.Context, b nonempty.String) (string, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	a := b.String()
	if err := c.in.ValidateValue(ctx, a); err != nil {
		return "", err
	}
	return a, nil
}

// Bytes returns a Codec[[]byte, nonempty.String]. Decode copies its input,
// so the caller may reuse the slice afterwards. Encode returns a fresh copy
// of the contents.
func Bytes() nonempty.Codec[[]byte, nonempty.String] {
	return &bytesCodec{in: bytesSchema{}, out: nonempty.StringSchema()}
}

type bytesCodec struct {
	in  nonempty.Schema[[]byte]
	out nonempty.Schema[nonempty.String]
}

func (c *bytesCodec) In() nonempty.Schema[[]byte]           { return c.in }
func (c *bytesCodec) Out() nonempty.Schema[nonempty.String] { return c.out }

func (c *bytesCodec) Decode(ctx context.Context, a []byte) (nonempty.String, error) {
	if err := c.in.ValidateValue(ctx, a); err != nil {
		return nonempty.String{}, err
	}
	var s nonempty.String
	if err := s.UnmarshalText(a); err != nil {
		return nonempty.String{}, err
	}
	return s, nil
}

func (c *bytesCodec) Encode(ctx context.Context, b nonempty.String) ([]byte, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return nil, err
	}
	a, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	if err := c.in.ValidateValue(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
