package codec_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/nonempty"
	"github.com/reoring/nonempty/codec"
)

func TestText_Decode_Encode(t *testing.T) {
	ctx := context.Background()
	c := codec.Text()

	v, err := c.Decode(ctx, "asdf")
	require.NoError(t, err)
	assert.Equal(t, "asdf", v.String())

	w, err := c.Encode(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "asdf", w)
}

func TestText_DecodeEmpty(t *testing.T) {
	_, err := codec.Text().Decode(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, nonempty.ErrEmpty))

	iss, ok := nonempty.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, nonempty.CodeTooShort, iss[0].Code)
}

func TestText_EncodeZero(t *testing.T) {
	_, err := codec.Text().Encode(context.Background(), nonempty.String{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, nonempty.ErrZero))
}

func TestText_Schemas(t *testing.T) {
	ctx := context.Background()
	c := codec.Text()

	assert.NoError(t, c.In().Validate(ctx, ""))
	assert.Error(t, c.In().Validate(ctx, 1))
	assert.Error(t, c.Out().Validate(ctx, ""))

	in, err := c.In().JSONSchema()
	require.NoError(t, err)
	assert.Nil(t, in.MinLength)

	out, err := c.Out().JSONSchema()
	require.NoError(t, err)
	require.NotNil(t, out.MinLength)
	assert.Equal(t, 1, *out.MinLength)
}

func TestBytes_Decode_Encode(t *testing.T) {
	ctx := context.Background()
	c := codec.Bytes()

	wire := []byte("héllo")
	v, err := c.Decode(ctx, wire)
	require.NoError(t, err)

	// Decode copies, so reusing the wire buffer leaves v intact.
	wire[0] = 'j'
	assert.Equal(t, "héllo", v.String())

	out, err := c.Encode(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), out)

	out[0] = 'x'
	assert.Equal(t, "héllo", v.String())
}

func TestBytes_DecodeEmpty(t *testing.T) {
	for _, in := range [][]byte{nil, {}} {
		_, err := codec.Bytes().Decode(context.Background(), in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, nonempty.ErrEmpty))
	}
}

func TestBytes_InSchemaCoercesStrings(t *testing.T) {
	ctx := context.Background()
	b, err := codec.Bytes().In().Parse(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)

	_, err = codec.Bytes().In().Parse(ctx, 3.5)
	iss, ok := nonempty.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, nonempty.CodeInvalidType, iss[0].Code)
}
