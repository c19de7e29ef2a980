package bacnet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagRoundTripApplication(t *testing.T) {
	cases := []Tag{
		NewApplicationTag(TagNumberUnsigned, []byte{0x7F}),
		NewApplicationTag(TagNumberInteger, []byte{0xFF}),
		newApplicationBoolTag(true),
		newApplicationBoolTag(false),
		NewApplicationTag(TagNumberOctetString, bytes.Repeat([]byte{0xAB}, 300)),
	}

	for _, tag := range cases {
		var buf bytes.Buffer
		tag.Encode(&buf)

		r := newByteReader(buf.Bytes())
		decoded, err := DecodeTag(r)
		require.NoError(t, err)
		require.True(t, tag.Equal(decoded), "expected %v got %v", tag, decoded)
	}
}

func TestTagRoundTripContextAndBrackets(t *testing.T) {
	cases := []Tag{
		NewContextTag(3, []byte{0x01, 0x02}),
		NewOpeningTag(5),
		NewClosingTag(5),
		NewContextTag(20, []byte{0x00}), // extended tag number
	}

	for _, tag := range cases {
		var buf bytes.Buffer
		tag.Encode(&buf)

		r := newByteReader(buf.Bytes())
		decoded, err := DecodeTag(r)
		require.NoError(t, err)
		require.True(t, tag.Equal(decoded))
	}
}

func TestUnsignedCanonicalEncoding(t *testing.T) {
	u, err := CastUnsigned(127, nil)
	require.NoError(t, err)

	data := u.Encode().Encode()
	require.Equal(t, []byte{0x21, 0x7F}, data)
}

func TestIntegerCanonicalEncoding(t *testing.T) {
	n, err := CastInteger(-1, nil)
	require.NoError(t, err)

	data := n.Encode().Encode()
	require.Equal(t, []byte{0x31, 0xFF}, data)
}

func TestRealCanonicalEncoding(t *testing.T) {
	r, err := CastReal(73.5, nil)
	require.NoError(t, err)

	data := r.Encode().Encode()
	require.Equal(t, []byte{0x44, 0x42, 0x93, 0x00, 0x00}, data)
}

func TestAppToContextRoundTrip(t *testing.T) {
	app := NewApplicationTag(TagNumberUnsigned, []byte{0x2A})
	ctx, err := app.AppToContext(2)
	require.NoError(t, err)
	require.Equal(t, TagClassContext, ctx.Class)
	require.Equal(t, 2, ctx.Number)

	back, err := ctx.ContextToApp(TagNumberUnsigned)
	require.NoError(t, err)
	require.True(t, app.Equal(back))
}

func TestAppToContextBoolean(t *testing.T) {
	app := newApplicationBoolTag(true)
	ctx, err := app.AppToContext(1)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, ctx.Data)

	back, err := ctx.ContextToApp(TagNumberBoolean)
	require.NoError(t, err)
	require.True(t, back.BoolValue())
}

func TestDecodeTagShortBuffer(t *testing.T) {
	r := newByteReader(nil)
	_, err := DecodeTag(r)
	require.Error(t, err)
	var invalid *InvalidTagError
	require.ErrorAs(t, err, &invalid)
}
