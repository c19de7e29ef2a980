package bacnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagListEncodeDecodeRoundTrip(t *testing.T) {
	tags := []Tag{
		NewApplicationTag(TagNumberUnsigned, []byte{0x01}),
		NewOpeningTag(0),
		NewApplicationTag(TagNumberReal, []byte{0x42, 0x93, 0x00, 0x00}),
		NewClosingTag(0),
	}
	l := NewTagList(tags)

	decoded, err := DecodeTagList(l.Encode())
	require.NoError(t, err)
	require.Equal(t, l.Len(), decoded.Len())
	for i, tag := range l.Tags() {
		require.True(t, tag.Equal(decoded.Tags()[i]))
	}
}

func TestPopContextEmptyOrClosing(t *testing.T) {
	empty := NewTagList(nil)
	out, err := empty.PopContext()
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())

	l := NewTagList([]Tag{NewClosingTag(0)})
	out, err = l.PopContext()
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())
	require.Equal(t, 1, l.Len()) // closing tag not consumed
}

func TestPopContextSingleTag(t *testing.T) {
	l := NewTagList([]Tag{
		NewApplicationTag(TagNumberUnsigned, []byte{0x05}),
		NewApplicationTag(TagNumberReal, []byte{0, 0, 0, 0}),
	})
	out, err := l.PopContext()
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	require.Equal(t, 1, l.Len())
}

func TestPopContextBalancedBracket(t *testing.T) {
	l := NewTagList([]Tag{
		NewOpeningTag(1),
		NewOpeningTag(2),
		NewApplicationTag(TagNumberUnsigned, []byte{0x01}),
		NewClosingTag(2),
		NewClosingTag(1),
		NewApplicationTag(TagNumberBoolean, nil),
	})
	out, err := l.PopContext()
	require.NoError(t, err)
	require.Equal(t, 5, out.Len())
	require.Equal(t, 1, l.Len())
}

func TestPopContextUnbalanced(t *testing.T) {
	l := NewTagList([]Tag{NewOpeningTag(1), NewApplicationTag(TagNumberUnsigned, []byte{0x01})})
	_, err := l.PopContext()
	require.Error(t, err)
	var invalid *InvalidTagError
	require.ErrorAs(t, err, &invalid)
}
