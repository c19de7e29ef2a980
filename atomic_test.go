package bacnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullRoundTrip(t *testing.T) {
	n := NewNull(nil)
	decoded, err := DecodeNull(n.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, n, decoded)
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		b := CastBoolean(v, nil)
		decoded, err := DecodeBoolean(b.Encode(), nil)
		require.NoError(t, err)
		require.Equal(t, v, decoded.Value)
	}
}

func TestUnsignedRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 255, 65536, 0xFFFFFFFF} {
		u, err := CastUnsigned(v, nil)
		require.NoError(t, err)
		decoded, err := DecodeUnsigned(u.Encode(), nil)
		require.NoError(t, err)
		require.Equal(t, v, decoded.Value)
	}
}

func TestUnsignedBoundsEnforced(t *testing.T) {
	schema := internSchema(Schema{HighLimit: floatPtr(255)})
	_, err := CastUnsigned(256, schema)
	require.Error(t, err)
}

func TestUnsigned8SchemaBoundsCastUnsigned(t *testing.T) {
	u, err := CastUnsigned(255, Unsigned8Schema())
	require.NoError(t, err)
	require.Equal(t, uint32(255), u.Value)

	_, err = CastUnsigned(256, Unsigned8Schema())
	require.Error(t, err)
}

func TestUnsigned16SchemaBoundsCastUnsigned(t *testing.T) {
	u, err := CastUnsigned(65535, Unsigned16Schema())
	require.NoError(t, err)
	require.Equal(t, uint32(65535), u.Value)

	_, err = CastUnsigned(65536, Unsigned16Schema())
	require.Error(t, err)
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []int32{0, -1, 1, 127, -128, 32767, -32768, 2147483647, -2147483648} {
		n, err := CastInteger(v, nil)
		require.NoError(t, err)
		decoded, err := DecodeInteger(n.Encode(), nil)
		require.NoError(t, err)
		require.Equal(t, v, decoded.Value)
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 73.5, 3.14159} {
		r, err := CastReal(v, nil)
		require.NoError(t, err)
		decoded, err := DecodeReal(r.Encode(), nil)
		require.NoError(t, err)
		require.Equal(t, v, decoded.Value)
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 73.5, 2.718281828} {
		d, err := CastDouble(v, nil)
		require.NoError(t, err)
		decoded, err := DecodeDouble(d.Encode(), nil)
		require.NoError(t, err)
		require.Equal(t, v, decoded.Value)
	}
}

func TestOctetStringRoundTrip(t *testing.T) {
	v := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	s, err := CastOctetString(v, nil)
	require.NoError(t, err)
	decoded, err := DecodeOctetString(s.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, v, decoded.Value)
}

func TestCharacterStringRoundTripUTF8(t *testing.T) {
	s, err := CastCharacterString("hello, bacnet", nil)
	require.NoError(t, err)
	decoded, err := DecodeCharacterString(s.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, "hello, bacnet", decoded.Value)
}

func TestCharacterStringRoundTripEncodings(t *testing.T) {
	for _, enc := range []int{EncodingUTF8, EncodingUTF16BE, EncodingUTF32BE, EncodingLatin1} {
		schema := internSchema(Schema{Encoding: intPtr(enc)})
		s, err := CastCharacterString("abc123", schema)
		require.NoError(t, err)
		decoded, err := DecodeCharacterString(s.Encode(), schema)
		require.NoError(t, err)
		require.Equal(t, "abc123", decoded.Value)
	}
}

func TestBitStringRoundTripNamedBits(t *testing.T) {
	names := map[string]int{"inAlarm": 0, "fault": 1, "overridden": 2, "outOfService": 3}
	bs, err := CastBitStringString("inAlarm;outOfService", names, nil)
	require.NoError(t, err)

	decoded, err := DecodeBitString(bs.Encode(), names, nil)
	require.NoError(t, err)
	require.True(t, decoded.Bit("inAlarm"))
	require.False(t, decoded.Bit("fault"))
	require.True(t, decoded.Bit("outOfService"))
}

func TestBitStringUnusedBitsOnByteBoundary(t *testing.T) {
	bits := []bool{true, false, true, false, true, false, true, false}
	bs := CastBitStringBits(bits, nil, nil)
	data := bs.Encode().Encode()
	// data[0] is the tag octet, data[1] is the unused-bits octet.
	require.Equal(t, byte(0), data[1])
}

func TestEnumeratedRoundTripAndNameResolution(t *testing.T) {
	names := map[string]uint32{"analogValue": 2, "binaryValue": 5}
	e, err := CastEnumerated(2, names, nil)
	require.NoError(t, err)
	require.Equal(t, "analog-value", e.String())

	decoded, err := DecodeEnumerated(e.Encode(), names, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(2), decoded.Value)

	byName, err := EnumeratedFromName("analog-value", names, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(2), byName.Value)
}

func TestTimeRoundTrip(t *testing.T) {
	tm := CastTimeTuple(13, 30, 45, 67, nil)
	decoded, err := DecodeTime(tm.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, tm.Hour, decoded.Hour)
	require.Equal(t, tm.Minute, decoded.Minute)
	require.Equal(t, tm.Second, decoded.Second)
	require.Equal(t, tm.Hundredths, decoded.Hundredths)
}

func TestTimeCastStringWildcards(t *testing.T) {
	tm, err := CastTimeString("10:*", nil)
	require.NoError(t, err)
	require.Equal(t, 10, tm.Hour)
	require.Equal(t, TimeWildcard, tm.Minute)
	require.Equal(t, TimeWildcard, tm.Second)
	require.Equal(t, TimeWildcard, tm.Hundredths)
	require.True(t, tm.IsSpecial())
}

func TestTimeCastStringSingleDigitHundredths(t *testing.T) {
	tm, err := CastTimeString("10:00:00.5", nil)
	require.NoError(t, err)
	require.Equal(t, 50, tm.Hundredths)
}

func TestTimeCastStringNoWildcardMissingFieldsDefaultZero(t *testing.T) {
	tm, err := CastTimeString("10:30", nil)
	require.NoError(t, err)
	require.Equal(t, 0, tm.Second)
	require.Equal(t, 0, tm.Hundredths)
}

func TestObjectIdentifierRoundTrip(t *testing.T) {
	oid, err := CastObjectIdentifierTuple(8, 1234, nil)
	require.NoError(t, err)

	decoded, err := DecodeObjectIdentifier(oid.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, oid.Type, decoded.Type)
	require.Equal(t, oid.Instance, decoded.Instance)
	require.Equal(t, "device,1234", decoded.String())
}

func TestObjectIdentifierInstanceOutOfRange(t *testing.T) {
	_, err := CastObjectIdentifierTuple(8, objectInstanceMax+1, nil)
	require.Error(t, err)
}

func TestObjectIdentifierCastString(t *testing.T) {
	oid, err := CastObjectIdentifierString("device,1234", nil)
	require.NoError(t, err)
	require.Equal(t, uint32(8), oid.Type)
	require.Equal(t, uint32(1234), oid.Instance)

	oid2, err := CastObjectIdentifierString("schedule:17", nil)
	require.NoError(t, err)
	require.Equal(t, uint32(17), oid2.Type)
	require.Equal(t, uint32(17), oid2.Instance)
}

func TestObjectIdentifierPacking(t *testing.T) {
	oid := CastObjectIdentifierUint(0x02000001, nil)
	require.Equal(t, uint32(8), oid.Type)
	require.Equal(t, uint32(1), oid.Instance)
}
