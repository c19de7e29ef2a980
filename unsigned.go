package bacnet

import (
	"encoding/binary"
	"strconv"
)

// Unsigned is a non-negative integer, bounded 0..2^32-1 unless
// narrowed by the schema's LowLimit/HighLimit. Unsigned8 and
// Unsigned16 are expressed as schema-narrowed Unsigned values
// (HighLimit 255 / 65535 respectively) rather than distinct Go types,
// since the wire encoding and cast rules are identical.
type Unsigned struct {
	Value  uint32
	schema *Schema
}

// Unsigned8Schema and Unsigned16Schema are convenience constructors
// for the sub-variants named in spec §3.
func Unsigned8Schema() *Schema  { return internSchema(Schema{HighLimit: floatPtr(255)}) }
func Unsigned16Schema() *Schema { return internSchema(Schema{HighLimit: floatPtr(65535)}) }

// CastUnsigned validates bounds from the schema and wraps the value.
func CastUnsigned(v uint32, schema *Schema) (Unsigned, error) {
	const op = "Unsigned.Cast"
	if schema != nil {
		if schema.LowLimit != nil && float64(v) < *schema.LowLimit {
			return Unsigned{}, newValueError(op, "low limit")
		}
		if schema.HighLimit != nil && float64(v) > *schema.HighLimit {
			return Unsigned{}, newValueError(op, "high limit")
		}
	}
	return Unsigned{Value: v, schema: schema}, nil
}

func (u Unsigned) ElementSchema() *Schema { return u.schema }

func (u Unsigned) String() string { return strconv.FormatUint(uint64(u.Value), 10) }

// Encode strips leading zero octets down to one octet, big-endian.
func (u Unsigned) Encode() *TagList {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], u.Value)

	data := raw[:]
	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}

	tag := appOrContextTag(u.schema, TagNumberUnsigned, data)
	return NewTagList([]Tag{tag})
}

// DecodeUnsigned pops one tag and reassembles the big-endian payload.
func DecodeUnsigned(l *TagList, schema *Schema) (Unsigned, error) {
	const op = "Unsigned.Decode"

	tag, err := expectTag(op, l, schema, TagNumberUnsigned)
	if err != nil {
		return Unsigned{}, err
	}
	if len(tag.Data) < 1 {
		return Unsigned{}, newInvalidTag(op, "invalid tag length")
	}
	if len(tag.Data) > 4 {
		return Unsigned{}, newInvalidTag(op, "unsigned payload exceeds 32 bits")
	}

	var value uint32
	for _, c := range tag.Data {
		value = (value << 8) | uint32(c)
	}

	return CastUnsigned(value, schema)
}
