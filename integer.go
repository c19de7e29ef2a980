package bacnet

import (
	"encoding/binary"
	"strconv"
)

// Integer carries signed 32-bit semantics on the wire: big-endian
// two's complement, minimised octet count with sign preservation.
type Integer struct {
	Value  int32
	schema *Schema
}

// CastInteger validates bounds from the schema and wraps the value.
func CastInteger(v int32, schema *Schema) (Integer, error) {
	const op = "Integer.Cast"
	if schema != nil {
		if schema.LowLimit != nil && float64(v) < *schema.LowLimit {
			return Integer{}, newValueError(op, "low limit")
		}
		if schema.HighLimit != nil && float64(v) > *schema.HighLimit {
			return Integer{}, newValueError(op, "high limit")
		}
	}
	return Integer{Value: v, schema: schema}, nil
}

func (n Integer) ElementSchema() *Schema { return n.schema }

func (n Integer) String() string { return strconv.FormatInt(int64(n.Value), 10) }

// Encode minimises the two's-complement representation, stripping
// redundant 0x00 or 0xFF lead octets while preserving the sign bit.
func (n Integer) Encode() *TagList {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], uint32(n.Value))
	data := raw[:]

	if n.Value < 0 {
		for len(data) > 1 {
			if data[0] != 0xFF || data[1] < 0x80 {
				break
			}
			data = data[1:]
		}
	} else {
		for len(data) > 1 {
			if data[0] != 0x00 || data[1] >= 0x80 {
				break
			}
			data = data[1:]
		}
	}

	tag := appOrContextTag(n.schema, TagNumberInteger, data)
	return NewTagList([]Tag{tag})
}

// DecodeInteger pops one tag and sign-extends its minimised payload.
func DecodeInteger(l *TagList, schema *Schema) (Integer, error) {
	const op = "Integer.Decode"

	tag, err := expectTag(op, l, schema, TagNumberInteger)
	if err != nil {
		return Integer{}, err
	}
	if len(tag.Data) < 1 {
		return Integer{}, newInvalidTag(op, "invalid tag length")
	}
	if len(tag.Data) > 4 {
		return Integer{}, newInvalidTag(op, "integer payload exceeds 32 bits")
	}

	value := int32(int8(tag.Data[0]))
	for _, c := range tag.Data[1:] {
		value = (value << 8) | int32(c)
	}

	return CastInteger(value, schema)
}
