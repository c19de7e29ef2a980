package bacnet

import (
	"encoding/binary"
	"strconv"
)

// Enumerated is a non-negative integer with an optional name↔value
// map. Rendering prefers the name map (in ASN.1 kebab form), falling
// back to the decimal string for unknown codes. The same octet
// stripping rules as Unsigned apply on the wire.
type Enumerated struct {
	Value  uint32
	Names  map[string]uint32 // canonical camelCase name -> value
	schema *Schema
}

// CastEnumerated validates bounds from the schema and wraps the value.
func CastEnumerated(v uint32, names map[string]uint32, schema *Schema) (Enumerated, error) {
	const op = "Enumerated.Cast"
	if schema != nil {
		if schema.LowLimit != nil && float64(v) < *schema.LowLimit {
			return Enumerated{}, newValueError(op, "low limit")
		}
		if schema.HighLimit != nil && float64(v) > *schema.HighLimit {
			return Enumerated{}, newValueError(op, "high limit")
		}
	}
	return Enumerated{Value: v, Names: names, schema: schema}, nil
}

// EnumeratedFromName resolves a name in either camelCase or the
// ASN.1 kebab form to its numeric code.
func EnumeratedFromName(name string, names map[string]uint32, schema *Schema) (Enumerated, error) {
	const op = "Enumerated.Cast"
	if v, ok := names[name]; ok {
		return CastEnumerated(v, names, schema)
	}
	for camel, v := range names {
		if ToASN1Name(camel) == name {
			return CastEnumerated(v, names, schema)
		}
	}
	return Enumerated{}, newValueError(op, "unknown enumerated name: "+name)
}

func (e Enumerated) ElementSchema() *Schema { return e.schema }

// String renders the ASN.1 kebab form when a name is known, falling
// back to the decimal code.
func (e Enumerated) String() string {
	for camel, v := range e.Names {
		if v == e.Value {
			return ToASN1Name(camel)
		}
	}
	return strconv.FormatUint(uint64(e.Value), 10)
}

func (e Enumerated) Encode() *TagList {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], e.Value)
	data := raw[:]
	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}
	tag := appOrContextTag(e.schema, TagNumberEnumerated, data)
	return NewTagList([]Tag{tag})
}

// DecodeEnumerated pops one tag and reassembles the big-endian payload.
func DecodeEnumerated(l *TagList, names map[string]uint32, schema *Schema) (Enumerated, error) {
	const op = "Enumerated.Decode"

	tag, err := expectTag(op, l, schema, TagNumberEnumerated)
	if err != nil {
		return Enumerated{}, err
	}
	if len(tag.Data) < 1 {
		return Enumerated{}, newInvalidTag(op, "invalid tag length")
	}

	var value uint32
	for _, c := range tag.Data {
		value = (value << 8) | uint32(c)
	}

	return CastEnumerated(value, names, schema)
}
