package bacnet

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Real is an IEEE-754 32-bit big-endian floating point value.
type Real struct {
	Value  float32
	schema *Schema
}

// CastReal validates bounds from the schema and wraps the value.
func CastReal(v float32, schema *Schema) (Real, error) {
	const op = "Real.Cast"
	if schema != nil {
		if schema.LowLimit != nil && float64(v) < *schema.LowLimit {
			return Real{}, newValueError(op, "low limit exceeded")
		}
		if schema.HighLimit != nil && float64(v) > *schema.HighLimit {
			return Real{}, newValueError(op, "high limit exceeded")
		}
	}
	return Real{Value: v, schema: schema}, nil
}

func (r Real) ElementSchema() *Schema { return r.schema }

func (r Real) String() string { return strconv.FormatFloat(float64(r.Value), 'g', -1, 32) }

func (r Real) Encode() *TagList {
	var data [4]byte
	binary.BigEndian.PutUint32(data[:], math.Float32bits(r.Value))
	tag := appOrContextTag(r.schema, TagNumberReal, data[:])
	return NewTagList([]Tag{tag})
}

// DecodeReal pops one tag and reads a fixed 4-octet IEEE-754 payload.
func DecodeReal(l *TagList, schema *Schema) (Real, error) {
	const op = "Real.Decode"

	tag, err := expectTag(op, l, schema, TagNumberReal)
	if err != nil {
		return Real{}, err
	}
	if len(tag.Data) != 4 {
		return Real{}, newInvalidTag(op, "invalid tag length")
	}

	v := math.Float32frombits(binary.BigEndian.Uint32(tag.Data))
	return CastReal(v, schema)
}
