package bacnet

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Double is an IEEE-754 64-bit big-endian floating point value.
type Double struct {
	Value  float64
	schema *Schema
}

// CastDouble validates bounds from the schema and wraps the value.
func CastDouble(v float64, schema *Schema) (Double, error) {
	const op = "Double.Cast"
	if schema != nil {
		if schema.LowLimit != nil && v < *schema.LowLimit {
			return Double{}, newValueError(op, "low limit exceeded")
		}
		if schema.HighLimit != nil && v > *schema.HighLimit {
			return Double{}, newValueError(op, "high limit exceeded")
		}
	}
	return Double{Value: v, schema: schema}, nil
}

func (d Double) ElementSchema() *Schema { return d.schema }

func (d Double) String() string { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

func (d Double) Encode() *TagList {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], math.Float64bits(d.Value))
	tag := appOrContextTag(d.schema, TagNumberDouble, data[:])
	return NewTagList([]Tag{tag})
}

// DecodeDouble pops one tag and reads a fixed 8-octet IEEE-754 payload.
func DecodeDouble(l *TagList, schema *Schema) (Double, error) {
	const op = "Double.Decode"

	tag, err := expectTag(op, l, schema, TagNumberDouble)
	if err != nil {
		return Double{}, err
	}
	if len(tag.Data) != 8 {
		return Double{}, newInvalidTag(op, "invalid tag length")
	}

	v := math.Float64frombits(binary.BigEndian.Uint64(tag.Data))
	return CastDouble(v, schema)
}
