package bacnet

import "encoding/hex"

// OctetString is a raw byte sequence bounded by the schema's optional
// MinLength/MaxLength.
type OctetString struct {
	Value  []byte
	schema *Schema
}

// CastOctetString validates length bounds and wraps a copy of v.
func CastOctetString(v []byte, schema *Schema) (OctetString, error) {
	const op = "OctetString.Cast"
	if schema != nil {
		if schema.MinLength != nil && len(v) < *schema.MinLength {
			return OctetString{}, newValueError(op, "minimum length")
		}
		if schema.MaxLength != nil && len(v) > *schema.MaxLength {
			return OctetString{}, newValueError(op, "maximum length")
		}
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return OctetString{Value: cp, schema: schema}, nil
}

func (s OctetString) ElementSchema() *Schema { return s.schema }

func (s OctetString) String() string { return hex.EncodeToString(s.Value) }

func (s OctetString) Encode() *TagList {
	tag := appOrContextTag(s.schema, TagNumberOctetString, s.Value)
	return NewTagList([]Tag{tag})
}

// DecodeOctetString pops one tag and returns its raw payload.
func DecodeOctetString(l *TagList, schema *Schema) (OctetString, error) {
	const op = "OctetString.Decode"

	tag, err := expectTag(op, l, schema, TagNumberOctetString)
	if err != nil {
		return OctetString{}, err
	}
	return CastOctetString(tag.Data, schema)
}
