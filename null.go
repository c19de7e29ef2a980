package bacnet

// Null carries no value; it is the schedule-default's "relinquish"
// marker and a primitive application type in its own right.
type Null struct {
	schema *Schema
}

// NewNull constructs a Null value, optionally signatured.
func NewNull(schema *Schema) Null {
	return Null{schema: schema}
}

func (n Null) ElementSchema() *Schema { return n.schema }

func (n Null) String() string { return "null" }

// Encode returns a one-tag TagList for this Null value.
func (n Null) Encode() *TagList {
	tag := appOrContextTag(n.schema, TagNumberNull, nil)
	return NewTagList([]Tag{tag})
}

// DecodeNull pops one tag, verifying class/number per the schema.
func DecodeNull(l *TagList, schema *Schema) (Null, error) {
	if _, err := expectTag("Null.Decode", l, schema, TagNumberNull); err != nil {
		return Null{}, err
	}
	return Null{schema: schema}, nil
}
