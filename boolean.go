package bacnet

// Boolean is a true/false primitive. Unlike the other atomic types,
// its value is carried directly in the tag's LVT field rather than in
// the tag's data payload.
type Boolean struct {
	Value  bool
	schema *Schema
}

// CastBoolean wraps a host bool. Booleans have no bounds to enforce,
// so unlike the other atomic casts it returns no error.
func CastBoolean(v bool, schema *Schema) Boolean {
	return Boolean{Value: v, schema: schema}
}

func (b Boolean) ElementSchema() *Schema { return b.schema }

func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b Boolean) Encode() *TagList {
	if b.schema != nil && b.schema.Context != nil {
		// Context-tagged booleans re-materialise their value as one
		// octet of data; see Tag.AppToContext.
		return NewTagList([]Tag{NewContextTag(*b.schema.Context, []byte{boolOctet(b.Value)})})
	}
	return NewTagList([]Tag{newApplicationBoolTag(b.Value)})
}

func boolOctet(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// DecodeBoolean pops one tag and reads its value from LVT (application
// class) or from a one-octet payload (context class).
func DecodeBoolean(l *TagList, schema *Schema) (Boolean, error) {
	const op = "Boolean.Decode"

	tag, ok := l.Pop()
	if !ok {
		return Boolean{}, newInvalidTag(op, "boolean application tag expected")
	}

	switch tag.Class {
	case TagClassApplication:
		if schema != nil && schema.Context != nil {
			return Boolean{}, newInvalidTag(op, "context tag expected")
		}
		if tag.Number != TagNumberBoolean {
			return Boolean{}, newInvalidTag(op, "boolean application tag expected")
		}
		return Boolean{Value: tag.LVT == 1, schema: schema}, nil
	case TagClassContext:
		if schema == nil || schema.Context == nil {
			return Boolean{}, newInvalidTag(op, "boolean application tag expected")
		}
		if tag.Number != *schema.Context {
			return Boolean{}, newInvalidTag(op, "mismatched context")
		}
		if len(tag.Data) != 1 {
			return Boolean{}, newInvalidTag(op, "invalid tag length")
		}
		return Boolean{Value: tag.Data[0] != 0, schema: schema}, nil
	default:
		return Boolean{}, newInvalidTag(op, "unexpected opening/closing tag")
	}
}
