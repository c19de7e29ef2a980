package bacnet

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// TagClass identifies the framing class of a Tag: universal
// application type, schema-positional context, or a bracket marking
// the start/end of a constructed encoding.
type TagClass int

const (
	TagClassApplication TagClass = iota
	TagClassContext
	TagClassOpening
	TagClassClosing
)

func (c TagClass) String() string {
	switch c {
	case TagClassApplication:
		return "application"
	case TagClassContext:
		return "context"
	case TagClassOpening:
		return "opening"
	case TagClassClosing:
		return "closing"
	default:
		return "?"
	}
}

// Application tag numbers, see spec §6.
const (
	TagNumberNull             = 0
	TagNumberBoolean          = 1
	TagNumberUnsigned         = 2
	TagNumberInteger          = 3
	TagNumberReal             = 4
	TagNumberDouble           = 5
	TagNumberOctetString      = 6
	TagNumberCharacterString  = 7
	TagNumberBitString        = 8
	TagNumberEnumerated       = 9
	TagNumberDate             = 10
	TagNumberTime             = 11
	TagNumberObjectIdentifier = 12
)

var appTagNames = [16]string{
	"null", "boolean", "unsigned", "integer", "real", "double",
	"octetString", "characterString", "bitString", "enumerated",
	"date", "time", "objectIdentifier", "reserved13", "reserved14", "reserved15",
}

// Tag is the universal framing element of the wire format: a class, a
// tag number, an LVT (length/value/type) field, and an opaque data
// payload. Application-class booleans carry their value directly in
// LVT with empty data; bracket tags always have LVT=0 and empty data.
type Tag struct {
	Class  TagClass
	Number int
	LVT    int
	Data   []byte
}

// NewApplicationTag constructs an application-class tag, deriving LVT
// from the payload length (the boolean special case is handled by
// callers that pass an explicit LVT via newApplicationBoolTag).
func NewApplicationTag(number int, data []byte) Tag {
	return Tag{Class: TagClassApplication, Number: number, LVT: len(data), Data: data}
}

func newApplicationBoolTag(value bool) Tag {
	lvt := 0
	if value {
		lvt = 1
	}
	return Tag{Class: TagClassApplication, Number: TagNumberBoolean, LVT: lvt}
}

// NewContextTag constructs a context-class tag for the given schema
// position number.
func NewContextTag(number int, data []byte) Tag {
	return Tag{Class: TagClassContext, Number: number, LVT: len(data), Data: data}
}

// NewOpeningTag and NewClosingTag construct bracket tags.
func NewOpeningTag(number int) Tag {
	return Tag{Class: TagClassOpening, Number: number}
}

func NewClosingTag(number int) Tag {
	return Tag{Class: TagClassClosing, Number: number}
}

// IsOpening and IsClosing report the tag's bracket status.
func (t Tag) IsOpening() bool { return t.Class == TagClassOpening }
func (t Tag) IsClosing() bool { return t.Class == TagClassClosing }

// IsBoolean reports whether this is an application-class boolean tag,
// where LVT carries the value rather than a length.
func (t Tag) IsBoolean() bool {
	return t.Class == TagClassApplication && t.Number == TagNumberBoolean
}

// BoolValue returns the boolean value of an application-boolean tag.
func (t Tag) BoolValue() bool {
	return t.LVT == 1
}

// Equal reports whether two tags have identical class, number, LVT,
// and data.
func (t Tag) Equal(o Tag) bool {
	return t.Class == o.Class && t.Number == o.Number && t.LVT == o.LVT && bytes.Equal(t.Data, o.Data)
}

func (t Tag) String() string {
	switch t.Class {
	case TagClassOpening:
		return fmt.Sprintf("(open(%d))", t.Number)
	case TagClassClosing:
		return fmt.Sprintf("(close(%d))", t.Number)
	case TagClassContext:
		return fmt.Sprintf("(context(%d))", t.Number)
	case TagClassApplication:
		name := "?"
		if t.Number >= 0 && t.Number < len(appTagNames) {
			name = appTagNames[t.Number]
		}
		return fmt.Sprintf("(%s)", name)
	default:
		return "(?)"
	}
}

// Encode appends the wire encoding of the tag to the given buffer.
//
// First octet: bits 7..4 tag number (or 0xF extended), bit 3 the
// class-context-bit (set for context/opening/closing), bits 2..0 the
// length/value/type selector.
func (t Tag) Encode(buf *bytes.Buffer) {
	var first byte

	switch t.Class {
	case TagClassContext:
		first = 0x08
	case TagClassOpening:
		first = 0x0E
	case TagClassClosing:
		first = 0x0F
	default:
		first = 0x00
	}

	if t.Number < 15 {
		first |= byte(t.Number) << 4
	} else {
		first |= 0xF0
	}

	if t.Class != TagClassOpening && t.Class != TagClassClosing {
		if t.LVT < 5 {
			first |= byte(t.LVT)
		} else {
			first |= 0x05
		}
	}

	buf.WriteByte(first)
	if t.Number >= 15 {
		buf.WriteByte(byte(t.Number))
	}

	if t.Class == TagClassOpening || t.Class == TagClassClosing {
		return
	}

	if t.LVT >= 5 {
		switch {
		case t.LVT <= 253:
			buf.WriteByte(byte(t.LVT))
		case t.LVT <= 65535:
			buf.WriteByte(254)
			var b [2]byte
			binary.BigEndian.PutUint16(b[:], uint16(t.LVT))
			buf.Write(b[:])
		default:
			buf.WriteByte(255)
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], uint32(t.LVT))
			buf.Write(b[:])
		}
	}

	buf.Write(t.Data)
}

// DecodeTag decodes a single tag from r, returning an InvalidTagError
// on a short buffer. Every LVT selector 0..7 is accepted; none is
// rejected as reserved.
func DecodeTag(r *byteReader) (Tag, error) {
	const op = "DecodeTag"

	first, err := r.ReadByte(op)
	if err != nil {
		return Tag{}, wrapInvalidTag(op, "short buffer reading initial octet", err)
	}

	var t Tag
	if (first>>3)&0x01 == 1 {
		t.Class = TagClassContext
	} else {
		t.Class = TagClassApplication
	}

	t.Number = int(first >> 4)
	if t.Number == 0x0F {
		n, err := r.ReadByte(op)
		if err != nil {
			return Tag{}, wrapInvalidTag(op, "short buffer reading extended tag number", err)
		}
		t.Number = int(n)
	}

	lvt := int(first & 0x07)
	switch lvt {
	case 5:
		b, err := r.ReadByte(op)
		if err != nil {
			return Tag{}, wrapInvalidTag(op, "short buffer reading extended length", err)
		}
		switch b {
		case 254:
			raw, err := r.ReadN(op, 2)
			if err != nil {
				return Tag{}, wrapInvalidTag(op, "short buffer reading 16-bit length", err)
			}
			lvt = int(binary.BigEndian.Uint16(raw))
		case 255:
			raw, err := r.ReadN(op, 4)
			if err != nil {
				return Tag{}, wrapInvalidTag(op, "short buffer reading 32-bit length", err)
			}
			lvt = int(binary.BigEndian.Uint32(raw))
		default:
			lvt = int(b)
		}
		t.LVT = lvt
	case 6:
		t.Class = TagClassOpening
		t.LVT = 0
	case 7:
		t.Class = TagClassClosing
		t.LVT = 0
	default:
		t.LVT = lvt
	}

	if t.Class == TagClassOpening || t.Class == TagClassClosing {
		t.Data = nil
		return t, nil
	}

	if t.Class == TagClassApplication && t.Number == TagNumberBoolean {
		// LVT carries the value directly; no payload octets.
		t.Data = nil
		return t, nil
	}

	data, err := r.ReadN(op, t.LVT)
	if err != nil {
		return Tag{}, wrapInvalidTag(op, "short buffer reading tag payload", err)
	}
	t.Data = data
	return t, nil
}

// AppToContext rewrites an application-class tag into a context tag
// carrying the same value, for tag number n. Booleans re-materialise
// their LVT-carried value as one octet of data.
func (t Tag) AppToContext(n int) (Tag, error) {
	const op = "Tag.AppToContext"
	if t.Class != TagClassApplication {
		return Tag{}, newValueError(op, "application tag required")
	}
	if t.Number == TagNumberBoolean {
		return NewContextTag(n, []byte{byte(t.LVT)}), nil
	}
	return NewContextTag(n, t.Data), nil
}

// ContextToApp reinterprets a context tag's payload as application tag
// number appNum, requiring the caller to know the intended application
// type (context tags carry no type information of their own).
func (t Tag) ContextToApp(appNum int) (Tag, error) {
	const op = "Tag.ContextToApp"
	if t.Class != TagClassContext {
		return Tag{}, newValueError(op, "context tag required")
	}
	if appNum == TagNumberBoolean {
		if len(t.Data) != 1 {
			return Tag{}, newInvalidTag(op, "boolean context payload must be one octet")
		}
		return Tag{Class: TagClassApplication, Number: TagNumberBoolean, LVT: int(t.Data[0])}, nil
	}
	return NewApplicationTag(appNum, t.Data), nil
}
