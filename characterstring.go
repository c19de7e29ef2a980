package bacnet

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
)

// Character-string encoding codes, see spec §6.
const (
	EncodingUTF8    = 0
	EncodingUTF32BE = 3
	EncodingUTF16BE = 4
	EncodingLatin1  = 5
)

// CharacterString is Unicode text with a one-octet encoding prefix.
type CharacterString struct {
	Value  string
	schema *Schema
}

// CastCharacterString validates length bounds and wraps v.
func CastCharacterString(v string, schema *Schema) (CharacterString, error) {
	const op = "CharacterString.Cast"
	n := len([]rune(v))
	if schema != nil {
		if schema.MinLength != nil && n < *schema.MinLength {
			return CharacterString{}, newValueError(op, "minimum length")
		}
		if schema.MaxLength != nil && n > *schema.MaxLength {
			return CharacterString{}, newValueError(op, "maximum length")
		}
	}
	return CharacterString{Value: v, schema: schema}, nil
}

func (s CharacterString) encoding() int {
	if s.schema != nil && s.schema.Encoding != nil {
		return *s.schema.Encoding
	}
	return EncodingUTF8
}

func (s CharacterString) ElementSchema() *Schema { return s.schema }

func (s CharacterString) String() string { return s.Value }

// Encode prefixes the payload with the schema's configured encoding
// octet (default UTF-8).
func (s CharacterString) Encode() *TagList {
	enc := s.encoding()

	var payload []byte
	switch enc {
	case EncodingUTF32BE:
		payload = encodeUTF32BE(s.Value)
	case EncodingUTF16BE:
		payload = encodeUTF16BE(s.Value)
	case EncodingLatin1:
		payload = encodeLatin1(s.Value)
	default:
		payload = []byte(s.Value)
	}

	data := append([]byte{byte(enc)}, payload...)
	tag := appOrContextTag(s.schema, TagNumberCharacterString, data)
	return NewTagList([]Tag{tag})
}

// DecodeCharacterString pops one tag; an unrecognised encoding byte is
// treated as UTF-8, falling back to Latin-1 on decode failure.
func DecodeCharacterString(l *TagList, schema *Schema) (CharacterString, error) {
	const op = "CharacterString.Decode"

	tag, err := expectTag(op, l, schema, TagNumberCharacterString)
	if err != nil {
		return CharacterString{}, err
	}
	if len(tag.Data) < 1 {
		return CharacterString{}, newInvalidTag(op, "invalid tag length")
	}

	enc := int(tag.Data[0])
	payload := tag.Data[1:]

	switch enc {
	case EncodingUTF8, EncodingUTF32BE, EncodingUTF16BE, EncodingLatin1:
	default:
		enc = EncodingUTF8
	}

	var value string
	switch enc {
	case EncodingUTF32BE:
		value = decodeUTF32BE(payload)
	case EncodingUTF16BE:
		value = decodeUTF16BE(payload)
	case EncodingLatin1:
		value = decodeLatin1(payload)
	default:
		if utf8.Valid(payload) {
			value = string(payload)
		} else {
			// Wrong encoding; most likely a Windows Latin-1 source.
			value = decodeLatin1(payload)
		}
	}

	return CastCharacterString(value, schema)
}

func encodeLatin1(s string) []byte {
	runes := []rune(s)
	out := make([]byte, len(runes))
	for i, r := range runes {
		if r > 0xFF {
			r = '?'
		}
		out[i] = byte(r)
	}
	return out
}

func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func encodeUTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	var buf bytes.Buffer
	for _, u := range units {
		buf.WriteByte(byte(u >> 8))
		buf.WriteByte(byte(u))
	}
	return buf.Bytes()
}

func decodeUTF16BE(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units))
}

func encodeUTF32BE(s string) []byte {
	var buf bytes.Buffer
	for _, r := range s {
		buf.WriteByte(byte(r >> 24))
		buf.WriteByte(byte(r >> 16))
		buf.WriteByte(byte(r >> 8))
		buf.WriteByte(byte(r))
	}
	return buf.Bytes()
}

func decodeUTF32BE(b []byte) string {
	var sb []rune
	for i := 0; i+3 < len(b); i += 4 {
		r := rune(uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3]))
		sb = append(sb, r)
	}
	return string(sb)
}
