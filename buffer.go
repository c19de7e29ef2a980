package bacnet

import (
	"encoding/hex"
	"fmt"
)

// byteReader is a small cursor over a decode buffer, generalizing the
// ad hoc bytes.Reader usage in the teacher's decoder.go/parser.go into
// a reusable helper shared by Tag and every atomic type's decoder.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// Len returns the number of unread bytes remaining.
func (r *byteReader) Len() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte, returning a DecodingError on exhaustion.
func (r *byteReader) ReadByte(op string) (byte, error) {
	if r.pos >= len(r.data) {
		return 0, wrapDecoding(op, fmt.Errorf("buffer exhausted"))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadN reads exactly n bytes, returning a DecodingError if fewer remain.
func (r *byteReader) ReadN(op string, n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, wrapDecoding(op, fmt.Errorf("need %d bytes, have %d", n, r.Len()))
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// hexDump renders a byte slice as a lowercase hex string, matching the
// teacher's "%x" formatting used in its parser error messages.
func hexDump(b []byte) string {
	return hex.EncodeToString(b)
}

// ParseHex parses a lowercase or uppercase hex string into bytes, for
// callers (such as cmd/examples/decode) that accept APDU payloads as
// a hex string on the command line.
func ParseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bacnet: parseHex: %w", err)
	}
	return b, nil
}
