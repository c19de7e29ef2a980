package bacnet

import (
	"fmt"
	"sync"
)

// Schema is the effective schema signature carried by an Element: the
// set of optional parameters that distinguish one parametric instance
// of an atomic type from another (spec §3 "Element").
//
// Two Schema values with equal fields are considered equivalent; the
// process-wide schemaCache below lets callers obtain a single shared
// *Schema for a given signature so that equality checks can compare
// pointers when convenient, mirroring the source's memoised parametric
// classes (spec §9 "Runtime type dispatch").
type Schema struct {
	Context   *int     // context tag number override; nil => application class
	Optional  bool     // whether absence is permitted in surrounding constructs
	LowLimit  *float64 // inclusive lower bound, numeric types
	HighLimit *float64 // inclusive upper bound, numeric types
	MinLength *int     // inclusive minimum length, string types
	MaxLength *int     // inclusive maximum length, string types
	Encoding  *int      // default character encoding tag, character strings only
	Length    *int     // fixed length, bit strings only
}

// key renders a canonical, comparable representation of the schema
// for memoisation purposes.
func (s Schema) key() string {
	fmtp := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *p)
	}
	fmtf := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%v", *p)
	}
	return fmt.Sprintf("ctx=%s opt=%v low=%s high=%s min=%s max=%s enc=%s len=%s",
		fmtp(s.Context), s.Optional, fmtf(s.LowLimit), fmtf(s.HighLimit),
		fmtp(s.MinLength), fmtp(s.MaxLength), fmtp(s.Encoding), fmtp(s.Length))
}

// IsContextTagged reports whether the schema requests a context tag.
func (s Schema) IsContextTagged() bool { return s.Context != nil }

var (
	schemaCacheMu sync.RWMutex
	schemaCache   = map[string]*Schema{}
)

// internSchema returns the process-wide canonical *Schema equal to s,
// creating and caching one on first use. Concurrent callers may race
// to insert, but every inserter produces an equal result, so the race
// is benign (spec §5 "Shared resources").
func internSchema(s Schema) *Schema {
	k := s.key()

	schemaCacheMu.RLock()
	if cached, ok := schemaCache[k]; ok {
		schemaCacheMu.RUnlock()
		return cached
	}
	schemaCacheMu.RUnlock()

	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()
	if cached, ok := schemaCache[k]; ok {
		return cached
	}
	cp := s
	schemaCache[k] = &cp
	return &cp
}

// Helper constructors for building one-off schema parameters inline.
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Element is the common contract every atomic type satisfies: casting
// from a host value, and encoding to / decoding from a TagList.
type Element interface {
	// ElementSchema returns the effective schema signature for this value.
	ElementSchema() *Schema
	// Encode returns a one-tag TagList representing this value.
	Encode() *TagList
}

// appOrContextTag builds the application- or context-class tag for a
// payload, depending on whether the schema requests a context number.
func appOrContextTag(schema *Schema, appNumber int, data []byte) Tag {
	if schema != nil && schema.Context != nil {
		return NewContextTag(*schema.Context, data)
	}
	return NewApplicationTag(appNumber, data)
}

// expectTag pops one tag from the list and verifies its class/number
// against the schema and the expected application tag number, per the
// atomic decode contract in spec §4.4.
func expectTag(op string, l *TagList, schema *Schema, appNumber int) (Tag, error) {
	tag, ok := l.Pop()
	if !ok {
		return Tag{}, newInvalidTag(op, fmt.Sprintf("%s application tag expected", appTagNames[appNumber]))
	}

	switch tag.Class {
	case TagClassApplication:
		if schema != nil && schema.Context != nil {
			return Tag{}, newInvalidTag(op, fmt.Sprintf("context tag %d expected", *schema.Context))
		}
		if tag.Number != appNumber {
			return Tag{}, newInvalidTag(op, fmt.Sprintf("%s application tag expected", appTagNames[appNumber]))
		}
	case TagClassContext:
		if schema == nil || schema.Context == nil {
			return Tag{}, newInvalidTag(op, fmt.Sprintf("%s application tag expected", appTagNames[appNumber]))
		}
		if tag.Number != *schema.Context {
			return Tag{}, newInvalidTag(op, "mismatched context")
		}
	default:
		return Tag{}, newInvalidTag(op, "unexpected opening/closing tag")
	}

	return tag, nil
}
