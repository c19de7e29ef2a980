package bacnet

import (
	"regexp"
	"strconv"
	gotime "time"
)

// TimeWildcard is the sentinel used in any Time position to mean "any".
const TimeWildcard = 255

// Time is a 4-tuple (hour, minute, second, hundredths) with 255 as a
// wildcard in any position, see spec §3.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Hundredths int
	schema     *Schema
}

func (t Time) ElementSchema() *Schema { return t.schema }

// CastTimeTuple wraps an explicit 4-tuple.
func CastTimeTuple(hour, minute, second, hundredths int, schema *Schema) Time {
	return Time{Hour: hour, Minute: minute, Second: second, Hundredths: hundredths, schema: schema}
}

// CastTimeFromClock derives a Time from a gotime.Time, truncating
// sub-second precision to hundredths.
func CastTimeFromClock(t gotime.Time, schema *Schema) Time {
	return Time{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Hundredths: t.Nanosecond() / 10_000_000,
		schema:     schema,
	}
}

var timeRegex = regexp.MustCompile(`^([*]|[0-9]+)[:]([*]|[0-9]+)(?:[:]([*]|[0-9]+)(?:[.]([*]|[0-9]+))?)?$`)

// CastTimeString parses "HH:MM[:SS[.ss]]" with "*" wildcards in any
// position (spec §6). A field omitted entirely defaults to 0 unless
// some other field in the string used a wildcard, in which case it
// also defaults to the wildcard.
func CastTimeString(s string, schema *Schema) (Time, error) {
	const op = "Time.Cast"

	idx := timeRegex.FindStringSubmatchIndex(s)
	if idx == nil {
		return Time{}, newValueError(op, "invalid time pattern")
	}

	anyWildcard := false
	present := make([]bool, 4)
	text := make([]string, 4)
	for g := 0; g < 4; g++ {
		start, end := idx[2+2*g], idx[3+2*g]
		if start == -1 {
			present[g] = false
			continue
		}
		present[g] = true
		text[g] = s[start:end]
		if text[g] == "*" {
			anyWildcard = true
		}
	}

	values := make([]int, 4)
	for g := 0; g < 4; g++ {
		switch {
		case !present[g]:
			if anyWildcard {
				values[g] = TimeWildcard
			} else {
				values[g] = 0
			}
		case text[g] == "*":
			values[g] = TimeWildcard
		default:
			v, err := strconv.Atoi(text[g])
			if err != nil {
				return Time{}, newValueError(op, "invalid time pattern")
			}
			values[g] = v
		}
	}

	if values[3] > 0 && values[3] < 10 {
		values[3] *= 10
	}

	return Time{Hour: values[0], Minute: values[1], Second: values[2], Hundredths: values[3], schema: schema}, nil
}

// IsSpecial reports whether the time carries any wildcard value.
func (t Time) IsSpecial() bool {
	return t.Hour == TimeWildcard || t.Minute == TimeWildcard || t.Second == TimeWildcard || t.Hundredths == TimeWildcard
}

// String renders "HH:MM:SS.ss" with "*" wildcards.
func (t Time) String() string {
	field := func(v int) string {
		if v == TimeWildcard {
			return "*"
		}
		return pad2(v)
	}
	return field(t.Hour) + ":" + field(t.Minute) + ":" + field(t.Second) + "." + field(t.Hundredths)
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// Compare orders t against o by (hour, minute, second, hundredths)
// lexicographically, returning a negative, zero, or positive value
// when t sorts before, equal to, or after o. Wildcards are
// not given special meaning here — callers compare only specific
// times, matching the schedule interpreter's "time <= current time"
// checks in spec §4.7.
func (t Time) Compare(o Time) int {
	switch {
	case t.Hour != o.Hour:
		return t.Hour - o.Hour
	case t.Minute != o.Minute:
		return t.Minute - o.Minute
	case t.Second != o.Second:
		return t.Second - o.Second
	default:
		return t.Hundredths - o.Hundredths
	}
}

func (t Time) Encode() *TagList {
	data := []byte{byte(t.Hour), byte(t.Minute), byte(t.Second), byte(t.Hundredths)}
	tag := appOrContextTag(t.schema, TagNumberTime, data)
	return NewTagList([]Tag{tag})
}

// DecodeTime pops one tag and reads its four raw payload octets.
func DecodeTime(l *TagList, schema *Schema) (Time, error) {
	const op = "Time.Decode"

	tag, err := expectTag(op, l, schema, TagNumberTime)
	if err != nil {
		return Time{}, err
	}
	if len(tag.Data) != 4 {
		return Time{}, newInvalidTag(op, "invalid tag length")
	}

	return Time{
		Hour:       int(tag.Data[0]),
		Minute:     int(tag.Data[1]),
		Second:     int(tag.Data[2]),
		Hundredths: int(tag.Data[3]),
		schema:     schema,
	}, nil
}
