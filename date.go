package bacnet

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Wildcard and special-selector sentinels for Date, see spec §3/§4.5.
const (
	DateYearAny = 255

	DateMonthAny  = 255
	DateMonthOdd  = 13
	DateMonthEven = 14

	DateDayAny  = 255
	DateDayLast = 32
	DateDayOdd  = 33
	DateDayEven = 34

	DateDowAny = 255
)

var (
	monthTokens = map[string]int{"*": DateMonthAny, "odd": DateMonthOdd, "even": DateMonthEven}
	dayTokens   = map[string]int{"*": DateDayAny, "last": DateDayLast, "odd": DateDayOdd, "even": DateDayEven}
	dowTokens   = map[string]int{
		"*": DateDowAny,
		"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
	}

	monthInv = map[int]string{DateMonthAny: "*", DateMonthOdd: "odd", DateMonthEven: "even"}
	dayInv   = map[int]string{DateDayAny: "*", DateDayLast: "last", DateDayOdd: "odd", DateDayEven: "even"}
	dowInv   = map[int]string{DateDowAny: "*", 1: "mon", 2: "tue", 3: "wed", 4: "thu", 5: "fri", 6: "sat", 7: "sun"}
)

const (
	reMM   = `(?P<month>0?[1-9]|1[0-4]|odd|even|255|[*])`
	reDD   = `(?P<day>[0-3]?\d|last|odd|even|255|[*])`
	reYY   = `(?P<year>\d{2}|255|[*])`
	reYYYY = `(?P<year>\d{4}|255|[*])`
	reDOW  = `[1-7]|mon|tue|wed|thu|fri|sat|sun|255|[*]`
)

func mergeDatePattern(parts ...string) *regexp.Regexp {
	return regexp.MustCompile(`^` + strings.Join(parts, `[/-]`) + `(?:\s+(?P<dow>` + reDOW + `))?$`)
}

var datePatterns = []*regexp.Regexp{
	mergeDatePattern(reYYYY, reMM, reDD),
	mergeDatePattern(reMM, reDD, reYYYY),
	mergeDatePattern(reDD, reMM, reYYYY),
	mergeDatePattern(reYY, reMM, reDD),
	mergeDatePattern(reMM, reDD, reYY),
	mergeDatePattern(reDD, reMM, reYY),
}

// Date is a 4-tuple (year-1900, month, day, day-of-week) with wildcard
// sentinels in each position, see spec §3.
type Date struct {
	Year      int
	Month     int
	Day       int
	DayOfWeek int
	schema    *Schema
}

func (d Date) ElementSchema() *Schema { return d.schema }

// CastDateTuple normalises a 4-tuple, accepting either a years-since-1900
// or a full calendar year in the first position.
func CastDateTuple(year, month, day, dow int, schema *Schema) Date {
	if year > 1900 {
		year -= 1900
	}
	return Date{Year: year, Month: month, Day: day, DayOfWeek: dow, schema: schema}
}

// CastDateFromTime derives a Date from a fully specified time.Time.
func CastDateFromTime(t time.Time, schema *Schema) Date {
	return Date{
		Year:      t.Year() - 1900,
		Month:     int(t.Month()),
		Day:       t.Day(),
		DayOfWeek: isoWeekday(t.Weekday()),
		schema:    schema,
	}
}

// isoWeekday maps Go's Sunday=0..Saturday=6 to BACnet's Monday=1..Sunday=7.
func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

func matchGroup(re *regexp.Regexp, m []string, name string) string {
	for i, n := range re.SubexpNames() {
		if n == name {
			return m[i]
		}
	}
	return ""
}

// CastDateString parses one of the six ordered date string forms
// described in spec §4.5, raising a ValueError on no match or on
// ambiguous matches with differing groupings.
func CastDateString(s string, schema *Schema) (Date, error) {
	const op = "Date.Cast"
	s = strings.ToLower(strings.TrimSpace(s))

	type parsed struct{ year, month, day, dow string }
	var matches []parsed

	for _, re := range datePatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		matches = append(matches, parsed{
			year:  matchGroup(re, m, "year"),
			month: matchGroup(re, m, "month"),
			day:   matchGroup(re, m, "day"),
			dow:   matchGroup(re, m, "dow"),
		})
	}

	if len(matches) == 0 {
		return Date{}, newValueError(op, "unmatched")
	}

	match := matches[0]
	if len(matches) > 1 {
		for _, other := range matches[1:] {
			if other != match {
				return Date{}, newValueError(op, "ambiguous")
			}
		}
	}

	year, err := parseDateYear(match.year)
	if err != nil {
		return Date{}, err
	}
	month, err := parseDateMonth(match.month)
	if err != nil {
		return Date{}, err
	}
	day, err := parseDateDay(match.day)
	if err != nil {
		return Date{}, err
	}
	suppliedDow, err := parseDateDow(match.dow)
	if err != nil {
		return Date{}, err
	}

	if year != DateYearAny {
		year -= 1900
	}

	// A day-of-week token given explicitly in the string is honored as
	// written. Only in its absence do we compute it from a fully
	// specific Y/M/D, or fall back to the wildcard (spec §4.5).
	dayOfWeek := DateDowAny
	if match.dow != "" {
		dayOfWeek = suppliedDow
	} else {
		_, monthIsSpecial := monthInv[month]
		_, dayIsSpecial := dayInv[day]
		if year != DateYearAny && !monthIsSpecial && !dayIsSpecial {
			if t, ok := tryDate(year+1900, month, day); ok {
				dayOfWeek = isoWeekday(t.Weekday())
			}
		}
	}

	return Date{Year: year, Month: month, Day: day, DayOfWeek: dayOfWeek, schema: schema}, nil
}

func tryDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func parseDateYear(s string) (int, error) {
	const op = "Date.Cast"
	if s == "*" || s == "" {
		return DateYearAny, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValueError(op, "invalid year")
	}
	switch {
	case year == DateYearAny:
		return DateYearAny, nil
	case year < 35:
		return year + 2000, nil
	case year < 100:
		return year + 1900, nil
	case year < 1900:
		return 0, newValueError(op, "invalid year")
	}
	return year, nil
}

func parseDateMonth(s string) (int, error) {
	const op = "Date.Cast"
	if v, ok := monthTokens[s]; ok {
		return v, nil
	}
	month, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValueError(op, "invalid month")
	}
	if month == DateMonthAny {
		return month, nil
	}
	if month == 0 || month > 14 {
		return 0, newValueError(op, "invalid month")
	}
	return month, nil
}

func parseDateDay(s string) (int, error) {
	const op = "Date.Cast"
	if v, ok := dayTokens[s]; ok {
		return v, nil
	}
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValueError(op, "invalid day")
	}
	if day == DateDayAny {
		return day, nil
	}
	if day == 0 || day > 34 {
		return 0, newValueError(op, "invalid day")
	}
	return day, nil
}

func parseDateDow(s string) (int, error) {
	const op = "Date.Cast"
	if s == "" {
		return DateDowAny, nil
	}
	if v, ok := dowTokens[s]; ok {
		return v, nil
	}
	dow, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValueError(op, "invalid day of week")
	}
	if dow == DateDowAny {
		return dow, nil
	}
	if dow > 7 {
		return 0, newValueError(op, "invalid day of week")
	}
	return dow, nil
}

// IsSpecial reports whether the date carries any wildcard value.
func (d Date) IsSpecial() bool {
	_, monthSpecial := monthInv[d.Month]
	_, daySpecial := dayInv[d.Day]
	return d.Year == DateYearAny || monthSpecial || daySpecial || d.DayOfWeek == DateDowAny
}

// String renders "YYYY-M-D dow" with wildcards and named selectors.
func (d Date) String() string {
	year := "*"
	if d.Year != DateYearAny {
		year = strconv.Itoa(d.Year + 1900)
	}
	month := monthInv[d.Month]
	if month == "" {
		month = strconv.Itoa(d.Month)
	}
	day := dayInv[d.Day]
	if day == "" {
		day = strconv.Itoa(d.Day)
	}
	dow := dowInv[d.DayOfWeek]
	if dow == "" {
		dow = strconv.Itoa(d.DayOfWeek)
	}
	return year + "-" + month + "-" + day + " " + dow
}

func (d Date) Encode() *TagList {
	data := []byte{byte(d.Year), byte(d.Month), byte(d.Day), byte(d.DayOfWeek)}
	tag := appOrContextTag(d.schema, TagNumberDate, data)
	return NewTagList([]Tag{tag})
}

// DecodeDate pops one tag and reads its four raw payload octets.
func DecodeDate(l *TagList, schema *Schema) (Date, error) {
	const op = "Date.Decode"

	tag, err := expectTag(op, l, schema, TagNumberDate)
	if err != nil {
		return Date{}, err
	}
	if len(tag.Data) != 4 {
		return Date{}, newInvalidTag(op, "invalid tag length")
	}

	return Date{
		Year:      int(tag.Data[0]),
		Month:     int(tag.Data[1]),
		Day:       int(tag.Data[2]),
		DayOfWeek: int(tag.Data[3]),
		schema:    schema,
	}, nil
}

// Compare orders two dates by (Year, Month, Day) lexicographically,
// used by match_date_range (spec §4.6). It does not interpret
// wildcards specially; callers must pass fully specific dates.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return d.Year - o.Year
	case d.Month != o.Month:
		return d.Month - o.Month
	default:
		return d.Day - o.Day
	}
}
