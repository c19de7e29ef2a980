package bacnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchDateWildcards(t *testing.T) {
	specific := CastDateTuple(2026, 7, 28, 2, nil)
	pattern := CastDateTuple(DateYearAny, DateMonthAny, DateDayAny, DateDowAny, nil)
	require.True(t, MatchDate(specific, pattern))
}

func TestMatchDateOddEvenMonth(t *testing.T) {
	specific := CastDateTuple(2026, 7, 15, DateDowAny, nil)
	oddPattern := CastDateTuple(DateYearAny, DateMonthOdd, DateDayAny, DateDowAny, nil)
	require.True(t, MatchDate(specific, oddPattern))

	evenPattern := CastDateTuple(DateYearAny, DateMonthEven, DateDayAny, DateDowAny, nil)
	require.False(t, MatchDate(specific, evenPattern))
}

func TestMatchDateLastDayOfMonth(t *testing.T) {
	specific := CastDateTuple(2026, 2, 28, DateDowAny, nil) // 2026 is not a leap year
	pattern := CastDateTuple(DateYearAny, DateMonthAny, DateDayLast, DateDowAny, nil)
	require.True(t, MatchDate(specific, pattern))

	notLast := CastDateTuple(2026, 2, 27, DateDowAny, nil)
	require.False(t, MatchDate(notLast, pattern))
}

func TestMatchDateRangeInclusive(t *testing.T) {
	r := DateRange{
		StartDate: CastDateTuple(2026, 1, 1, DateDowAny, nil),
		EndDate:   CastDateTuple(2026, 12, 31, DateDowAny, nil),
	}
	require.True(t, MatchDateRange(CastDateTuple(2026, 6, 15, DateDowAny, nil), r))
	require.True(t, MatchDateRange(r.StartDate, r))
	require.True(t, MatchDateRange(r.EndDate, r))
	require.False(t, MatchDateRange(CastDateTuple(2027, 1, 1, DateDowAny, nil), r))
}

func TestMatchWeekNDayLastSevenDays(t *testing.T) {
	// July 2026 has 31 days; the last 7 days are 25-31.
	w := WeekNDay{Month: DateMonthAny, WeekOfMonth: 6, DayOfWeek: DateDowAny}
	require.True(t, MatchWeekNDay(CastDateTuple(2026, 7, 25, DateDowAny, nil), w))
	require.False(t, MatchWeekNDay(CastDateTuple(2026, 7, 24, DateDowAny, nil), w))
}

func TestMatchWeekNDayNumberedRange(t *testing.T) {
	w := WeekNDay{Month: DateMonthAny, WeekOfMonth: 2, DayOfWeek: DateDowAny}
	require.True(t, MatchWeekNDay(CastDateTuple(2026, 7, 10, DateDowAny, nil), w))
	require.False(t, MatchWeekNDay(CastDateTuple(2026, 7, 20, DateDowAny, nil), w))
}

func TestDateInCalendarEntryDispatch(t *testing.T) {
	date := CastDateTuple(2026, 7, 28, 2, nil)

	exact := date
	entry := CalendarEntry{Date: &exact}
	match, err := DateInCalendarEntry(date, entry)
	require.NoError(t, err)
	require.True(t, match)
}

func TestDateInCalendarEntryNoneSelectedIsRuntimeError(t *testing.T) {
	_, err := DateInCalendarEntry(CastDateTuple(2026, 7, 28, 2, nil), CalendarEntry{})
	require.Error(t, err)
	var rte *RuntimeError
	require.ErrorAs(t, err, &rte)
}
