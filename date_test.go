package bacnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d := CastDateTuple(2026, 7, 28, 2, nil)
	decoded, err := DecodeDate(d.Encode(), nil)
	require.NoError(t, err)
	require.Equal(t, d, decoded)
}

func TestCastDateStringComputesDayOfWeek(t *testing.T) {
	d, err := CastDateString("2025-01-01", nil)
	require.NoError(t, err)
	require.Equal(t, 125, d.Year)
	require.Equal(t, 1, d.Month)
	require.Equal(t, 1, d.Day)
	require.Equal(t, 3, d.DayOfWeek) // Wednesday
}

func TestCastDateStringHonorsSuppliedDayOfWeek(t *testing.T) {
	d, err := CastDateString("1901-*-* mon", nil)
	require.NoError(t, err)
	require.Equal(t, 1, d.Year)
	require.Equal(t, DateMonthAny, d.Month)
	require.Equal(t, DateDayAny, d.Day)
	require.Equal(t, 1, d.DayOfWeek)
}

func TestCastDateStringWildcardYear(t *testing.T) {
	// A single-digit day keeps the two-digit-year patterns from also
	// matching, so the string has only one grouping.
	d, err := CastDateString("*-6-5", nil)
	require.NoError(t, err)
	require.Equal(t, DateYearAny, d.Year)
	require.Equal(t, 6, d.Month)
	require.Equal(t, 5, d.Day)
	require.Equal(t, DateDowAny, d.DayOfWeek)
}

func TestCastDateStringOddEvenSelectors(t *testing.T) {
	d, err := CastDateString("2026-odd-even", nil)
	require.NoError(t, err)
	require.Equal(t, DateMonthOdd, d.Month)
	require.Equal(t, DateDayEven, d.Day)
}

func TestCastDateStringAmbiguousRejected(t *testing.T) {
	// All-numeric two-digit triples match the yy-mm-dd, mm-dd-yy, and
	// dd-mm-yy patterns with three different groupings, so the parse
	// must be rejected as ambiguous.
	_, err := CastDateString("12-11-10", nil)
	require.Error(t, err)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
}

func TestDateIsSpecial(t *testing.T) {
	require.True(t, CastDateTuple(2026, DateMonthAny, 1, 1, nil).IsSpecial())
	require.False(t, CastDateTuple(2026, 1, 1, 1, nil).IsSpecial())
}

func TestDateCompareOrdering(t *testing.T) {
	a := CastDateTuple(2026, 1, 1, DateDowAny, nil)
	b := CastDateTuple(2026, 1, 2, DateDowAny, nil)
	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
}
