package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMidnightStripsTimeOfDay(t *testing.T) {
	in := time.Date(2024, time.March, 5, 17, 42, 9, 12345, time.Local)
	got := Midnight(in)
	require.Equal(t, date(2024, time.March, 5), got)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"forward within month", date(2024, time.March, 10), 5, date(2024, time.March, 15)},
		{"across month end", date(2024, time.March, 30), 3, date(2024, time.April, 2)},
		{"leap day", date(2024, time.February, 28), 1, date(2024, time.February, 29)},
		{"backward across year", date(2024, time.January, 1), -1, date(2023, time.December, 31)},
		{"zero", date(2024, time.June, 6), 0, date(2024, time.June, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AddDays(tt.in, tt.n))
		})
	}
}

func TestAddMonthsNormalizesToMonthStart(t *testing.T) {
	// The classic overflow trap: one month past Jan 31 must not land in March.
	got := AddMonths(date(2024, time.January, 31), 1)
	require.Equal(t, date(2024, time.February, 1), got)

	got = AddMonths(date(2024, time.March, 31), -1)
	require.Equal(t, date(2024, time.February, 1), got)

	got = AddMonths(date(2024, time.November, 15), 3)
	require.Equal(t, date(2025, time.February, 1), got)
}

func TestAddYears(t *testing.T) {
	require.Equal(t, date(2026, time.March, 10), AddYears(date(2024, time.March, 10), 2))
	require.Equal(t, date(2025, time.March, 1), AddYears(date(2024, time.February, 29), 1))
}

func TestMonthAndYearBoundaries(t *testing.T) {
	d := date(2024, time.February, 14)
	require.Equal(t, date(2024, time.February, 1), StartOfMonth(d))
	require.Equal(t, date(2024, time.February, 29), EndOfMonth(d))
	require.Equal(t, date(2024, time.January, 1), StartOfYear(d))
	require.Equal(t, date(2024, time.December, 31), EndOfYear(d))
}

func TestDaysApart(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, time.March, 1), date(2024, time.March, 1), 0},
		{"forward", date(2024, time.February, 25), date(2024, time.April, 7), 42},
		{"backward", date(2024, time.February, 25), date(2024, time.January, 28), -28},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DaysApart(tt.a, tt.b))
			require.Equal(t, -tt.want, DaysApart(tt.b, tt.a))
		})
	}
}

func TestSameness(t *testing.T) {
	a := date(2024, time.March, 5)
	require.True(t, SameDay(a, time.Date(2024, time.March, 5, 23, 0, 0, 0, time.Local)))
	require.True(t, SameMonth(a, date(2024, time.March, 31)))
	require.False(t, SameMonth(a, date(2023, time.March, 5)))
	require.True(t, SameYear(a, date(2024, time.December, 25)))
	require.False(t, SameYear(a, date(2025, time.January, 1)))
}

func TestBetweenDates(t *testing.T) {
	min := date(2024, time.March, 1)
	max := date(2024, time.March, 31)

	require.True(t, BetweenDates(date(2024, time.March, 1), &min, &max))
	require.True(t, BetweenDates(date(2024, time.March, 31), &min, &max))
	require.False(t, BetweenDates(date(2024, time.February, 29), &min, &max))
	require.False(t, BetweenDates(date(2024, time.April, 1), &min, &max))

	// Open endpoints.
	require.True(t, BetweenDates(date(1990, time.January, 1), nil, &max))
	require.True(t, BetweenDates(date(2099, time.January, 1), &min, nil))
	require.True(t, BetweenDates(date(2099, time.January, 1), nil, nil))
}

func TestClamp(t *testing.T) {
	min := date(2024, time.March, 10)
	max := date(2024, time.March, 20)

	require.Equal(t, min, Clamp(date(2024, time.March, 1), &min, &max))
	require.Equal(t, max, Clamp(date(2024, time.April, 1), &min, &max))
	require.Equal(t, date(2024, time.March, 15), Clamp(date(2024, time.March, 15), &min, &max))
	require.Equal(t, date(2024, time.March, 15), Clamp(date(2024, time.March, 15), nil, nil))
}

func TestMinMaxDate(t *testing.T) {
	a := date(2024, time.March, 5)
	b := date(2024, time.March, 9)
	require.Equal(t, a, MinDate(a, b))
	require.Equal(t, a, MinDate(b, a))
	require.Equal(t, b, MaxDate(a, b))
	require.Equal(t, b, MaxDate(b, a))
}
