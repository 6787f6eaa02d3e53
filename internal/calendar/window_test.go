package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcal/internal/datemath"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildBoundsMarch2024SundayStart(t *testing.T) {
	// 2024-03-01 is a Friday; with a Sunday week start the window opens on
	// Sunday Feb 25 and spans exactly six weeks.
	b := BuildBounds(date(2024, time.March, 1), time.Sunday)
	require.Equal(t, date(2024, time.February, 25), b.Start)
	require.Equal(t, date(2024, time.April, 7), b.End)
}

func TestBuildBoundsWraparoundPullback(t *testing.T) {
	// 2024-09-01 is a Sunday; with a Monday week start the naive offset is
	// zero-adjacent, and the window must pull back the full six days to
	// Monday Aug 26 instead of opening on the 1st itself.
	b := BuildBounds(date(2024, time.September, 1), time.Monday)
	require.Equal(t, date(2024, time.August, 26), b.Start)
	require.Equal(t, time.Monday, b.Start.Weekday())
}

func TestBuildBoundsProperties(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(2024, time.June, 15),
		date(2024, time.December, 31),
		date(1999, time.December, 31),
		date(2025, time.March, 31),
	}
	for _, ref := range refs {
		for fd := time.Sunday; fd <= time.Saturday; fd++ {
			b := BuildBounds(ref, fd)

			require.Equal(t, fd, b.Start.Weekday(), "ref=%v fd=%v", ref, fd)
			require.Equal(t, 42, b.Days(), "ref=%v fd=%v", ref, fd)
			require.False(t, b.Start.After(datemath.StartOfMonth(ref)),
				"start must not be after the 1st (ref=%v fd=%v)", ref, fd)

			// The whole reference month lies inside [start, end).
			require.True(t, b.Contains(datemath.StartOfMonth(ref)), "ref=%v fd=%v", ref, fd)
			require.True(t, b.Contains(datemath.EndOfMonth(ref)), "ref=%v fd=%v", ref, fd)
		}
	}
}

func TestBuildBoundsDeterministic(t *testing.T) {
	a := BuildBounds(date(2024, time.March, 10), time.Monday)
	b := BuildBounds(date(2024, time.March, 25), time.Monday)
	require.True(t, a.Equal(b), "any reference in the same month builds the same window")
}

func TestBoundsContains(t *testing.T) {
	b := BuildBounds(date(2024, time.March, 1), time.Sunday)
	require.True(t, b.Contains(date(2024, time.February, 25)))
	require.True(t, b.Contains(date(2024, time.April, 6)))
	require.False(t, b.Contains(date(2024, time.April, 7)), "end is exclusive")
	require.False(t, b.Contains(date(2024, time.February, 24)))
}

func TestBoundsWeeks(t *testing.T) {
	b := BuildBounds(date(2024, time.March, 1), time.Sunday)
	require.Equal(t, 6, b.Weeks())
}
