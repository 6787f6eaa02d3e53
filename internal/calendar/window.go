package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// weeksShown is the fixed height of the day grid: five weeks always cover a
// month, and the trailing sixth week guarantees the last row is complete.
const weeksShown = 6

// Bounds is the half-open date range [Start, End) currently rendered in the
// day grid. It is always week-aligned and spans whole weeks.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Equal reports whether two bounds cover the same days.
func (b Bounds) Equal(o Bounds) bool {
	return datemath.SameDay(b.Start, o.Start) && datemath.SameDay(b.End, o.End)
}

// Contains reports whether d falls inside the half-open range.
func (b Bounds) Contains(d time.Time) bool {
	return !datemath.Before(d, b.Start) && datemath.Before(d, b.End)
}

// Days returns the number of days covered.
func (b Bounds) Days() int {
	return datemath.DaysApart(b.Start, b.End)
}

// Weeks returns the number of whole week rows covered.
func (b Bounds) Weeks() int {
	return b.Days() / 7
}

// BuildBounds computes the display window for the month holding reference.
// Start is the first of the month pulled back to the configured first
// weekday; the pullback wraps to a full 6 days when the 1st lands on the
// day just before the week start, so the leading row is never almost empty.
// End is exactly six week rows later.
func BuildBounds(reference time.Time, firstDay time.Weekday) Bounds {
	start := datemath.StartOfMonth(reference)
	back := int(start.Weekday()) - int(firstDay)
	if back < 0 {
		back += 7
	}
	start = datemath.AddDays(start, -back)
	return Bounds{
		Start: start,
		End:   datemath.AddDays(start, weeksShown*7),
	}
}
