// Package datemath provides pure calendar arithmetic on local dates.
//
// Every function treats its inputs as calendar dates: times are normalized
// to midnight in the date's location and time-of-day never influences a
// result. Month- and year-level arithmetic operates on month starts so
// day-of-month overflow (e.g. Jan 31 minus one month) cannot corrupt the
// day component.
package datemath

import "time"

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n whole days. Negative n subtracts.
func AddDays(t time.Time, n int) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), d.Month(), d.Day()+n, 0, 0, 0, 0, d.Location())
}

// AddMonths returns the start of the month n months away from t's month.
// The day component is deliberately discarded; callers that want "same day
// next month" must re-apply the day themselves after checking overflow.
func AddMonths(t time.Time, n int) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, d.Location())
}

// AddYears returns t shifted by n years, keeping month and day.
// Feb 29 lands on Mar 1 in non-leap years, per time.Date normalization.
func AddYears(t time.Time, n int) time.Time {
	d := Midnight(t)
	return time.Date(d.Year()+n, d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location())
}

// StartOfYear returns January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
}

// EndOfYear returns December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	d := Midnight(t)
	return time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, d.Location())
}

// DaysApart returns the signed whole-day count from a to b: positive when
// b is after a. DST shifts do not affect the count because both endpoints
// are midnight-normalized before differencing.
func DaysApart(a, b time.Time) int {
	am := Midnight(a)
	bm := Midnight(b)
	// Round to absorb the ±1h a DST boundary can introduce.
	return int(bm.Sub(am).Round(24*time.Hour) / (24 * time.Hour))
}

// SameDay reports whether a and b are the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameYear reports whether a and b fall in the same year.
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// Before reports whether a is on an earlier calendar day than b.
func Before(a, b time.Time) bool {
	return Midnight(a).Before(Midnight(b))
}

// After reports whether a is on a later calendar day than b.
func After(a, b time.Time) bool {
	return Midnight(a).After(Midnight(b))
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if Before(b, a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if After(b, a) {
		return b
	}
	return a
}

// BetweenDates reports whether d lies inside the inclusive [min, max]
// range. A nil endpoint leaves that side open.
func BetweenDates(d time.Time, min, max *time.Time) bool {
	if min != nil && Before(d, *min) {
		return false
	}
	if max != nil && After(d, *max) {
		return false
	}
	return true
}

// Clamp pins d into the inclusive [min, max] range. Nil endpoints are open.
func Clamp(d time.Time, min, max *time.Time) time.Time {
	out := Midnight(d)
	if min != nil && Before(out, *min) {
		out = Midnight(*min)
	}
	if max != nil && After(out, *max) {
		out = Midnight(*max)
	}
	return out
}
