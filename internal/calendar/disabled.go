package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// DisabledSet marks individual dates and inclusive date ranges as
// unselectable. The zero value disables nothing.
type DisabledSet struct {
	dates  []time.Time
	ranges []Bounds // inclusive here, unlike display bounds
}

// Disable adds single dates to the set.
func (s *DisabledSet) Disable(dates ...time.Time) {
	for _, d := range dates {
		s.dates = append(s.dates, datemath.Midnight(d))
	}
}

// DisableRange adds an inclusive date range to the set. Reversed endpoints
// are reordered.
func (s *DisabledSet) DisableRange(a, b time.Time) {
	s.ranges = append(s.ranges, Bounds{
		Start: datemath.MinDate(datemath.Midnight(a), datemath.Midnight(b)),
		End:   datemath.MaxDate(datemath.Midnight(a), datemath.Midnight(b)),
	})
}

// Contains reports whether d is disabled.
func (s *DisabledSet) Contains(d time.Time) bool {
	if s == nil {
		return false
	}
	for _, x := range s.dates {
		if datemath.SameDay(d, x) {
			return true
		}
	}
	for _, r := range s.ranges {
		if !datemath.Before(d, r.Start) && !datemath.After(d, r.End) {
			return true
		}
	}
	return false
}

// ContainsMonth reports whether every day of m's month is disabled, which
// is when the month cell itself becomes unselectable.
func (s *DisabledSet) ContainsMonth(m time.Time) bool {
	if s == nil || (len(s.dates) == 0 && len(s.ranges) == 0) {
		return false
	}
	d := datemath.StartOfMonth(m)
	end := datemath.EndOfMonth(m)
	for !datemath.After(d, end) {
		if !s.Contains(d) {
			return false
		}
		d = datemath.AddDays(d, 1)
	}
	return true
}

// Empty reports whether the set disables nothing.
func (s *DisabledSet) Empty() bool {
	return s == nil || (len(s.dates) == 0 && len(s.ranges) == 0)
}
