package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// Membership classifies a date relative to the current selection.
type Membership int

const (
	NotSelected Membership = iota
	// InRange marks a date strictly between two range endpoints.
	InRange
	// Selected marks the single selected date or a range endpoint.
	Selected
)

type selectionKind int

const (
	selNone selectionKind = iota
	selSingle
	selRange
)

// Selection is the canonical selection value: nothing, one date, or one
// contiguous inclusive date range. Exactly one variant is populated.
type Selection struct {
	kind  selectionKind
	start time.Time
	end   time.Time
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// SingleDate returns a selection of exactly one date.
func SingleDate(d time.Time) Selection {
	return Selection{kind: selSingle, start: datemath.Midnight(d)}
}

// DateRange returns a range selection. Endpoints supplied out of order are
// reordered rather than rejected, so externally built values are always
// safe to hand in.
func DateRange(a, b time.Time) Selection {
	lo := datemath.MinDate(datemath.Midnight(a), datemath.Midnight(b))
	hi := datemath.MaxDate(datemath.Midnight(a), datemath.Midnight(b))
	return Selection{kind: selRange, start: lo, end: hi}
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return s.kind == selNone }

// Single returns the selected date when exactly one date is selected.
func (s Selection) Single() (time.Time, bool) {
	if s.kind != selSingle {
		return time.Time{}, false
	}
	return s.start, true
}

// Range returns the selected range endpoints, start <= end.
func (s Selection) Range() (start, end time.Time, ok bool) {
	if s.kind != selRange {
		return time.Time{}, time.Time{}, false
	}
	return s.start, s.end, true
}

// ContainsDate classifies d against the selection for day-grid rendering.
func (s Selection) ContainsDate(d time.Time) Membership {
	switch s.kind {
	case selSingle:
		if datemath.SameDay(d, s.start) {
			return Selected
		}
	case selRange:
		if datemath.SameDay(d, s.start) || datemath.SameDay(d, s.end) {
			return Selected
		}
		if datemath.After(d, s.start) && datemath.Before(d, s.end) {
			return InRange
		}
	}
	return NotSelected
}

// ContainsMonth is the month-grid analog of ContainsDate: a month counts as
// an endpoint when it holds one, and as interior when it lies strictly
// between the endpoint months.
func (s Selection) ContainsMonth(m time.Time) Membership {
	switch s.kind {
	case selSingle:
		if datemath.SameMonth(m, s.start) {
			return Selected
		}
	case selRange:
		if datemath.SameMonth(m, s.start) || datemath.SameMonth(m, s.end) {
			return Selected
		}
		ms := datemath.StartOfMonth(m)
		if ms.After(datemath.StartOfMonth(s.start)) && ms.Before(datemath.StartOfMonth(s.end)) {
			return InRange
		}
	}
	return NotSelected
}

// resolve computes the next selection after a click. last is the most
// recently clicked date (zero when there has been no prior click); it, not
// absolute distance, decides which endpoint of an existing range a click
// adjusts, so the user can drag whichever end they touched last.
func resolve(clicked time.Time, cur Selection, rangeMode bool, last time.Time) Selection {
	clicked = datemath.Midnight(clicked)

	if !rangeMode {
		return SingleDate(clicked)
	}

	switch cur.kind {
	case selNone:
		return SingleDate(clicked)

	case selSingle:
		if datemath.SameDay(clicked, cur.start) {
			// Second click on the pending first endpoint cancels it.
			return NoSelection()
		}
		return DateRange(cur.start, clicked)

	default: // selRange
		lo, hi := cur.start, cur.end
		switch {
		case datemath.SameDay(clicked, lo):
			return SingleDate(hi)
		case datemath.SameDay(clicked, hi):
			return SingleDate(lo)
		case !last.IsZero() && datemath.SameDay(clicked, last):
			// Interior re-click: adjust the endpoint on the side last is not.
			if datemath.After(last, lo) {
				return DateRange(lo, clicked)
			}
			return DateRange(clicked, hi)
		case !last.IsZero() && datemath.Before(clicked, last):
			if datemath.Before(clicked, lo) {
				return DateRange(clicked, hi)
			}
			return DateRange(lo, clicked)
		case !last.IsZero() && datemath.After(clicked, last):
			if datemath.After(clicked, hi) {
				return DateRange(lo, clicked)
			}
			return DateRange(clicked, hi)
		default:
			// No interaction history: fall back to nearer-endpoint adjustment.
			if datemath.Before(clicked, lo) {
				return DateRange(clicked, hi)
			}
			return DateRange(lo, clicked)
		}
	}
}
