package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// cursor is the roving keyboard focus within a grid. It is independent of
// the selection: moving it highlights a cell without selecting anything.
type cursor struct {
	at  time.Time
	set bool
}

func (c cursor) active() bool { return c.set }

func (c *cursor) clear() { *c = cursor{} }

func (c *cursor) place(d time.Time) {
	c.at = datemath.Midnight(d)
	c.set = true
}

// moveDays shifts the cursor by delta days, refusing moves that would
// leave the display window or the valid bounds. Returns whether it moved.
func (c *cursor) moveDays(delta int, within Bounds, min, max *time.Time) bool {
	if !c.set {
		return false
	}
	next := datemath.AddDays(c.at, delta)
	if !within.Contains(next) {
		return false
	}
	if !datemath.BetweenDates(next, min, max) {
		return false
	}
	c.at = next
	return true
}

// moveMonths shifts the cursor by delta months in the month grid. The
// caller decides whether a resulting year change retargets the reference.
func (c *cursor) moveMonths(delta int, min, max *time.Time) bool {
	if !c.set {
		return false
	}
	next := datemath.AddMonths(c.at, delta)
	if min != nil && datemath.Before(datemath.EndOfMonth(next), *min) {
		return false
	}
	if max != nil && datemath.After(next, *max) {
		return false
	}
	c.at = next
	return true
}

// seed places the cursor for a grid gaining focus: on the selection when it
// is visible in the window, else on the first enabled day of the reference
// month.
func (c *cursor) seed(sel Selection, reference time.Time, within Bounds, disabled *DisabledSet, min, max *time.Time) {
	if d, ok := sel.Single(); ok && within.Contains(d) {
		c.place(d)
		return
	}
	if start, _, ok := sel.Range(); ok && within.Contains(start) {
		c.place(start)
		return
	}
	d := datemath.StartOfMonth(reference)
	end := datemath.EndOfMonth(reference)
	for !datemath.After(d, end) {
		if !disabled.Contains(d) && datemath.BetweenDates(d, min, max) {
			c.place(d)
			return
		}
		d = datemath.AddDays(d, 1)
	}
	// Every day of the month is unusable; focus the month start anyway so
	// the grid still shows where the keyboard is.
	c.place(datemath.StartOfMonth(reference))
}
