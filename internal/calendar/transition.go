package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// Direction of an in-flight window slide.
type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Slide describes the visual transition the presentation layer should
// animate: which way the window is moving and by how many week rows.
type Slide struct {
	Direction Direction
	Weeks     int
}

// animationGuardDays caps how far a window may shift and still animate.
// Year-scale jumps (rewind/fast-forward) would otherwise slide through an
// absurd number of intermediate weeks.
const animationGuardDays = 366

// Window is the transition state machine for the visible date range.
//
// At rest, Bounds holds exactly the built display window and Target/Slide
// are nil. While a transition is in flight, Bounds is widened to the union
// of the old and new windows (so no rendered day unmounts mid-animation),
// Target holds the window being animated toward, and Slide describes the
// motion. Settle collapses Bounds to Target.
type Window struct {
	Bounds Bounds
	Target *Bounds
	Slide  *Slide

	// seq is bumped on every retarget; a settle carrying a stale seq is
	// ignored, which is how a superseded timer is cancelled.
	seq int
}

// NewWindow returns a window at rest over b.
func NewWindow(b Bounds) Window {
	return Window{Bounds: b}
}

// Animating reports whether a transition is in flight.
func (w Window) Animating() bool {
	return w.Target != nil
}

// Seq returns the current settle generation. The value scheduled alongside
// a settle timer must be passed back to Settle verbatim.
func (w Window) Seq() int {
	return w.seq
}

// Retarget points the window at next. It returns the updated window and
// whether the caller must schedule a settle timer. Calling it again with a
// window equal to the current bounds is a no-op.
func (w Window) Retarget(next Bounds, animate bool) (Window, bool) {
	if next.Equal(w.Bounds) && w.Target == nil {
		return w, false
	}

	shift := datemath.DaysApart(w.Bounds.Start, next.Start)
	if shift < 0 {
		shift = -shift
	}
	if !animate || shift > animationGuardDays {
		return w.snap(next), false
	}

	switch {
	case datemath.Before(next.Start, w.Bounds.Start):
		weeks := datemath.DaysApart(next.Start, w.Bounds.Start) / 7
		w.Bounds = Bounds{Start: next.Start, End: w.Bounds.End}
		w.Target = &next
		w.Slide = &Slide{Direction: Backward, Weeks: weeks}
		w.seq++
		return w, true
	case datemath.After(next.End, w.Bounds.End):
		weeks := datemath.DaysApart(w.Bounds.End, next.End) / 7
		w.Bounds = Bounds{Start: w.Bounds.Start, End: next.End}
		w.Target = &next
		w.Slide = &Slide{Direction: Forward, Weeks: weeks}
		w.seq++
		return w, true
	default:
		// next lies inside the current (possibly widened) bounds; there is
		// nothing to slide through, so land directly.
		return w.snap(next), false
	}
}

func (w Window) snap(next Bounds) Window {
	w.Bounds = next
	w.Target = nil
	w.Slide = nil
	return w
}

// Settle completes the transition scheduled under seq. A stale seq means a
// newer retarget superseded this timer; the call is then a no-op.
func (w Window) Settle(seq int) Window {
	if w.Target == nil || seq != w.seq {
		return w
	}
	w.Bounds = *w.Target
	w.Target = nil
	w.Slide = nil
	return w
}

// TargetOrBounds returns the window the display is headed for: the target
// while animating, the settled bounds otherwise.
func (w Window) TargetOrBounds() Bounds {
	if w.Target != nil {
		return *w.Target
	}
	return w.Bounds
}

// SettleDelayDefault is the empirically comfortable settle delay.
const SettleDelayDefault = 400 * time.Millisecond
