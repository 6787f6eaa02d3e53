// Package calendar implements the date-picker engine: the visible-window
// state machine, selection resolution, and cursor movement. It is pure and
// synchronous; the only deferred work is the settle step of a window
// transition, which is surfaced to the caller as a SettleRequest to
// schedule however the host event loop schedules things.
package calendar

import (
	"time"

	"github.com/jask/jaskcal/internal/datemath"
)

// Mode selects which grid is shown.
type Mode int

const (
	ModeDays Mode = iota
	ModeMonths
)

// SettleRequest asks the host to call Settle(Seq) after After elapses.
// The zero value means nothing to schedule.
type SettleRequest struct {
	After time.Duration
	Seq   int
}

// Active reports whether a timer must be scheduled.
func (r SettleRequest) Active() bool { return r.After > 0 }

// Options configures a Picker. The zero value is usable: week starts
// Sunday, single-date selection, animation on, reference = today.
type Options struct {
	FirstDay         time.Weekday
	RangeMode        bool
	Animate          bool
	ShowAdjacentDays bool
	MinDate          *time.Time
	MaxDate          *time.Time
	Disabled         *DisabledSet
	SettleDelay      time.Duration
	Reference        time.Time

	OnSelectionChange func(Selection)
	OnReferenceChange func(time.Time)
}

// Picker is the date-picker engine. All methods are synchronous; callbacks
// fire before the triggering method returns and must not call back into
// the Picker within the same event.
type Picker struct {
	firstDay    time.Weekday
	rangeMode   bool
	animate     bool
	adjacent    bool
	min, max    *time.Time
	disabled    *DisabledSet
	settleDelay time.Duration

	onSelection func(Selection)
	onReference func(time.Time)

	reference time.Time
	window    Window
	sel       Selection
	last      time.Time // most recent clicked date; zero before any click
	cur       cursor
	mode      Mode
}

// New builds a Picker. Reversed min/max bounds are swapped rather than
// rejected, and the reference is clamped into them.
func New(opts Options) *Picker {
	min, max := opts.MinDate, opts.MaxDate
	if min != nil && max != nil && datemath.After(*min, *max) {
		min, max = max, min
	}
	ref := opts.Reference
	if ref.IsZero() {
		ref = time.Now()
	}
	ref = datemath.Clamp(ref, min, max)

	delay := opts.SettleDelay
	if delay <= 0 {
		delay = SettleDelayDefault
	}

	p := &Picker{
		firstDay:    opts.FirstDay,
		rangeMode:   opts.RangeMode,
		animate:     opts.Animate,
		adjacent:    opts.ShowAdjacentDays,
		min:         min,
		max:         max,
		disabled:    opts.Disabled,
		settleDelay: delay,
		onSelection: opts.OnSelectionChange,
		onReference: opts.OnReferenceChange,
		reference:   ref,
		mode:        ModeDays,
	}
	p.window = NewWindow(BuildBounds(p.reference, p.firstDay))
	return p
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

// Reference returns the date anchoring which month is shown.
func (p *Picker) Reference() time.Time { return p.reference }

// Bounds returns the currently rendered window, widened during animation.
func (p *Picker) Bounds() Bounds { return p.window.Bounds }

// Target returns the window being animated toward, if any.
func (p *Picker) Target() (Bounds, bool) {
	if p.window.Target == nil {
		return Bounds{}, false
	}
	return *p.window.Target, true
}

// Slide returns the in-flight animation directive, if any.
func (p *Picker) Slide() (Slide, bool) {
	if p.window.Slide == nil {
		return Slide{}, false
	}
	return *p.window.Slide, true
}

// Animating reports whether a window transition is in flight.
func (p *Picker) Animating() bool { return p.window.Animating() }

// Selection returns the canonical selection value.
func (p *Picker) Selection() Selection { return p.sel }

// Mode returns the active grid.
func (p *Picker) Mode() Mode { return p.mode }

// RangeMode reports whether clicks build two-endpoint ranges.
func (p *Picker) RangeMode() bool { return p.rangeMode }

// FirstDay returns the configured first day of the week.
func (p *Picker) FirstDay() time.Weekday { return p.firstDay }

// ShowAdjacentDays reports whether other-month cells render their day
// numbers.
func (p *Picker) ShowAdjacentDays() bool { return p.adjacent }

// Cursor returns the active cursor position, when one is set.
func (p *Picker) Cursor() (time.Time, bool) {
	if !p.cur.active() {
		return time.Time{}, false
	}
	return p.cur.at, true
}

// CellInfo is per-day-cell metadata for the presentation layer.
type CellInfo struct {
	Selected   bool
	InRange    bool
	OtherMonth bool
	Disabled   bool
	Today      bool
	Cursor     bool
}

// CellInfo describes d for rendering within the current window.
func (p *Picker) CellInfo(d time.Time) CellInfo {
	m := p.sel.ContainsDate(d)
	return CellInfo{
		Selected:   m == Selected,
		InRange:    m == InRange,
		OtherMonth: !datemath.SameMonth(d, p.reference),
		Disabled:   p.disabled.Contains(d) || !datemath.BetweenDates(d, p.min, p.max),
		Today:      datemath.SameDay(d, time.Now()),
		Cursor:     p.cur.active() && datemath.SameDay(d, p.cur.at),
	}
}

// MonthCellInfo describes the month holding m for the month grid.
func (p *Picker) MonthCellInfo(m time.Time) CellInfo {
	mem := p.sel.ContainsMonth(m)
	return CellInfo{
		Selected: mem == Selected,
		InRange:  mem == InRange,
		Disabled: p.disabled.ContainsMonth(m) || !p.monthInBounds(m),
		Today:    datemath.SameMonth(m, time.Now()),
		Cursor:   p.cur.active() && datemath.SameMonth(m, p.cur.at),
	}
}

func (p *Picker) monthInBounds(m time.Time) bool {
	if p.min != nil && datemath.Before(datemath.EndOfMonth(m), *p.min) {
		return false
	}
	if p.max != nil && datemath.After(datemath.StartOfMonth(m), *p.max) {
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Reference navigation
// ---------------------------------------------------------------------------

// CanPrevMonth reports whether the previous-month control is enabled.
func (p *Picker) CanPrevMonth() bool {
	return p.monthInBounds(datemath.AddMonths(p.reference, -1))
}

// CanNextMonth reports whether the next-month control is enabled.
func (p *Picker) CanNextMonth() bool {
	return p.monthInBounds(datemath.AddMonths(p.reference, 1))
}

// CanPrevYear reports whether the rewind control is enabled.
func (p *Picker) CanPrevYear() bool {
	return p.monthInBounds(datemath.AddMonths(p.reference, -12))
}

// CanNextYear reports whether the fast-forward control is enabled.
func (p *Picker) CanNextYear() bool {
	return p.monthInBounds(datemath.AddMonths(p.reference, 12))
}

// PrevMonth moves the reference back one month.
func (p *Picker) PrevMonth() SettleRequest {
	if !p.CanPrevMonth() {
		return SettleRequest{}
	}
	return p.setReference(datemath.AddMonths(p.reference, -1))
}

// NextMonth moves the reference forward one month.
func (p *Picker) NextMonth() SettleRequest {
	if !p.CanNextMonth() {
		return SettleRequest{}
	}
	return p.setReference(datemath.AddMonths(p.reference, 1))
}

// PrevYear rewinds the reference one year.
func (p *Picker) PrevYear() SettleRequest {
	if !p.CanPrevYear() {
		return SettleRequest{}
	}
	return p.setReference(datemath.AddMonths(p.reference, -12))
}

// NextYear fast-forwards the reference one year.
func (p *Picker) NextYear() SettleRequest {
	if !p.CanNextYear() {
		return SettleRequest{}
	}
	return p.setReference(datemath.AddMonths(p.reference, 12))
}

// Today recenters on the current month.
func (p *Picker) Today() SettleRequest {
	return p.GoTo(time.Now())
}

// GoTo recenters on the month holding d, clamped into the valid bounds.
func (p *Picker) GoTo(d time.Time) SettleRequest {
	return p.setReference(datemath.Clamp(d, p.min, p.max))
}

// SetFirstDay reconfigures the first day of the week and realigns the
// window, animating the shift like any other retarget.
func (p *Picker) SetFirstDay(w time.Weekday) SettleRequest {
	if w == p.firstDay {
		return SettleRequest{}
	}
	p.firstDay = w
	return p.retarget()
}

// SetAnimate toggles window-transition animation.
func (p *Picker) SetAnimate(on bool) { p.animate = on }

// SetRangeMode switches between single-date and range selection. The
// current selection is left as-is; the next click resolves under the new
// mode.
func (p *Picker) SetRangeMode(on bool) { p.rangeMode = on }

func (p *Picker) setReference(d time.Time) SettleRequest {
	d = datemath.Midnight(d)
	if datemath.SameMonth(d, p.reference) && datemath.SameDay(d, p.reference) {
		return SettleRequest{}
	}
	p.reference = d
	if p.onReference != nil {
		p.onReference(d)
	}
	return p.retarget()
}

func (p *Picker) retarget() SettleRequest {
	next := BuildBounds(p.reference, p.firstDay)
	var settle bool
	p.window, settle = p.window.Retarget(next, p.animate)
	if !settle {
		return SettleRequest{}
	}
	return SettleRequest{After: p.settleDelay, Seq: p.window.Seq()}
}

// Settle completes the transition scheduled under seq; stale seqs are
// ignored.
func (p *Picker) Settle(seq int) {
	p.window = p.window.Settle(seq)
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

// Select resolves a click on d into the next selection. Clicks on disabled
// or out-of-bounds dates are no-ops.
func (p *Picker) Select(d time.Time) {
	d = datemath.Midnight(d)
	if p.disabled.Contains(d) || !datemath.BetweenDates(d, p.min, p.max) {
		return
	}
	p.sel = resolve(d, p.sel, p.rangeMode, p.last)
	p.last = d
	p.cur.place(d)
	if p.onSelection != nil {
		p.onSelection(p.sel)
	}
}

// SetSelection installs an externally supplied selection value.
func (p *Picker) SetSelection(s Selection) {
	p.sel = s
	p.last = time.Time{}
}

// ClearSelection drops the selection and click history.
func (p *Picker) ClearSelection() {
	if p.sel.IsNone() {
		return
	}
	p.sel = NoSelection()
	p.last = time.Time{}
	if p.onSelection != nil {
		p.onSelection(p.sel)
	}
}

// SelectMonth picks a month from the month grid: the reference moves there
// and the picker returns to the day grid.
func (p *Picker) SelectMonth(m time.Time) SettleRequest {
	if p.disabled.ContainsMonth(m) || !p.monthInBounds(m) {
		return SettleRequest{}
	}
	p.mode = ModeDays
	req := p.setReference(datemath.StartOfMonth(m))
	p.cur.place(datemath.Clamp(datemath.StartOfMonth(m), p.min, p.max))
	return req
}

// ---------------------------------------------------------------------------
// Mode and focus
// ---------------------------------------------------------------------------

// SetMode switches grids. Entering the month grid re-seats the cursor on
// the referenced month.
func (p *Picker) SetMode(m Mode) {
	if m == p.mode {
		return
	}
	p.mode = m
	if p.cur.active() {
		if m == ModeMonths {
			p.cur.place(datemath.StartOfMonth(p.reference))
		} else {
			p.seedCursor()
		}
	}
}

// ToggleMode flips between the day and month grids.
func (p *Picker) ToggleMode() {
	if p.mode == ModeDays {
		p.SetMode(ModeMonths)
	} else {
		p.SetMode(ModeDays)
	}
}

// Focus activates the cursor, seeding it from the selection when visible.
func (p *Picker) Focus() {
	if p.cur.active() {
		return
	}
	if p.mode == ModeMonths {
		p.cur.place(datemath.StartOfMonth(p.reference))
		return
	}
	p.seedCursor()
}

// Blur deactivates the cursor without touching the selection.
func (p *Picker) Blur() {
	p.cur.clear()
}

// Focused reports whether the cursor is active.
func (p *Picker) Focused() bool { return p.cur.active() }

func (p *Picker) seedCursor() {
	p.cur.seed(p.sel, p.reference, p.window.TargetOrBounds(), p.disabled, p.min, p.max)
}

// ---------------------------------------------------------------------------
// Cursor movement
// ---------------------------------------------------------------------------

// MoveCursor shifts the cursor by grid deltas: dx columns, dy rows. In the
// day grid a row is a week; in the month grid a row is three months. Only
// month-grid moves that land in a different year retarget the reference.
func (p *Picker) MoveCursor(dx, dy int) SettleRequest {
	if !p.cur.active() {
		p.Focus()
		return SettleRequest{}
	}
	if p.mode == ModeDays {
		p.cur.moveDays(dx+dy*7, p.window.TargetOrBounds(), p.min, p.max)
		return SettleRequest{}
	}
	if !p.cur.moveMonths(dx+dy*3, p.min, p.max) {
		return SettleRequest{}
	}
	if !datemath.SameYear(p.cur.at, p.reference) {
		return p.setReference(datemath.StartOfMonth(p.cur.at))
	}
	return SettleRequest{}
}

// CommitCursor selects the cell under the cursor: a date in the day grid,
// a month in the month grid.
func (p *Picker) CommitCursor() SettleRequest {
	if !p.cur.active() {
		return SettleRequest{}
	}
	if p.mode == ModeMonths {
		return p.SelectMonth(p.cur.at)
	}
	p.Select(p.cur.at)
	return SettleRequest{}
}
