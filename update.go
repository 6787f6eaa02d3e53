package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcal/internal/calendar"
	"github.com/jask/jaskcal/internal/config"
	"github.com/jask/jaskcal/internal/locale"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case settleMsg:
		m.picker.Settle(msg.seq)
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			m.setErrorf("saving config: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.scope()

	// Overlays consume their keys before any global fallback so typing a
	// month name is not hijacked by single-letter bindings.
	switch scope {
	case scopeMonthJump:
		return m.handleMonthJumpKey(msg)
	case scopeHelp:
		if m.isAction(scopeHelp, actionClose, msg) || m.isAction(scopeHelp, actionHelp, msg) {
			m.helpOpen = false
		}
		return m, nil
	}

	if m.isAction(scope, actionQuit, msg) {
		return m, tea.Quit
	}
	if m.isAction(scope, actionHelp, msg) {
		m.helpOpen = true
		return m, nil
	}

	switch scope {
	case scopeDays:
		return m.handleDaysKey(msg)
	case scopeMonths:
		return m.handleMonthsKey(msg)
	}
	return m, nil
}

func (m *model) handleDaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case m.isAction(scopeDays, actionNavigate, msg):
		dx, dy := navVectorFromKeyName(normalizeKeyName(msg.String()))
		return m, scheduleSettle(m.picker.MoveCursor(dx, dy))

	case m.isAction(scopeDays, actionSelect, msg):
		req := m.picker.CommitCursor()
		m.describeSelection()
		return m, scheduleSettle(req)

	case m.isAction(scopeDays, actionPrevMonth, msg):
		if !m.picker.CanPrevMonth() {
			m.setErrorf("previous month is before the earliest allowed date")
			return m, nil
		}
		return m, scheduleSettle(m.picker.PrevMonth())

	case m.isAction(scopeDays, actionNextMonth, msg):
		if !m.picker.CanNextMonth() {
			m.setErrorf("next month is past the latest allowed date")
			return m, nil
		}
		return m, scheduleSettle(m.picker.NextMonth())

	case m.isAction(scopeDays, actionRewindYear, msg):
		return m, scheduleSettle(m.picker.PrevYear())

	case m.isAction(scopeDays, actionForwardYear, msg):
		return m, scheduleSettle(m.picker.NextYear())

	case m.isAction(scopeDays, actionToday, msg):
		return m, scheduleSettle(m.picker.Today())

	case m.isAction(scopeDays, actionToggleGrid, msg):
		m.picker.ToggleMode()
		return m, nil

	case m.isAction(scopeDays, actionMonthJump, msg):
		m.monthJumpOpen = true
		m.monthJumpInput = ""
		return m, nil

	case m.isAction(scopeDays, actionClearSelection, msg):
		m.picker.ClearSelection()
		m.setStatus("selection cleared")
		return m, nil

	case m.isAction(scopeDays, actionToggleRange, msg):
		return m, m.toggleRangeMode()

	case m.isAction(scopeDays, actionCycleWeekStart, msg):
		return m, m.cycleWeekStart()

	case m.isAction(scopeDays, actionClose, msg):
		m.picker.Blur()
		return m, nil
	}
	return m, nil
}

func (m *model) handleMonthsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case m.isAction(scopeMonths, actionNavigate, msg):
		dx, dy := navVectorFromKeyName(normalizeKeyName(msg.String()))
		return m, scheduleSettle(m.picker.MoveCursor(dx, dy))

	case m.isAction(scopeMonths, actionSelect, msg):
		return m, scheduleSettle(m.picker.CommitCursor())

	case m.isAction(scopeMonths, actionRewindYear, msg):
		return m, scheduleSettle(m.picker.PrevYear())

	case m.isAction(scopeMonths, actionForwardYear, msg):
		return m, scheduleSettle(m.picker.NextYear())

	case m.isAction(scopeMonths, actionMonthJump, msg):
		m.monthJumpOpen = true
		m.monthJumpInput = ""
		return m, nil

	case m.isAction(scopeMonths, actionClose, msg):
		m.picker.SetMode(calendar.ModeDays)
		return m, nil
	}
	return m, nil
}

func (m *model) handleMonthJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.monthJumpOpen = false
		month, ok := m.loc.MatchMonth(m.monthJumpInput)
		if !ok {
			m.setErrorf("no month matches %q", m.monthJumpInput)
			return m, nil
		}
		target := time.Date(m.picker.Reference().Year(), month, 1, 0, 0, 0, 0, time.Local)
		m.setStatus(m.loc.Format(target, locale.MonthYear))
		return m, scheduleSettle(m.picker.GoTo(target))

	case tea.KeyEsc:
		m.monthJumpOpen = false
		return m, nil

	case tea.KeyBackspace:
		if n := len(m.monthJumpInput); n > 0 {
			m.monthJumpInput = trimLastRune(m.monthJumpInput)
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.monthJumpInput += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// toggleRangeMode flips selection mode and persists it.
func (m *model) toggleRangeMode() tea.Cmd {
	on := !m.picker.RangeMode()
	m.picker.SetRangeMode(on)
	m.cfg.UI.RangeMode = on
	if on {
		m.setStatus("range selection on")
	} else {
		m.setStatus("range selection off")
	}
	return saveConfig(m.cfg)
}

// cycleWeekStart advances the first day of the week and persists it.
func (m *model) cycleWeekStart() tea.Cmd {
	next := (m.picker.FirstDay() + 1) % 7
	req := m.picker.SetFirstDay(next)
	m.cfg.UI.FirstDayOfWeek = int(next)
	m.setStatus("week starts " + m.loc.WeekdayShort(next))
	return tea.Batch(scheduleSettle(req), saveConfig(m.cfg))
}

// configSavedMsg reports the outcome of a background config write.
type configSavedMsg struct {
	err error
}

func saveConfig(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(cfg)}
	}
}

func (m *model) describeSelection() {
	sel := m.picker.Selection()
	switch {
	case sel.IsNone():
		m.setStatus("selection cleared")
	default:
		if d, ok := sel.Single(); ok {
			m.setStatus("selected " + d.Format("2006-01-02"))
		} else if lo, hi, ok := sel.Range(); ok {
			m.setStatus("selected " + lo.Format("2006-01-02") + " .. " + hi.Format("2006-01-02"))
		}
	}
}

func trimLastRune(s string) string {
	r := []rune(s)
	return string(r[:len(r)-1])
}
