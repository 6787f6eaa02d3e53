package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jask/jaskcal/internal/calendar"
	"github.com/jask/jaskcal/internal/datemath"
	"github.com/jask/jaskcal/internal/locale"
)

const monthGridColumns = 3

func (m *model) View() string {
	if m.helpOpen {
		return m.renderHelp()
	}

	var body string
	if m.picker.Mode() == calendar.ModeMonths {
		body = m.renderMonthGrid()
	} else {
		body = m.renderDayGrid()
	}

	sections := []string{m.renderNavHeader(), body}
	if m.monthJumpOpen {
		sections = append(sections, m.renderMonthJump())
	}
	sections = append(sections, m.renderStatus(), m.renderFooter())

	view := strings.Join(sections, "\n")
	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, lipgloss.Height(view), lipgloss.Center, lipgloss.Top, view)
}

// ---------------------------------------------------------------------------
// Header
// ---------------------------------------------------------------------------

// renderNavHeader draws year/month steppers around the localized title.
// Controls that would step outside the valid bounds render dimmed.
func (m *model) renderNavHeader() string {
	nav := func(glyph string, enabled bool) string {
		if enabled {
			return styleNavGlyph.Render(glyph)
		}
		return styleNavGlyphDisabled.Render(glyph)
	}

	var title string
	if m.picker.Mode() == calendar.ModeMonths {
		title = m.loc.Format(m.picker.Reference(), locale.Year)
	} else {
		title = m.loc.Format(m.picker.Reference(), locale.MonthYear)
	}

	left := nav(m.glyphs.Rewind, m.picker.CanPrevYear()) + " " + nav(m.glyphs.Prev, m.picker.CanPrevMonth())
	right := nav(m.glyphs.Next, m.picker.CanNextMonth()) + " " + nav(m.glyphs.FastForward, m.picker.CanNextYear())

	width := m.gridWidth()
	pad := width - ansi.StringWidth(left) - ansi.StringWidth(right) - ansi.StringWidth(title)
	lpad := pad / 2
	rpad := pad - lpad
	if lpad < 1 {
		lpad, rpad = 1, 1
	}
	return left + strings.Repeat(" ", lpad) + styleTitle.Render(title) + strings.Repeat(" ", rpad) + right
}

// ---------------------------------------------------------------------------
// Day grid
// ---------------------------------------------------------------------------

func (m *model) renderDayGrid() string {
	bounds := m.picker.Bounds()
	weeks := bounds.Weeks()

	lines := make([]string, 0, weeks+2)
	lines = append(lines, m.renderWeekdayHeader())

	day := bounds.Start
	for row := 0; row < weeks; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cells = append(cells, m.renderDayCell(day))
			day = datemath.AddDays(day, 1)
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", m.glyphs.Gutter)))
	}

	if slide, ok := m.picker.Slide(); ok {
		lines = append(lines, m.renderSlideIndicator(slide))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderWeekdayHeader() string {
	cells := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		w := (m.picker.FirstDay() + time.Weekday(i)) % 7
		label := m.loc.WeekdayShort(w)
		cells = append(cells, styleWeekdayHeader.Render(fitCell(label, m.glyphs.CellWidth)))
	}
	return strings.Join(cells, strings.Repeat(" ", m.glyphs.Gutter))
}

func (m *model) renderDayCell(d time.Time) string {
	info := m.picker.CellInfo(d)
	if info.OtherMonth && !m.picker.ShowAdjacentDays() && !info.Cursor {
		return strings.Repeat(" ", m.glyphs.CellWidth)
	}
	text := fmt.Sprintf("%*d", m.glyphs.CellWidth, d.Day())
	style := cellStyle(info.Selected, info.InRange, info.OtherMonth, info.Disabled, info.Today, info.Cursor)
	return style.Render(text)
}

func (m *model) renderSlideIndicator(slide calendar.Slide) string {
	glyph := m.glyphs.FastForward
	word := "forward"
	if slide.Direction == calendar.Backward {
		glyph = m.glyphs.Rewind
		word = "back"
	}
	noun := "weeks"
	if slide.Weeks == 1 {
		noun = "week"
	}
	return styleStatus.Render(fmt.Sprintf("%s sliding %d %s %s", glyph, slide.Weeks, noun, word))
}

// ---------------------------------------------------------------------------
// Month grid
// ---------------------------------------------------------------------------

func (m *model) renderMonthGrid() string {
	year := m.picker.Reference().Year()
	cellWidth := m.monthCellWidth()

	var lines []string
	for row := 0; row < 12/monthGridColumns; row++ {
		cells := make([]string, 0, monthGridColumns)
		for col := 0; col < monthGridColumns; col++ {
			month := time.Month(row*monthGridColumns + col + 1)
			first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
			info := m.picker.MonthCellInfo(first)
			label := fitCell(monthAbbrev(m.loc.MonthName(month)), cellWidth)
			style := cellStyle(info.Selected, info.InRange, false, info.Disabled, info.Today, info.Cursor)
			cells = append(cells, style.Render(label))
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", m.glyphs.Gutter+1)))
	}
	return strings.Join(lines, "\n")
}

// monthAbbrev shortens a localized month name to its leading letters.
func monthAbbrev(name string) string {
	r := []rune(name)
	if len(r) <= 3 {
		return name
	}
	return string(r[:3])
}

// ---------------------------------------------------------------------------
// Overlays and chrome
// ---------------------------------------------------------------------------

func (m *model) renderMonthJump() string {
	prompt := stylePromptLabel.Render("month: ") + m.monthJumpInput + styleDayCursor.Render(" ")
	return styleOverlayBox.Render(prompt)
}

func (m *model) renderStatus() string {
	if m.status == "" {
		return styleStatus.Render(" ")
	}
	if m.statusIsErr {
		return styleStatusError.Render(m.status)
	}
	return styleStatus.Render(m.status)
}

func (m *model) renderFooter() string {
	bindings := m.keys.HelpBindings(m.scope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, styleFooterKey.Render(help.Key)+" "+styleFooterDesc.Render(help.Desc))
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 && ansi.StringWidth(line) > m.width {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m *model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("jaskcal keys"))
	b.WriteString("\n\n")
	for _, scope := range []string{scopeDays, scopeMonths, scopeGlobal} {
		b.WriteString(styleWeekdayHeader.Render(scope))
		b.WriteString("\n")
		for _, binding := range m.keys.BindingsForScope(scope) {
			b.WriteString("  ")
			b.WriteString(styleFooterKey.Render(padCell(binding.Keys[0], 14)))
			b.WriteString(styleFooterDesc.Render(binding.Help))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styleStatus.Render(wordwrap.String(
		"Range mode pairs two clicks into a span; clicking an endpoint removes it, "+
			"clicking inside moves the nearest edge you touched last.", helpWrapWidth(m.width))))

	box := styleOverlayBox.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func helpWrapWidth(width int) int {
	if width > 10 && width < 64 {
		return width - 6
	}
	return 58
}

// ---------------------------------------------------------------------------
// Measurement helpers
// ---------------------------------------------------------------------------

func (m *model) gridWidth() int {
	if m.picker.Mode() == calendar.ModeMonths {
		return monthGridColumns*m.monthCellWidth() + (monthGridColumns-1)*(m.glyphs.Gutter+1)
	}
	return 7*m.glyphs.CellWidth + 6*m.glyphs.Gutter
}

func (m *model) monthCellWidth() int {
	w := m.glyphs.CellWidth * 2
	if w < 4 {
		w = 4
	}
	return w
}

// fitCell truncates or pads s to exactly width display columns.
func fitCell(s string, width int) string {
	if ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "")
	}
	return padCell(s, width)
}

// padCell pads s with trailing spaces to width display columns, counting
// styled text by its visible width.
func padCell(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
