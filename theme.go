package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay2 lipgloss.Color = "#9399b2"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent   = colorMauve
	colorFocus    = colorLavender
	colorTodayFg  = colorPeach
	colorDisabled = colorOverlay0
	colorAdjacent = colorSurface2
	colorError    = colorRed
	colorWarning  = colorYellow
)

// colorRangeFill is the in-between-endpoints cell background: the accent
// blended most of the way toward the base so the band reads as a tint, not
// a highlight.
var colorRangeFill = blendToward(colorAccent, colorBase, 0.78)

// blendToward mixes from toward to in perceptual Luv space. t=0 keeps from,
// t=1 lands on to.
func blendToward(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		return from
	}
	return lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleNavGlyph = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleNavGlyphDisabled = lipgloss.NewStyle().
				Foreground(colorSurface1)

	styleWeekdayHeader = lipgloss.NewStyle().
				Foreground(colorOverlay1)

	styleDay = lipgloss.NewStyle().
			Foreground(colorText)

	styleDayAdjacent = lipgloss.NewStyle().
				Foreground(colorAdjacent)

	styleDayDisabled = lipgloss.NewStyle().
				Foreground(colorDisabled).
				Strikethrough(true)

	styleDayToday = lipgloss.NewStyle().
			Foreground(colorTodayFg).
			Bold(true)

	styleDaySelected = lipgloss.NewStyle().
				Foreground(colorCrust).
				Background(colorAccent).
				Bold(true)

	styleDayInRange = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorRangeFill)

	styleDayCursor = lipgloss.NewStyle().
			Foreground(colorCrust).
			Background(colorFocus).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorSubtext1)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorError)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorLavender)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorOverlay1)

	styleOverlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 2)

	stylePromptLabel = lipgloss.NewStyle().
				Foreground(colorTeal)
)

// cellStyle resolves the precedence stack for one day or month cell.
// Cursor wins over everything; selection over range fill; disabled over the
// passive states.
func cellStyle(selected, inRange, otherMonth, disabled, today, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return styleDayCursor
	case selected:
		return styleDaySelected
	case inRange:
		return styleDayInRange
	case disabled:
		return styleDayDisabled
	case today:
		return styleDayToday
	case otherMonth:
		return styleDayAdjacent
	default:
		return styleDay
	}
}
