package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcal/internal/calendar"
	"github.com/jask/jaskcal/internal/config"
	"github.com/jask/jaskcal/internal/locale"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// settleMsg lands a window transition. Seq is the generation captured when
// the timer was scheduled; the picker ignores stale ones.
type settleMsg struct {
	seq int
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	picker *calendar.Picker
	loc    *locale.Formatter
	glyphs glyphSet
	keys   *KeyRegistry
	cfg    config.Config

	width  int
	height int

	status      string
	statusIsErr bool

	monthJumpOpen  bool
	monthJumpInput string
	helpOpen       bool

	// picked accumulates selection callbacks so the final selection can be
	// printed on exit.
	picked calendar.Selection
}

func newModel(cfg config.Config) (*model, error) {
	opts, err := pickerOptions(cfg)
	if err != nil {
		return nil, err
	}

	sets, err := loadGlyphSets()
	if err != nil {
		// Parse errors fall back to the built-in sets; the app still runs.
		sets = defaultGlyphSets()
	}

	m := &model{
		loc:    locale.New(cfg.UI.Locale),
		glyphs: selectGlyphSet(sets, cfg.UI.Size),
		keys:   NewKeyRegistry(),
		cfg:    cfg,
	}
	opts.OnSelectionChange = func(s calendar.Selection) { m.picked = s }
	m.picker = calendar.New(opts)
	m.picker.Focus()
	return m, nil
}

// pickerOptions translates file configuration into engine options. Date
// strings that fail to parse are reported rather than silently dropped.
func pickerOptions(cfg config.Config) (calendar.Options, error) {
	opts := calendar.Options{
		FirstDay:         time.Weekday(cfg.UI.FirstDayOfWeek),
		RangeMode:        cfg.UI.RangeMode,
		Animate:          cfg.UI.Animate,
		ShowAdjacentDays: cfg.UI.ShowAdjacentDays,
		SettleDelay:      time.Duration(cfg.UI.SettleMs) * time.Millisecond,
	}

	if cfg.UI.MinDate != "" {
		d, err := parseConfigDate(cfg.UI.MinDate)
		if err != nil {
			return opts, fmt.Errorf("ui.min_date: %w", err)
		}
		opts.MinDate = &d
	}
	if cfg.UI.MaxDate != "" {
		d, err := parseConfigDate(cfg.UI.MaxDate)
		if err != nil {
			return opts, fmt.Errorf("ui.max_date: %w", err)
		}
		opts.MaxDate = &d
	}

	if len(cfg.UI.Disabled) > 0 {
		var set calendar.DisabledSet
		for _, entry := range cfg.UI.Disabled {
			if err := addDisabledEntry(&set, entry); err != nil {
				return opts, fmt.Errorf("ui.disabled %q: %w", entry, err)
			}
		}
		opts.Disabled = &set
	}
	return opts, nil
}

// addDisabledEntry parses a single date ("2024-03-10") or an inclusive
// range ("2024-03-20..2024-03-22") into set.
func addDisabledEntry(set *calendar.DisabledSet, entry string) error {
	entry = strings.TrimSpace(entry)
	if a, b, ok := strings.Cut(entry, ".."); ok {
		from, err := parseConfigDate(a)
		if err != nil {
			return err
		}
		to, err := parseConfigDate(b)
		if err != nil {
			return err
		}
		set.DisableRange(from, to)
		return nil
	}
	d, err := parseConfigDate(entry)
	if err != nil {
		return err
	}
	set.Disable(d)
	return nil
}

func parseConfigDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("want YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// scope returns the key scope owning the next keypress.
func (m *model) scope() string {
	switch {
	case m.helpOpen:
		return scopeHelp
	case m.monthJumpOpen:
		return scopeMonthJump
	case m.picker.Mode() == calendar.ModeMonths:
		return scopeMonths
	default:
		return scopeDays
	}
}

// isAction reports whether msg triggers action within scope (falling back
// to global bindings).
func (m *model) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	b := m.keys.Lookup(msg.String(), scope)
	return b != nil && b.Action == action
}

func (m *model) setStatus(s string) { m.status, m.statusIsErr = s, false }

func (m *model) setErrorf(format string, args ...any) {
	m.status, m.statusIsErr = fmt.Sprintf(format, args...), true
}

// scheduleSettle converts an engine settle request into a timer command.
func scheduleSettle(req calendar.SettleRequest) tea.Cmd {
	if !req.Active() {
		return nil
	}
	seq := req.Seq
	return tea.Tick(req.After, func(time.Time) tea.Msg {
		return settleMsg{seq: seq}
	})
}

func (m *model) Init() tea.Cmd {
	return nil
}
