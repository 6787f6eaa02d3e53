package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps normalized key names to actions per scope, with the
// global scope as fallback. Scope decides which grid or overlay owns a
// keypress, so the same key can mean different things in different places.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal    = "global"
	scopeDays      = "days"
	scopeMonths    = "months"
	scopeMonthJump = "month_jump"
	scopeHelp      = "help"
)

const (
	actionQuit           Action = "quit"
	actionNavigate       Action = "navigate"
	actionSelect         Action = "select"
	actionClose          Action = "close"
	actionPrevMonth      Action = "prev_month"
	actionNextMonth      Action = "next_month"
	actionRewindYear     Action = "rewind_year"
	actionForwardYear    Action = "forward_year"
	actionToday          Action = "today"
	actionToggleGrid     Action = "toggle_grid"
	actionMonthJump      Action = "month_jump"
	actionClearSelection Action = "clear_selection"
	actionToggleRange    Action = "toggle_range"
	actionCycleWeekStart Action = "cycle_week_start"
	actionConfirm        Action = "confirm"
	actionHelp           Action = "help"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionToggleGrid, []string{"m"}, "months")
	reg(scopeGlobal, actionToday, []string{"t"}, "today")
	reg(scopeGlobal, actionHelp, []string{"?"}, "help")

	// Day grid footer: arrows/hjkl, paging, enter, esc.
	reg(scopeDays, actionNavigate, []string{"h/j/k/l", "h", "j", "k", "l", "up", "down", "left", "right"}, "move")
	reg(scopeDays, actionSelect, []string{"enter"}, "select")
	reg(scopeDays, actionPrevMonth, []string{"[", "pgup"}, "prev month")
	reg(scopeDays, actionNextMonth, []string{"]", "pgdown"}, "next month")
	reg(scopeDays, actionRewindYear, []string{"{", "shift+pgup"}, "rewind year")
	reg(scopeDays, actionForwardYear, []string{"}", "shift+pgdown"}, "ffwd year")
	reg(scopeDays, actionMonthJump, []string{"/"}, "jump")
	reg(scopeDays, actionClearSelection, []string{"u"}, "clear sel")
	reg(scopeDays, actionToggleRange, []string{"r"}, "range mode")
	reg(scopeDays, actionCycleWeekStart, []string{"w"}, "week start")
	reg(scopeDays, actionClose, []string{"esc"}, "unfocus")

	// Month grid footer.
	reg(scopeMonths, actionNavigate, []string{"h/j/k/l", "h", "j", "k", "l", "up", "down", "left", "right"}, "move")
	reg(scopeMonths, actionSelect, []string{"enter"}, "pick month")
	reg(scopeMonths, actionRewindYear, []string{"[", "{", "pgup"}, "prev year")
	reg(scopeMonths, actionForwardYear, []string{"]", "}", "pgdown"}, "next year")
	reg(scopeMonths, actionMonthJump, []string{"/"}, "jump")
	reg(scopeMonths, actionClose, []string{"esc"}, "day grid")

	// Month jump overlay: type a month name, enter to go.
	reg(scopeMonthJump, actionConfirm, []string{"enter"}, "go")
	reg(scopeMonthJump, actionClose, []string{"esc"}, "cancel")

	// Help overlay.
	reg(scopeHelp, actionClose, []string{"esc", "?"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings converts a scope's bindings into bubbles key.Binding values
// for footer help rendering.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// navVectorFromKeyName maps a movement key to grid deltas (dx, dy).
func navVectorFromKeyName(keyName string) (int, int) {
	switch keyName {
	case "l", "right":
		return 1, 0
	case "h", "left":
		return -1, 0
	case "j", "down":
		return 0, 1
	case "k", "up":
		return 0, -1
	default:
		return 0, 0
	}
}
