package main

import "testing"

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	jump := r.Lookup("/", scopeDays)
	if jump == nil {
		t.Fatal("expected month-jump binding in days scope")
	}
	if jump.Action != actionMonthJump {
		t.Fatalf("jump action = %q, want %q", jump.Action, actionMonthJump)
	}

	if got := r.Lookup("u", scopeMonths); got != nil {
		t.Fatalf("did not expect clear-selection binding in months scope, got %q", got.Action)
	}

	quit := r.Lookup("q", scopeDays)
	if quit == nil {
		t.Fatal("expected quit binding to fall back to the global scope")
	}
	if quit.Action != actionQuit {
		t.Fatalf("quit action = %q, want %q", quit.Action, actionQuit)
	}
}

func TestKeyRegistryScopedMeaningDiffers(t *testing.T) {
	r := NewKeyRegistry()

	days := r.Lookup("[", scopeDays)
	if days == nil || days.Action != actionPrevMonth {
		t.Fatalf("days '[' = %v, want %q", days, actionPrevMonth)
	}
	months := r.Lookup("[", scopeMonths)
	if months == nil || months.Action != actionRewindYear {
		t.Fatalf("months '[' = %v, want %q", months, actionRewindYear)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionToday, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionQuit, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionQuit, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 {
		t.Fatalf("scope_a bindings = %d, want 1", len(a))
	}
	if a[0].Action != actionToday {
		t.Fatalf("scope_a action = %q, want %q", a[0].Action, actionToday)
	}

	b := r.BindingsForScope("scope_b")
	if len(b) != 1 {
		t.Fatalf("scope_b bindings = %d, want 1", len(b))
	}
	if b[0].Action != actionQuit {
		t.Fatalf("scope_b action = %q, want %q", b[0].Action, actionQuit)
	}
}

func TestKeyRegistryHelpBindings(t *testing.T) {
	r := NewKeyRegistry()

	help := r.HelpBindings(scopeMonthJump)
	if len(help) != 2 {
		t.Fatalf("month-jump help bindings = %d, want 2", len(help))
	}
	first := help[0].Help()
	if first.Key != "enter" || first.Desc != "go" {
		t.Fatalf("first help = %q/%q, want enter/go", first.Key, first.Desc)
	}
}

func TestNormalizeKeyName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" ", "space"},
		{"Space", "space"},
		{"CTRL+C", "ctrl+c"},
		{"control+c", "ctrl+c"},
		{"Return", "enter"},
		{"G", "G"}, // single uppercase preserved
		{"g", "g"},
		{"  esc  ", "esc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeKeyName(tt.in); got != tt.want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNavVectorFromKeyName(t *testing.T) {
	tests := []struct {
		key    string
		dx, dy int
	}{
		{"h", -1, 0},
		{"l", 1, 0},
		{"j", 0, 1},
		{"k", 0, -1},
		{"left", -1, 0},
		{"right", 1, 0},
		{"down", 0, 1},
		{"up", 0, -1},
		{"x", 0, 0},
	}
	for _, tt := range tests {
		dx, dy := navVectorFromKeyName(tt.key)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("navVectorFromKeyName(%q) = (%d,%d), want (%d,%d)", tt.key, dx, dy, tt.dx, tt.dy)
		}
	}
}
