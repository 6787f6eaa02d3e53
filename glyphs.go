package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Glyph set configuration (TOML-based)
// ---------------------------------------------------------------------------

// glyphSet defines the decorative characters for one display size.
type glyphSet struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Prev        string `toml:"prev"`
	Next        string `toml:"next"`
	Rewind      string `toml:"rewind"`
	FastForward string `toml:"fast_forward"`
	CellWidth   int    `toml:"cell_width"`
	Gutter      int    `toml:"gutter"` // spaces between day columns
}

// glyphsFile is the top-level TOML structure.
type glyphsFile struct {
	GlyphSet []glyphSet `toml:"glyphset"`
}

const defaultGlyphsTOML = `# Jaskcal glyph set definitions
# Each [[glyphset]] names a display size selectable via ui.size in config.toml.

[[glyphset]]
name = "compact"
description = "two-column day cells, ASCII arrows"
prev = "<"
next = ">"
rewind = "<<"
fast_forward = ">>"
cell_width = 2
gutter = 1

[[glyphset]]
name = "regular"
description = "default look"
prev = "‹"
next = "›"
rewind = "«"
fast_forward = "»"
cell_width = 3
gutter = 1

[[glyphset]]
name = "wide"
description = "roomy cells for large terminals"
prev = "◀"
next = "▶"
rewind = "⏪"
fast_forward = "⏩"
cell_width = 4
gutter = 2
`

// glyphsDir returns the directory for jaskcal config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func glyphsDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "jaskcal"), nil
}

// glyphsPath returns the full path to the glyphs.toml file.
func glyphsPath() (string, error) {
	dir, err := glyphsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "glyphs.toml"), nil
}

// loadGlyphSets loads glyph set definitions from the config file.
// If the file doesn't exist, it is created with the built-in defaults.
func loadGlyphSets() ([]glyphSet, error) {
	path, err := glyphsPath()
	if err != nil {
		return defaultGlyphSets(), err
	}

	// Create config file with defaults if missing
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return defaultGlyphSets(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultGlyphsTOML), 0644); wErr != nil {
			return defaultGlyphSets(), fmt.Errorf("write default glyphs: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultGlyphSets(), fmt.Errorf("read glyphs: %w", err)
	}
	sets, parseErr := parseGlyphSets(data)
	if parseErr != nil {
		return defaultGlyphSets(), parseErr
	}
	return sets, nil
}

// parseGlyphSets parses TOML bytes into glyph set definitions.
func parseGlyphSets(data []byte) ([]glyphSet, error) {
	var cfg glyphsFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse glyphs.toml: %w", err)
	}
	if len(cfg.GlyphSet) == 0 {
		return nil, fmt.Errorf("no glyph sets defined in config")
	}
	for i, g := range cfg.GlyphSet {
		if g.Name == "" {
			return nil, fmt.Errorf("glyphset[%d]: name is required", i)
		}
		if g.CellWidth < 2 || g.CellWidth > 6 {
			return nil, fmt.Errorf("glyphset[%d] %q: cell_width %d out of range 2..6", i, g.Name, g.CellWidth)
		}
	}
	return cfg.GlyphSet, nil
}

func defaultGlyphSets() []glyphSet {
	sets, err := parseGlyphSets([]byte(defaultGlyphsTOML))
	if err != nil {
		panic("built-in glyph TOML must parse: " + err.Error())
	}
	return sets
}

// selectGlyphSet picks the set named by size, falling back to "regular" and
// then to the first defined set.
func selectGlyphSet(sets []glyphSet, size string) glyphSet {
	size = strings.ToLower(strings.TrimSpace(size))
	for _, g := range sets {
		if strings.ToLower(g.Name) == size {
			return g
		}
	}
	for _, g := range sets {
		if strings.ToLower(g.Name) == "regular" {
			return g
		}
	}
	return sets[0]
}
