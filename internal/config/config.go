// Package config loads jaskcal settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI UIConfig
}

// UIConfig holds picker and presentation settings.
type UIConfig struct {
	FirstDayOfWeek   int      `mapstructure:"first_day_of_week"` // 0=Sunday .. 6=Saturday
	RangeMode        bool     `mapstructure:"range_mode"`
	Animate          bool     `mapstructure:"animate"`
	ShowAdjacentDays bool     `mapstructure:"show_adjacent_days"`
	Locale           string   `mapstructure:"locale"`
	Size             string   `mapstructure:"size"` // glyph set: compact, regular, wide
	MinDate          string   `mapstructure:"min_date"`
	MaxDate          string   `mapstructure:"max_date"`
	Disabled         []string `mapstructure:"disabled"` // YYYY-MM-DD or YYYY-MM-DD..YYYY-MM-DD
	SettleMs         int      `mapstructure:"settle_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCAL_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.first_day_of_week", 0)
	v.SetDefault("ui.range_mode", false)
	v.SetDefault("ui.animate", true)
	v.SetDefault("ui.show_adjacent_days", true)
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.size", "regular")
	v.SetDefault("ui.min_date", "")
	v.SetDefault("ui.max_date", "")
	v.SetDefault("ui.disabled", []string{})
	v.SetDefault("ui.settle_ms", 400)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.FirstDayOfWeek < 0 || c.UI.FirstDayOfWeek > 6 {
		return Config{}, fmt.Errorf("ui.first_day_of_week %d out of range 0..6", c.UI.FirstDayOfWeek)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the in-app toggles (range mode, week start) so they stick
// across runs.
func Save(cfg Config) error {
	path := os.Getenv("JASKCAL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskcal", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.first_day_of_week", cfg.UI.FirstDayOfWeek)
	v.Set("ui.range_mode", cfg.UI.RangeMode)
	v.Set("ui.animate", cfg.UI.Animate)
	v.Set("ui.show_adjacent_days", cfg.UI.ShowAdjacentDays)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.size", cfg.UI.Size)
	v.Set("ui.min_date", cfg.UI.MinDate)
	v.Set("ui.max_date", cfg.UI.MaxDate)
	v.Set("ui.disabled", cfg.UI.Disabled)
	v.Set("ui.settle_ms", cfg.UI.SettleMs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
