// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     config
// Description: TOML application settings with defaults and atomic save
// Author:      alltz contributors
// Created:     2025-07-16
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the default config location
const EnvConfigPath = "ALLTZ_CONFIG"

// Display formats
const (
	Format24h = "24h"
	Format12h = "12h"
)

// Timezone display modes
const (
	DisplayShort = "short"
	DisplayFull  = "full"
)

// Themes lists the color themes in cycle order
var Themes = []string{"default", "ocean", "forest", "sunset", "cyberpunk", "monochrome"}

// DefaultZones are written to a fresh config file
var DefaultZones = []string{
	"Los Angeles",
	"New York",
	"UTC",
	"London",
	"Berlin",
	"Tokyo",
	"Sydney",
}

// Config holds the complete application configuration
type Config struct {
	Zones                 []ZoneConfig  `toml:"zones"`
	SelectedZoneIndex     int           `toml:"selected_zone_index"`
	DisplayFormat         string        `toml:"display_format"`
	TimezoneDisplayMode   string        `toml:"timezone_display_mode"`
	ColorTheme            string        `toml:"color_theme"`
	ShowDate              bool          `toml:"show_date"`
	ShowSunTimes          bool          `toml:"show_sun_times"`
	GroupSameTimeCities   bool          `toml:"group_same_time_cities"`
	UseFullCityNames      bool          `toml:"use_full_city_names"`
	ShowAllCitiesInGroups bool          `toml:"show_all_cities_in_groups"`
	Hours                 HoursConfig   `toml:"hours"`
	General               GeneralConfig `toml:"general"`
}

// ZoneConfig is one configured zone. In the file it is either a plain city
// name or a table with a custom label.
type ZoneConfig struct {
	City  string `toml:"city"`
	Label string `toml:"label,omitempty"`
}

// UnmarshalTOML accepts both "Tokyo" and {city = "Tokyo", label = "HQ"}
func (z *ZoneConfig) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		z.City = v
		return nil
	case map[string]any:
		city, _ := v["city"].(string)
		if city == "" {
			city, _ = v["city_name"].(string)
		}
		if city == "" {
			return fmt.Errorf("zone entry without city: %v", v)
		}
		z.City = city
		z.Label, _ = v["label"].(string)
		if z.Label == "" {
			z.Label, _ = v["custom_label"].(string)
		}
		return nil
	default:
		return fmt.Errorf("unsupported zone entry %T", data)
	}
}

// HoursConfig holds the local hour ranges used for timeline shading
type HoursConfig struct {
	WorkStart  int `toml:"work_start"`
	WorkEnd    int `toml:"work_end"`
	AwakeStart int `toml:"awake_start"`
	AwakeEnd   int `toml:"awake_end"`
}

// GeneralConfig holds logging and runtime settings
type GeneralConfig struct {
	LogLevel     string   `toml:"log_level"`
	LogFile      string   `toml:"log_file"`
	TickInterval Duration `toml:"tick_interval"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		SelectedZoneIndex:   0,
		ShowSunTimes:        true,
		GroupSameTimeCities: true,
	}
	for _, name := range DefaultZones {
		cfg.Zones = append(cfg.Zones, ZoneConfig{City: name})
	}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns ~/.config/alltz/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "alltz", "config.toml"), nil
}

// ResolvePath picks the config path: explicit flag, then ALLTZ_CONFIG, then
// the default location.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return os.ExpandEnv(flagPath), nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return os.ExpandEnv(env), nil
	}
	return DefaultPath()
}

// Load loads configuration from a TOML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	cfg.Zones = nil
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadOrCreate loads path, writing the default configuration there first if
// the file does not exist yet. created reports whether a file was written.
func LoadOrCreate(path string) (cfg *Config, created bool, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg = Default()
		if err := cfg.Save(path); err != nil {
			return cfg, false, err
		}
		return cfg, true, nil
	}

	cfg, err = Load(path)
	if err != nil {
		return Default(), false, err
	}
	return cfg, false, nil
}

// Save writes the configuration atomically, creating the directory if needed
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// TwelveHour reports whether 12-hour clocks are configured
func (c *Config) TwelveHour() bool {
	return c.DisplayFormat == Format12h
}

// FullNames reports whether full city names are configured
func (c *Config) FullNames() bool {
	return c.TimezoneDisplayMode == DisplayFull || c.UseFullCityNames
}

// applyDefaults sets default values for missing or invalid configuration
func (c *Config) applyDefaults() {
	c.DisplayFormat = strings.ToLower(c.DisplayFormat)
	if c.DisplayFormat != Format12h {
		c.DisplayFormat = Format24h
	}

	c.TimezoneDisplayMode = strings.ToLower(c.TimezoneDisplayMode)
	if c.TimezoneDisplayMode != DisplayFull {
		c.TimezoneDisplayMode = DisplayShort
	}

	c.ColorTheme = strings.ToLower(c.ColorTheme)
	if !validTheme(c.ColorTheme) {
		c.ColorTheme = Themes[0]
	}

	if c.SelectedZoneIndex < 0 {
		c.SelectedZoneIndex = 0
	}

	if c.Hours == (HoursConfig{}) {
		c.Hours = HoursConfig{WorkStart: 8, WorkEnd: 18, AwakeStart: 6, AwakeEnd: 22}
	}

	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.TickInterval.Duration <= 0 {
		c.General.TickInterval.Duration = time.Second
	}
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
