package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "1s", time.Second, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Zones) != len(DefaultZones) {
		t.Errorf("Zones = %d, want %d", len(cfg.Zones), len(DefaultZones))
	}
	if cfg.DisplayFormat != Format24h {
		t.Errorf("DisplayFormat = %q", cfg.DisplayFormat)
	}
	if cfg.TimezoneDisplayMode != DisplayShort {
		t.Errorf("TimezoneDisplayMode = %q", cfg.TimezoneDisplayMode)
	}
	if cfg.ColorTheme != "default" {
		t.Errorf("ColorTheme = %q", cfg.ColorTheme)
	}
	if !cfg.ShowSunTimes || !cfg.GroupSameTimeCities {
		t.Error("sun times and grouping should default to on")
	}
	if cfg.ShowDate || cfg.UseFullCityNames || cfg.ShowAllCitiesInGroups {
		t.Error("date, full names and show-all should default to off")
	}
	if cfg.General.TickInterval.Duration != time.Second {
		t.Errorf("TickInterval = %v", cfg.General.TickInterval.Duration)
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{
		DisplayFormat:       "12H",
		TimezoneDisplayMode: "weird",
		ColorTheme:          "neon",
		SelectedZoneIndex:   -3,
	}
	cfg.applyDefaults()

	if cfg.DisplayFormat != Format12h {
		t.Errorf("DisplayFormat = %q, want 12h", cfg.DisplayFormat)
	}
	if cfg.TimezoneDisplayMode != DisplayShort {
		t.Errorf("TimezoneDisplayMode = %q, want short", cfg.TimezoneDisplayMode)
	}
	if cfg.ColorTheme != "default" {
		t.Errorf("ColorTheme = %q, want default", cfg.ColorTheme)
	}
	if cfg.SelectedZoneIndex != 0 {
		t.Errorf("SelectedZoneIndex = %d", cfg.SelectedZoneIndex)
	}
	if cfg.Hours.WorkStart != 8 || cfg.Hours.AwakeEnd != 22 {
		t.Errorf("Hours = %+v", cfg.Hours)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.General.LogLevel)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
zones = ["Tokyo", { city = "London, Canada", label = "Ontario office" }]
selected_zone_index = 1
display_format = "12h"
color_theme = "ocean"
show_sun_times = false

[hours]
work_start = 9
work_end = 17
awake_start = 7
awake_end = 23

[general]
log_level = "debug"
tick_interval = "500ms"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []ZoneConfig{
		{City: "Tokyo"},
		{City: "London, Canada", Label: "Ontario office"},
	}
	if !reflect.DeepEqual(cfg.Zones, want) {
		t.Errorf("Zones = %+v, want %+v", cfg.Zones, want)
	}
	if cfg.SelectedZoneIndex != 1 {
		t.Errorf("SelectedZoneIndex = %d", cfg.SelectedZoneIndex)
	}
	if !cfg.TwelveHour() {
		t.Error("TwelveHour() = false")
	}
	if cfg.ColorTheme != "ocean" {
		t.Errorf("ColorTheme = %q", cfg.ColorTheme)
	}
	if cfg.ShowSunTimes {
		t.Error("ShowSunTimes should be false")
	}
	if !cfg.GroupSameTimeCities {
		t.Error("GroupSameTimeCities should keep its default")
	}
	if cfg.Hours.WorkStart != 9 || cfg.Hours.AwakeEnd != 23 {
		t.Errorf("Hours = %+v", cfg.Hours)
	}
	if cfg.General.TickInterval.Duration != 500*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.General.TickInterval.Duration)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("zones = [1, 2]\n"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Load() with numeric zones should fail")
	}

	broken := filepath.Join(dir, "broken.toml")
	os.WriteFile(broken, []byte("display_format = \n"), 0o644)
	if _, err := Load(broken); err == nil {
		t.Error("Load() of invalid TOML should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Zones = []ZoneConfig{{City: "Tokyo", Label: "Team"}, {City: "UTC"}}
	cfg.SelectedZoneIndex = 1
	cfg.DisplayFormat = Format12h
	cfg.ShowDate = true
	cfg.ShowSunTimes = false
	cfg.General.TickInterval = Duration{2 * time.Second}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temp file left behind?", len(entries))
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, created, err := LoadOrCreate(path)
	if err != nil || !created {
		t.Fatalf("LoadOrCreate() = created %v, err %v", created, err)
	}
	if len(cfg.Zones) != len(DefaultZones) {
		t.Errorf("Zones = %d", len(cfg.Zones))
	}

	_, created, err = LoadOrCreate(path)
	if err != nil || created {
		t.Errorf("second LoadOrCreate() = created %v, err %v", created, err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/from-env.toml")

	if got, _ := ResolvePath("/tmp/flag.toml"); got != "/tmp/flag.toml" {
		t.Errorf("flag path = %q", got)
	}
	if got, _ := ResolvePath(""); got != "/tmp/from-env.toml" {
		t.Errorf("env path = %q", got)
	}

	t.Setenv(EnvConfigPath, "")
	got, err := ResolvePath("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "config.toml" || filepath.Base(filepath.Dir(got)) != "alltz" {
		t.Errorf("default path = %q", got)
	}
}
