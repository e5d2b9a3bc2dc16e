// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model for the timezone dashboard
// Author:      alltz contributors
// Created:     2025-07-18
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/internal/solar"
	"github.com/alltz-dev/alltz/internal/timeline"
	"github.com/alltz-dev/alltz/internal/zone"
	"github.com/alltz-dev/alltz/pkg/core/config"
	"github.com/alltz-dev/alltz/pkg/core/logging"
	"github.com/alltz-dev/alltz/pkg/core/version"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMain ViewState = iota
	ViewHelp
	ViewAddZone
	ViewRename
)

const (
	defaultWidth   = 80
	statusDuration = 3 * time.Second
)

// Options configures a new Model
type Options struct {
	Config     *config.Config
	ConfigPath string // empty disables saving
	Catalog    *catalog.Catalog
	Sun        solar.Provider
	Logger     *logging.Logger
	Clock      func() time.Time

	// InitialCity is added if needed and selected
	InitialCity string
	// SelectLocal selects the first zone matching the local UTC offset
	SelectLocal bool
}

// Model is the main Bubbletea model
type Model struct {
	// Dependencies
	cfg        *config.Config
	configPath string
	catalog    *catalog.Catalog
	registry   *zone.Registry
	sun        solar.Provider
	log        *logging.Logger
	clock      func() time.Time

	// State
	viewState ViewState
	width     int
	height    int
	now       time.Time
	scrub     time.Time
	following bool
	selected  int
	themeIdx  int
	hours     timeline.Hours
	tick      time.Duration

	// Components
	help    help.Model
	input   textinput.Model
	results []catalog.SearchResult
	result  int

	// Status
	statusMessage string
	statusError   bool
	statusExpiry  time.Time
}

// New creates the dashboard model from configuration
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.MustDefault()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	reg := zone.NewRegistry(cat,
		zone.WithClock(clock),
		zone.WithMergeByTime(cfg.GroupSameTimeCities),
	)
	for _, z := range cfg.Zones {
		if !reg.AddCityWithLabel(z.City, z.Label) {
			log.Warn("skipping unknown city from config", "city", z.City)
		}
	}
	if reg.Len() == 0 {
		reg = zone.NewDefaultRegistry(cat,
			zone.WithClock(clock),
			zone.WithMergeByTime(cfg.GroupSameTimeCities),
		)
	}

	hours := timeline.Hours{
		WorkStart:  cfg.Hours.WorkStart,
		WorkEnd:    cfg.Hours.WorkEnd,
		AwakeStart: cfg.Hours.AwakeStart,
		AwakeEnd:   cfg.Hours.AwakeEnd,
	}
	if !hours.Valid() {
		log.Warn("invalid hour ranges in config, using defaults", "hours", cfg.Hours)
		hours = timeline.DefaultHours()
	}

	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	now := clock()
	m := Model{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		catalog:    cat,
		registry:   reg,
		sun:        opts.Sun,
		log:        log,
		clock:      clock,
		viewState:  ViewMain,
		width:      defaultWidth,
		now:        now,
		scrub:      now,
		following:  true,
		selected:   clamp(cfg.SelectedZoneIndex, 0, reg.Len()-1),
		themeIdx:   ThemeIndex(cfg.ColorTheme),
		hours:      hours,
		tick:       cfg.General.TickInterval.Duration,
		help:       help.New(),
		input:      input,
	}
	if m.tick <= 0 {
		m.tick = time.Second
	}

	if opts.SelectLocal {
		_, offset := now.Zone()
		if i, ok := reg.IndexOfOffset(offset); ok {
			m.selected = i
		}
	}

	if opts.InitialCity != "" {
		if _, ok := reg.IndexOfCity(opts.InitialCity); !ok {
			if !reg.AddCity(opts.InitialCity) {
				m.setError(m.unknownCity(opts.InitialCity))
			}
		}
		if i, ok := reg.IndexOfCity(opts.InitialCity); ok {
			m.selected = i
		}
	}

	log.Info("dashboard initialized", "zones", reg.Len(), "selected", m.selected)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.clock()
		if m.following {
			m.scrub = m.now
		}
		if m.statusMessage != "" && !m.now.Before(m.statusExpiry) {
			m.statusMessage = ""
		}
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// handleKeyPress dispatches on the current view
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case ViewHelp:
		switch {
		case key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c":
			return m, tea.Quit
		default:
			m.viewState = ViewMain
		}
		return m, nil

	case ViewAddZone:
		return m.handleAddZoneKey(msg)

	case ViewRename:
		return m.handleRenameKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.saveConfig()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.viewState = ViewHelp

	case key.Matches(msg, keys.PrevHour):
		m.setScrub(prevHourBoundary(m.scrub))
	case key.Matches(msg, keys.NextHour):
		m.setScrub(m.scrub.Truncate(time.Hour).Add(time.Hour))
	case key.Matches(msg, keys.PrevMinute):
		m.setScrub(m.scrub.Add(-time.Minute))
	case key.Matches(msg, keys.NextMinute):
		m.setScrub(m.scrub.Add(time.Minute))
	case key.Matches(msg, keys.Back15):
		m.setScrub(m.scrub.Add(-15 * time.Minute))
	case key.Matches(msg, keys.Forward15):
		m.setScrub(m.scrub.Add(15 * time.Minute))
	case key.Matches(msg, keys.Back60):
		m.setScrub(m.scrub.Add(-time.Hour))
	case key.Matches(msg, keys.Forward60):
		m.setScrub(m.scrub.Add(time.Hour))
	case key.Matches(msg, keys.Now):
		m.scrub = m.now
		m.following = true

	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
			m.saveConfig()
		}
	case key.Matches(msg, keys.Down):
		if m.selected < m.registry.Len()-1 {
			m.selected++
			m.saveConfig()
		}

	case key.Matches(msg, keys.TimeFormat):
		if m.cfg.TwelveHour() {
			m.cfg.DisplayFormat = config.Format24h
		} else {
			m.cfg.DisplayFormat = config.Format12h
		}
		m.saveConfig()
	case key.Matches(msg, keys.NameMode):
		if m.cfg.TimezoneDisplayMode == config.DisplayFull {
			m.cfg.TimezoneDisplayMode = config.DisplayShort
		} else {
			m.cfg.TimezoneDisplayMode = config.DisplayFull
		}
		m.saveConfig()
	case key.Matches(msg, keys.Dates):
		m.cfg.ShowDate = !m.cfg.ShowDate
		m.saveConfig()
	case key.Matches(msg, keys.SunTimes):
		m.cfg.ShowSunTimes = !m.cfg.ShowSunTimes
		m.saveConfig()
	case key.Matches(msg, keys.Theme):
		m.themeIdx = (m.themeIdx + 1) % len(Themes)
		m.cfg.ColorTheme = Themes[m.themeIdx].Name
		m.setStatus("Theme: " + m.cfg.ColorTheme)
		m.saveConfig()
	case key.Matches(msg, keys.Merge):
		m.cfg.GroupSameTimeCities = !m.cfg.GroupSameTimeCities
		m.registry.SetMergeByTime(m.cfg.GroupSameTimeCities)
		m.selected = clamp(m.selected, 0, m.registry.Len()-1)
		if m.cfg.GroupSameTimeCities {
			m.setStatus("Grouping cities that share the current time")
		} else {
			m.setStatus("Showing one row per timezone")
		}
		m.saveConfig()

	case key.Matches(msg, keys.Add):
		m.viewState = ViewAddZone
		m.input.Reset()
		m.input.Placeholder = "City, code or country"
		m.input.Focus()
		m.results = nil
		m.result = 0
		return m, textinput.Blink

	case key.Matches(msg, keys.Remove):
		if m.registry.Len() <= 1 {
			m.setError("Cannot remove the last zone")
			break
		}
		if removed, ok := m.registry.Remove(m.selected); ok {
			m.log.Info("zone removed", "timezone", removed.TimezoneID)
			m.setStatus("Removed " + removed.EffectiveDisplayName(m.now, true, true))
		}
		m.selected = clamp(m.selected, 0, m.registry.Len()-1)
		m.saveConfig()

	case key.Matches(msg, keys.Rename):
		e, ok := m.registry.Entry(m.selected)
		if !ok {
			break
		}
		m.viewState = ViewRename
		m.input.Reset()
		m.input.Placeholder = "Label (empty clears)"
		m.input.SetValue(e.CustomLabel)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.ClearLabel):
		if m.registry.SetLabel(m.selected, "") {
			m.saveConfig()
		}
	}

	return m, nil
}

// handleAddZoneKey drives the search modal
func (m Model) handleAddZoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, modalKeys.Cancel):
		m.closeModal()
		return m, nil

	case key.Matches(msg, modalKeys.Confirm):
		name := strings.TrimSpace(m.input.Value())
		if len(m.results) > 0 {
			name = m.results[m.result].Label
		}
		if name != "" {
			m.addZone(name)
		}
		m.closeModal()
		return m, nil

	case key.Matches(msg, modalKeys.Up):
		if m.result > 0 {
			m.result--
		}
		return m, nil

	case key.Matches(msg, modalKeys.Down):
		if m.result < len(m.results)-1 {
			m.result++
		}
		return m, nil

	case key.Matches(msg, modalKeys.Pick) && len(m.results) > 0:
		idx := int(msg.String()[0] - '1')
		if idx < len(m.results) {
			m.addZone(m.results[idx].Label)
			m.closeModal()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = m.catalog.Search(m.input.Value())
	m.result = 0
	return m, cmd
}

// handleRenameKey drives the rename modal
func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, modalKeys.Cancel):
		m.closeModal()
		return m, nil

	case key.Matches(msg, modalKeys.Confirm):
		label := strings.TrimSpace(m.input.Value())
		if m.registry.SetLabel(m.selected, label) {
			m.saveConfig()
		}
		m.closeModal()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addZone adds a city and selects its row
func (m *Model) addZone(name string) {
	if !m.registry.AddCity(name) {
		m.setError(m.unknownCity(name))
		return
	}
	if i, ok := m.registry.IndexOfCity(name); ok {
		m.selected = i
	}
	m.log.Info("zone added", "city", name, "zones", m.registry.Len())
	m.setStatus("Added " + name)
	m.saveConfig()
}

func (m *Model) unknownCity(name string) string {
	msg := fmt.Sprintf("Unknown city %q", name)
	if s, ok := m.catalog.Suggest(name); ok {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	return msg
}

func (m *Model) closeModal() {
	m.viewState = ViewMain
	m.input.Blur()
	m.input.Reset()
	m.results = nil
	m.result = 0
}

// setScrub moves the scrub instant and stops following the clock
func (m *Model) setScrub(t time.Time) {
	m.scrub = t
	m.following = false
}

// setStatus sets a temporary status message
func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusError = false
	m.statusExpiry = m.clock().Add(statusDuration)
}

func (m *Model) setError(msg string) {
	m.setStatus(msg)
	m.statusError = true
}

// toConfig writes the current dashboard state back into the config. Every
// city of a group is stored so that groups survive a restart; the label is
// attached to the group's first city.
func (m *Model) toConfig() *config.Config {
	zones := make([]config.ZoneConfig, 0, m.registry.Len())
	for _, e := range m.registry.Entries() {
		for i, c := range e.Cities {
			z := config.ZoneConfig{City: c}
			if i == 0 {
				z.Label = e.CustomLabel
			}
			zones = append(zones, z)
		}
	}
	m.cfg.Zones = zones
	m.cfg.SelectedZoneIndex = m.selected
	return m.cfg
}

// saveConfig persists the config; failures are logged and shown, never fatal
func (m *Model) saveConfig() {
	cfg := m.toConfig()
	if m.configPath == "" {
		return
	}
	if err := cfg.Save(m.configPath); err != nil {
		m.log.Error("failed to save config", "path", m.configPath, "error", err)
		m.setError("Could not save config: " + err.Error())
	}
}

// prevHourBoundary returns the start of t's hour, or the hour before if t
// is already on a boundary.
func prevHourBoundary(t time.Time) time.Time {
	start := t.Truncate(time.Hour)
	if start.Equal(t) {
		return t.Add(-time.Hour)
	}
	return start
}

// View renders the UI
func (m Model) View() string {
	switch m.viewState {
	case ViewHelp:
		return m.renderHelp()
	case ViewAddZone:
		return m.renderAddZone()
	case ViewRename:
		return m.renderRename()
	default:
		return m.renderMain()
	}
}

// renderMain renders the header, one box per zone, legend and status
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	opts := m.rowOptions()
	for i, e := range m.registry.Entries() {
		opts.Selected = i == m.selected
		b.WriteString(renderRow(e, opts))
		b.WriteString("\n")
	}

	b.WriteString(LegendStyle.Render("▓ work  ▒ awake  ░ night  │ now  ┃ timeline  ⇈/⇊ DST  ┊ midnight"))

	if m.statusMessage != "" {
		b.WriteString("\n")
		if m.statusError {
			b.WriteString(StatusErrorStyle.Render(m.statusMessage))
		} else {
			b.WriteString(StatusStyle.Render(m.statusMessage))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) rowOptions() rowOptions {
	return rowOptions{
		Width:      m.width,
		Now:        m.now,
		Scrub:      m.scrub,
		TwelveHour: m.cfg.TwelveHour(),
		FullNames:  m.cfg.FullNames(),
		ShowAll:    m.cfg.ShowAllCitiesInGroups,
		ShowDate:   m.cfg.ShowDate,
		ShowSun:    m.cfg.ShowSunTimes,
		Hours:      m.hours,
		Theme:      Themes[m.themeIdx],
		Sun:        m.sun,
		Catalog:    m.catalog,
	}
}

// renderHeader shows the app name, local wall clock and scrub instant
func (m Model) renderHeader() string {
	twelve := m.cfg.TwelveHour()
	local := m.now.Local()

	left := TitleStyle.Render(version.String())
	mid := SubtitleStyle.Render("Local ") +
		HeaderValueStyle.Render(formatClock(local, twelve, true)+" "+local.Format("MST"))
	right := SubtitleStyle.Render("Timeline ") +
		HeaderValueStyle.Render(formatClock(m.scrub.UTC(), twelve, false)+" UTC")
	if !m.following {
		right += SubtitleStyle.Render(" (" + formatShift(m.scrub.Sub(m.now)) + ")")
	}

	line := left + "   " + mid + "   " + right
	return HeaderBoxStyle.Width(max(m.width-2, 1)).Render(line)
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	content := ModalTitleStyle.Render("Keyboard shortcuts") + "\n" + h.View(keys) +
		"\n\n" + SubtitleStyle.Render("Press any key to close")
	return ModalStyle.Render(content)
}

// renderAddZone renders the search modal with ranked results
func (m Model) renderAddZone() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Add zone"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 && strings.TrimSpace(m.input.Value()) != "" {
		b.WriteString(SubtitleStyle.Render("No matches"))
		b.WriteString("\n")
	}
	for i, r := range m.results {
		line := fmt.Sprintf("%d. %s  %s", i+1, r.Label, SubtitleStyle.Render(r.City.Timezone))
		if i == m.result {
			b.WriteString(SelectedResultStyle.Render("▸ " + line))
		} else {
			b.WriteString(ResultStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(modalKeys)))
	return ModalStyle.Render(b.String())
}

// renderRename renders the label editor
func (m Model) renderRename() string {
	name := ""
	if e, ok := m.registry.Entry(m.selected); ok {
		name = e.DisplayName(m.now, true, true)
	}
	content := ModalTitleStyle.Render("Rename "+name) + "\n" + m.input.View() + "\n" +
		HelpStyle.Render("enter save • esc cancel • empty clears the label")
	return ModalStyle.Render(content)
}

// formatShift renders a scrub offset such as "+3h15m" or "-45m"
func formatShift(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Minute)
	h := int(d / time.Hour)
	mins := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%s%dm", sign, mins)
	case mins == 0:
		return fmt.Sprintf("%s%dh", sign, h)
	default:
		return fmt.Sprintf("%s%dh%02dm", sign, h, mins)
	}
}

// Registry exposes the zone registry, mainly for tests and the CLI
func (m Model) Registry() *zone.Registry {
	return m.registry
}

// Selected returns the selected row index
func (m Model) Selected() int {
	return m.selected
}

// Scrub returns the current scrub instant
func (m Model) Scrub() time.Time {
	return m.scrub
}
