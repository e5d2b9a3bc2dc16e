package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard key bindings
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Add        key.Binding
	Remove     key.Binding
	Rename     key.Binding
	ClearLabel key.Binding
	TimeFormat key.Binding
	NameMode   key.Binding
	Dates      key.Binding
	SunTimes   key.Binding
	Theme      key.Binding
	Merge      key.Binding
	Now        key.Binding
	PrevHour   key.Binding
	NextHour   key.Binding
	PrevMinute key.Binding
	NextMinute key.Binding
	Back15     key.Binding
	Forward15  key.Binding
	Back60     key.Binding
	Forward60  key.Binding
	Up         key.Binding
	Down       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add zone")),
	Remove:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove zone")),
	Rename:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	ClearLabel: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "clear label")),
	TimeFormat: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "12/24h")),
	NameMode:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "short/full names")),
	Dates:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dates")),
	SunTimes:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sun times")),
	Theme:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "theme")),
	Merge:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group same time")),
	Now:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "now")),
	PrevHour:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev hour")),
	NextHour:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next hour")),
	PrevMinute: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-1 min")),
	NextMinute: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+1 min")),
	Back15:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "-15 min")),
	Forward15:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "+15 min")),
	Back60:     key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "-1 hour")),
	Forward60:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "+1 hour")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevHour, k.NextHour, k.Now, k.Add, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevHour, k.NextHour, k.PrevMinute, k.NextMinute, k.Back15, k.Forward15, k.Back60, k.Forward60, k.Now},
		{k.Up, k.Down, k.Add, k.Remove, k.Rename, k.ClearLabel, k.Merge},
		{k.TimeFormat, k.NameMode, k.Dates, k.SunTimes, k.Theme, k.Help, k.Quit},
	}
}

// modalKeyMap is shown while a text input modal is open
type modalKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
}

var modalKeys = modalKeyMap{
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
	Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
	Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "pick")),
}

// ShortHelp implements help.KeyMap
func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
