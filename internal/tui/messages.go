package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types

// tickMsg advances the wall clock
type tickMsg time.Time

// tickCmd schedules the next tick
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
