package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
	colorDateBg  = lipgloss.Color("8")
)

// Styles
var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	HeaderBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Zone row styles
	RowBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted)

	RowTitleStyle = lipgloss.NewStyle().
			Bold(true)

	SunTimesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	// Modal styles
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	ResultStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedResultStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				PaddingLeft(2)

	// Status styles
	StatusStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	LegendStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
