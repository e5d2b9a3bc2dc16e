package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors the activity shading and the timeline indicators
type Theme struct {
	Name     string
	Night    lipgloss.Color
	Awake    lipgloss.Color
	Work     lipgloss.Color
	Selected lipgloss.Color
	Scrub    lipgloss.Color
	Now      lipgloss.Color
}

// ANSI palette
const (
	ansiRed          = lipgloss.Color("1")
	ansiGreen        = lipgloss.Color("2")
	ansiYellow       = lipgloss.Color("3")
	ansiBlue         = lipgloss.Color("4")
	ansiMagenta      = lipgloss.Color("5")
	ansiCyan         = lipgloss.Color("6")
	ansiGray         = lipgloss.Color("7")
	ansiDarkGray     = lipgloss.Color("8")
	ansiLightRed     = lipgloss.Color("9")
	ansiLightGreen   = lipgloss.Color("10")
	ansiLightYellow  = lipgloss.Color("11")
	ansiLightBlue    = lipgloss.Color("12")
	ansiLightMagenta = lipgloss.Color("13")
	ansiLightCyan    = lipgloss.Color("14")
	ansiWhite        = lipgloss.Color("15")
)

// Themes in cycle order. The now line is red in every theme.
var Themes = []Theme{
	{Name: "default", Night: ansiDarkGray, Awake: ansiGray, Work: ansiMagenta, Selected: ansiYellow, Scrub: ansiMagenta, Now: ansiRed},
	{Name: "ocean", Night: ansiBlue, Awake: ansiCyan, Work: ansiLightCyan, Selected: ansiLightCyan, Scrub: ansiCyan, Now: ansiRed},
	{Name: "forest", Night: ansiGreen, Awake: ansiLightGreen, Work: ansiLightYellow, Selected: ansiLightGreen, Scrub: ansiGreen, Now: ansiRed},
	{Name: "sunset", Night: ansiRed, Awake: ansiYellow, Work: ansiLightRed, Selected: ansiLightYellow, Scrub: ansiYellow, Now: ansiRed},
	{Name: "cyberpunk", Night: ansiMagenta, Awake: ansiLightBlue, Work: ansiLightMagenta, Selected: ansiLightMagenta, Scrub: ansiLightMagenta, Now: ansiRed},
	{Name: "monochrome", Night: ansiGray, Awake: ansiWhite, Work: ansiWhite, Selected: ansiWhite, Scrub: ansiWhite, Now: ansiRed},
}

// DST marker colors
var (
	springForwardColor = ansiGreen
	fallBackColor      = ansiYellow
)

// ThemeIndex returns the position of name in Themes, or 0
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
