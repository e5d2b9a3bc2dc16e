package tui

import (
	"strings"
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/internal/solar"
	"github.com/alltz-dev/alltz/internal/timeline"
	"github.com/alltz-dev/alltz/internal/zone"
	"github.com/charmbracelet/lipgloss"
)

// rowOptions carries everything a zone row needs besides the entry itself
type rowOptions struct {
	Width      int
	Now        time.Time
	Scrub      time.Time
	Selected   bool
	TwelveHour bool
	FullNames  bool
	ShowAll    bool
	ShowDate   bool
	ShowSun    bool
	Hours      timeline.Hours
	Theme      Theme
	Sun        solar.Provider
	Catalog    *catalog.Catalog
}

// cell is one column of the timeline bar
type cell struct {
	r  rune
	fg lipgloss.Color
	bg lipgloss.Color
}

// renderRow draws a bordered zone box: title line, timeline bar and the
// scrubbed local time under the scrub column.
func renderRow(e zone.Entry, o rowOptions) string {
	inner := o.Width - 2
	if inner < 1 {
		inner = 1
	}

	title := rowTitle(e, o)
	if o.ShowSun {
		if sun := rowSunTimes(e, o); sun != "" {
			title = spread(title, SunTimesStyle.Render(sun), inner)
		}
	}

	w := timeline.NewWindow(o.Scrub, inner)
	lines := []string{
		lipgloss.NewStyle().MaxWidth(inner).Render(title),
	}
	if w.Renderable() {
		lines = append(lines, renderCells(timelineCells(e, w, o)))
		lines = append(lines, scrubLabel(e, w, o))
	}

	border := RowBoxStyle
	if o.Selected {
		border = border.BorderForeground(o.Theme.Selected)
	}
	return border.Width(inner).Render(strings.Join(lines, "\n"))
}

// rowTitle is the effective name plus the current offset. Full mode adds the
// city list next to a custom label.
func rowTitle(e zone.Entry, o rowOptions) string {
	offset := e.OffsetString(o.Now)
	name := e.EffectiveDisplayName(o.Now, o.FullNames, o.ShowAll)
	if o.FullNames && e.CustomLabel != "" {
		name = e.CustomLabel + " (" + e.DisplayName(o.Now, true, o.ShowAll) + ")"
	}
	return RowTitleStyle.Render(name) + " " + SubtitleStyle.Render(offset)
}

// rowSunTimes formats today's sunrise and sunset for the entry's first city
func rowSunTimes(e zone.Entry, o rowOptions) string {
	if o.Sun == nil || o.Catalog == nil || len(e.Cities) == 0 {
		return ""
	}
	city, ok := o.Catalog.Lookup(e.Cities[0])
	if !ok || city.Coordinates == nil {
		return ""
	}
	times, ok := o.Sun.SunTimes(*city.Coordinates, o.Now, e.Location)
	if !ok {
		return ""
	}
	return times.Format(o.TwelveHour)
}

// timelineCells layers shading, indicators, markers and dates in draw order
func timelineCells(e zone.Entry, w timeline.Window, o rowOptions) []cell {
	cells := make([]cell, w.Width)
	for i, a := range timeline.Shade(w, e.Location, o.Hours) {
		cells[i] = cell{r: a.Glyph(), fg: activityColor(a, o.Theme)}
	}

	nowCol := -1
	if w.Contains(o.Now) || o.Now.Equal(w.End) {
		nowCol = w.Column(o.Now)
		cells[nowCol] = cell{r: '│', fg: o.Theme.Now}
	}

	scrubCol := w.Column(o.Scrub)
	if scrubCol != nowCol {
		cells[scrubCol] = cell{r: '┃', fg: o.Theme.Scrub}
	}

	for _, m := range timeline.Markers(w, e.Location) {
		switch m.Kind {
		case timeline.KindSpringForward:
			cells[m.Column] = cell{r: m.Kind.Glyph(), fg: springForwardColor}
		case timeline.KindFallBack:
			cells[m.Column] = cell{r: m.Kind.Glyph(), fg: fallBackColor}
		case timeline.KindMidnight:
			if m.Column != nowCol && m.Column != scrubCol {
				cells[m.Column] = cell{r: m.Kind.Glyph(), fg: o.Theme.Night}
			}
		}
	}

	if o.ShowDate {
		for _, l := range timeline.DateLabels(w, e.Location, o.Hours) {
			text := []rune(l.Text)
			start := clamp(l.Column-len(text)/2, 0, w.Width-len(text))
			for i, r := range text {
				if x := start + i; x >= 0 && x < w.Width {
					cells[x] = cell{r: r, fg: ansiWhite, bg: colorDateBg}
				}
			}
		}
	}

	return cells
}

// renderCells styles runs of equally colored cells together
func renderCells(cells []cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].fg == cells[i].fg && cells[j].bg == cells[i].bg {
			run.WriteRune(cells[j].r)
			j++
		}
		style := lipgloss.NewStyle().Foreground(cells[i].fg)
		if cells[i].bg != "" {
			style = style.Background(cells[i].bg)
		}
		b.WriteString(style.Render(run.String()))
		i = j
	}
	return b.String()
}

// scrubLabel centers the zone's local scrub time under the scrub column
func scrubLabel(e zone.Entry, w timeline.Window, o rowOptions) string {
	text := formatClock(o.Scrub.In(e.Location), o.TwelveHour, false) + " " + o.Scrub.In(e.Location).Format("Mon")
	n := len([]rune(text))
	col := w.Column(o.Scrub)
	start := clamp(col-n/2, 0, w.Width-n)
	if start < 0 {
		start = 0
	}
	return strings.Repeat(" ", start) + text
}

func activityColor(a timeline.Activity, t Theme) lipgloss.Color {
	switch a {
	case timeline.Work:
		return t.Work
	case timeline.Awake:
		return t.Awake
	default:
		return t.Night
	}
}

// formatClock renders "15:04" / "3:04 PM", optionally with seconds
func formatClock(t time.Time, twelveHour, seconds bool) string {
	switch {
	case twelveHour && seconds:
		return t.Format("03:04:05 PM")
	case twelveHour:
		return t.Format("03:04 PM")
	case seconds:
		return t.Format("15:04:05")
	default:
		return t.Format("15:04")
	}
}

// spread places left and right on one line of the given width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
