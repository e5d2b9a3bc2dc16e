// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     timeline
// Description: Instant to column mapping and per-zone timeline events
// Author:      alltz contributors
// Created:     2025-07-15
// License:     MIT
// ============================================================================

// Package timeline maps UTC instants onto the columns of a fixed-width
// terminal bar and finds the DST transitions and local midnights that fall
// inside it.
package timeline

import (
	"math"
	"time"
)

// Window bounds
const (
	MinHours      = 48.0
	MaxHours      = 168.0
	charsPerHour  = 2.0
	minRenderable = 2
)

// HoursForWidth returns how many hours a bar of width columns covers
func HoursForWidth(width int) float64 {
	hours := float64(width) / charsPerHour
	return math.Max(MinHours, math.Min(MaxHours, hours))
}

// Window is the visible time range around a scrub instant
type Window struct {
	Scrub time.Time
	Start time.Time
	End   time.Time
	Width int
	Hours float64
}

// NewWindow centers a window of the adaptive size on scrub
func NewWindow(scrub time.Time, width int) Window {
	hours := HoursForWidth(width)
	half := time.Duration(hours/2*60) * time.Minute

	return Window{
		Scrub: scrub,
		Start: scrub.Add(-half),
		End:   scrub.Add(half),
		Width: width,
		Hours: hours,
	}
}

// Renderable reports whether the window is wide enough to draw
func (w Window) Renderable() bool {
	return w.Width >= minRenderable
}

// Duration returns End - Start
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies in [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Column maps t to a column in [0, Width-1]. Instants outside the window
// are pinned to the nearest edge.
func (w Window) Column(t time.Time) int {
	if w.Width <= 0 {
		return 0
	}

	total := w.Duration().Seconds()
	ratio := 0.0
	if total != 0 {
		ratio = t.Sub(w.Start).Seconds() / total
	}

	col := int(math.Round(ratio * float64(w.Width)))
	if col < 0 {
		return 0
	}
	if col > w.Width-1 {
		return w.Width - 1
	}
	return col
}

// InstantAt is the inverse of Column, truncated to the minute
func (w Window) InstantAt(column int) time.Time {
	if w.Width <= 0 {
		return w.Start.Truncate(time.Minute)
	}
	offset := time.Duration(float64(w.Duration()) * float64(column) / float64(w.Width))
	return w.Start.Add(offset).Truncate(time.Minute)
}
