// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     tz
// Description: Offset lookup and local-time resolution on top of time.Location
// Author:      alltz contributors
// Created:     2025-07-14
// License:     MIT
// ============================================================================

// Package tz wraps the standard library's zone database with the two
// primitives the timeline engine needs: the fixed UTC offset in effect at an
// instant, and a tri-state resolution of a local wall-clock reading back to
// UTC that reports DST folds and gaps instead of silently normalizing them.
package tz

import (
	"fmt"
	"sort"
	"time"

	// Embed the zone database so resolution does not depend on the host.
	_ "time/tzdata"
)

// Kind classifies the outcome of resolving a local wall-clock time
type Kind int

const (
	// Unique means the local time maps to exactly one instant
	Unique Kind = iota
	// Ambiguous means the local time occurs twice (DST fold)
	Ambiguous
	// Nonexistent means the local time is skipped (DST gap)
	Nonexistent
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	case Nonexistent:
		return "nonexistent"
	default:
		return "unknown"
	}
}

// Resolution is the result of mapping a local time to UTC.
// Candidates holds the matching instants in ascending order: one for Unique,
// two for Ambiguous and none for Nonexistent.
type Resolution struct {
	Kind       Kind
	Candidates []time.Time
}

// Instant returns the single matching instant. ok is false unless Kind is Unique.
func (r Resolution) Instant() (t time.Time, ok bool) {
	if r.Kind != Unique || len(r.Candidates) != 1 {
		return time.Time{}, false
	}
	return r.Candidates[0], true
}

// probeSpan bounds how far around the wall-clock reading offsets are sampled.
// Real offsets never exceed +-26h, and no zone has two transitions this close.
const probeSpan = 26 * time.Hour

// Load resolves an IANA timezone identifier
func Load(id string) (*time.Location, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", id, err)
	}
	return loc, nil
}

// OffsetAt returns the UTC offset in seconds that loc applies at t
func OffsetAt(loc *time.Location, t time.Time) int {
	_, offset := t.In(loc).Zone()
	return offset
}

// Abbreviation returns the zone abbreviation (e.g. "CET", "EDT") at t
func Abbreviation(loc *time.Location, t time.Time) string {
	name, _ := t.In(loc).Zone()
	return name
}

// Resolve maps the wall-clock reading year-month-day hour:min:sec in loc to
// the UTC instants that display it.
func Resolve(loc *time.Location, year int, month time.Month, day, hour, min, sec int) Resolution {
	// Interpret the wall clock as if it were UTC, then try every offset that
	// loc uses nearby. A candidate is valid if loc really applies that offset
	// at the candidate instant.
	wall := time.Date(year, month, day, hour, min, sec, 0, time.UTC)

	offsets := make([]int, 0, 3)
	for _, probe := range []time.Time{wall.Add(-probeSpan), wall, wall.Add(probeSpan)} {
		o := OffsetAt(loc, probe)
		seen := false
		for _, existing := range offsets {
			if existing == o {
				seen = true
				break
			}
		}
		if !seen {
			offsets = append(offsets, o)
		}
	}

	var candidates []time.Time
	for _, o := range offsets {
		instant := wall.Add(-time.Duration(o) * time.Second)
		if OffsetAt(loc, instant) != o {
			continue
		}
		duplicate := false
		for _, c := range candidates {
			if c.Equal(instant) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			candidates = append(candidates, instant)
		}
	}

	switch len(candidates) {
	case 0:
		return Resolution{Kind: Nonexistent}
	case 1:
		return Resolution{Kind: Unique, Candidates: candidates}
	default:
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })
		return Resolution{Kind: Ambiguous, Candidates: candidates[:2]}
	}
}

// ResolveMidnight resolves local 00:00:00 on the given calendar date
func ResolveMidnight(loc *time.Location, year int, month time.Month, day int) Resolution {
	return Resolve(loc, year, month, day, 0, 0, 0)
}

// FormatOffset renders an offset in seconds as "UTC+9", "UTC-3:30" or "UTC+0"
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}
