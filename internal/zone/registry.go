// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     zone
// Description: Ordered set of displayed zones with merge/split policies
// Author:      alltz contributors
// Created:     2025-07-14
// License:     MIT
// ============================================================================

// Package zone keeps the list of zones shown on the dashboard. Cities that
// share an IANA zone always collapse into one entry; with merge-by-time on,
// zones that currently show the same wall clock collapse too.
package zone

import (
	"sort"
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/internal/tz"
)

// DefaultCities are shown when no zones are configured
var DefaultCities = []string{
	"Los Angeles",
	"New York",
	"UTC",
	"London",
	"Berlin",
	"Tokyo",
	"Sydney",
}

// Option configures a Registry
type Option func(*Registry)

// WithClock replaces time.Now for offset and wall-clock comparisons
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithMergeByTime sets the initial merge-by-time policy
func WithMergeByTime(enable bool) Option {
	return func(r *Registry) {
		r.mergeByTime = enable
	}
}

// Registry is the ordered collection of zone entries
type Registry struct {
	catalog     *catalog.Catalog
	entries     []Entry
	mergeByTime bool
	now         func() time.Time
}

// NewRegistry creates an empty registry backed by cat
func NewRegistry(cat *catalog.Catalog, opts ...Option) *Registry {
	r := &Registry{
		catalog: cat,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRegistry creates a registry holding DefaultCities
func NewDefaultRegistry(cat *catalog.Catalog, opts ...Option) *Registry {
	r := NewRegistry(cat, opts...)
	for _, name := range DefaultCities {
		r.AddCity(name)
	}
	return r
}

// Now returns the registry clock's current instant
func (r *Registry) Now() time.Time {
	return r.now()
}

// Catalog returns the backing catalog
func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in display order. The order is
// recomputed on every access since offsets change across DST boundaries.
func (r *Registry) Entries() []Entry {
	r.sort()
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.clone()
	}
	return out
}

// Entry returns the entry at index
func (r *Registry) Entry(index int) (Entry, bool) {
	r.sort()
	if index < 0 || index >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[index].clone(), true
}

// MergeByTime reports the current merge policy
func (r *Registry) MergeByTime() bool {
	return r.mergeByTime
}

// AddCity adds a catalog city. It returns false when the name is unknown.
func (r *Registry) AddCity(name string) bool {
	return r.AddCityWithLabel(name, "")
}

// AddCityWithLabel adds a city and applies label to the entry that receives
// it. An empty label leaves any existing label alone.
func (r *Registry) AddCityWithLabel(name, label string) bool {
	city, ok := r.catalog.Lookup(name)
	if !ok {
		return false
	}
	cityLabel := r.catalog.Label(city)
	now := r.now()

	idx := r.indexOfTimezone(city.Timezone)
	if idx < 0 && r.mergeByTime {
		idx = r.indexOfSameWallClock(city.Location, now)
	}

	if idx >= 0 {
		r.entries[idx].AddCity(cityLabel)
		if label != "" {
			r.entries[idx].CustomLabel = label
		}
	} else {
		entry := NewEntry(city)
		entry.Cities = []string{cityLabel}
		entry.SourceCity = cityLabel
		entry.CustomLabel = label
		r.entries = append(r.entries, entry)
	}

	r.sort()
	return true
}

// Remove deletes the entry at index
func (r *Registry) Remove(index int) (Entry, bool) {
	r.sort()
	if index < 0 || index >= len(r.entries) {
		return Entry{}, false
	}
	removed := r.entries[index]
	r.entries = append(r.entries[:index], r.entries[index+1:]...)
	return removed, true
}

// SetLabel sets or, with an empty label, clears the custom label at index
func (r *Registry) SetLabel(index int, label string) bool {
	r.sort()
	if index < 0 || index >= len(r.entries) {
		return false
	}
	r.entries[index].CustomLabel = label
	return true
}

// SetMergeByTime switches the merge policy and regroups the entries
func (r *Registry) SetMergeByTime(enable bool) {
	r.mergeByTime = enable
	r.entries = Reorganize(r.entries, enable, r.catalog, r.now())
	r.sort()
}

// IndexOfOffset returns the first entry whose current offset is offset seconds
func (r *Registry) IndexOfOffset(offset int) (int, bool) {
	r.sort()
	now := r.now()
	for i, e := range r.entries {
		if e.OffsetSeconds(now) == offset {
			return i, true
		}
	}
	return 0, false
}

// IndexOfCity returns the entry listing the given city
func (r *Registry) IndexOfCity(name string) (int, bool) {
	city, ok := r.catalog.Lookup(name)
	if !ok {
		return 0, false
	}
	label := r.catalog.Label(city)
	r.sort()
	for i, e := range r.entries {
		if e.HasCity(label) {
			return i, true
		}
	}
	return 0, false
}

func (r *Registry) indexOfTimezone(id string) int {
	for i, e := range r.entries {
		if e.TimezoneID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) indexOfSameWallClock(loc *time.Location, now time.Time) int {
	for i, e := range r.entries {
		if sameWallClock(e.Location, loc, now) {
			return i
		}
	}
	return -1
}

func (r *Registry) sort() {
	sortByOffset(r.entries, r.now())
}

// sortByOffset orders entries by current UTC offset; equal offsets keep
// their relative order.
func sortByOffset(entries []Entry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OffsetSeconds(now) < entries[j].OffsetSeconds(now)
	})
}

// sameWallClock reports whether two zones show the same hour and minute
// with the same offset at now.
func sameWallClock(a, b *time.Location, now time.Time) bool {
	ta, tb := now.In(a), now.In(b)
	return ta.Hour() == tb.Hour() &&
		ta.Minute() == tb.Minute() &&
		tz.OffsetAt(a, now) == tz.OffsetAt(b, now)
}
