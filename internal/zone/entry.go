package zone

import (
	"fmt"
	"strings"
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/internal/tz"
)

// Entry is one displayed row: an IANA zone and the cities shown under it
type Entry struct {
	TimezoneID  string
	Location    *time.Location
	ShortCode   string
	CustomLabel string
	Cities      []string
	SourceCity  string
}

// NewEntry builds a single-city entry from a catalog record
func NewEntry(city catalog.City) Entry {
	return Entry{
		TimezoneID: city.Timezone,
		Location:   city.Location,
		ShortCode:  city.Code,
		Cities:     []string{city.Name},
		SourceCity: city.Name,
	}
}

// AddCity appends a city name unless it is already present
func (e *Entry) AddCity(name string) bool {
	for _, c := range e.Cities {
		if c == name {
			return false
		}
	}
	e.Cities = append(e.Cities, name)
	if e.SourceCity == "" {
		e.SourceCity = name
	}
	return true
}

// HasCity reports whether name is listed under this entry
func (e Entry) HasCity(name string) bool {
	for _, c := range e.Cities {
		if c == name {
			return true
		}
	}
	return false
}

// OffsetSeconds returns the UTC offset at now
func (e Entry) OffsetSeconds(now time.Time) int {
	return tz.OffsetAt(e.Location, now)
}

// OffsetHours returns the UTC offset at now in fractional hours
func (e Entry) OffsetHours(now time.Time) float64 {
	return float64(e.OffsetSeconds(now)) / 3600
}

// OffsetString formats the offset as "UTC+9" or "UTC+5:30"
func (e Entry) OffsetString(now time.Time) string {
	return tz.FormatOffset(e.OffsetSeconds(now))
}

// Abbreviation returns the zone abbreviation in effect at now
func (e Entry) Abbreviation(now time.Time) string {
	return tz.Abbreviation(e.Location, now)
}

// LocalTime converts t into the entry's zone
func (e Entry) LocalTime(t time.Time) time.Time {
	return t.In(e.Location)
}

// DisplayName renders the city list. fullNames selects city names over the
// short code; showAll lists every city of a group instead of "X +N". The zone
// abbreviation shown for short groups is the one in effect at now.
func (e Entry) DisplayName(now time.Time, fullNames, showAll bool) string {
	switch len(e.Cities) {
	case 0:
		return e.ShortCode
	case 1:
		if fullNames {
			return e.Cities[0]
		}
		return e.ShortCode
	}

	if !fullNames {
		if showAll {
			return fmt.Sprintf("%s (%s)", e.Abbreviation(now), strings.Join(e.Cities, ", "))
		}
		return fmt.Sprintf("%s +%d", e.ShortCode, len(e.Cities)-1)
	}
	if showAll {
		return strings.Join(e.Cities, ", ")
	}
	return fmt.Sprintf("%s +%d", e.Cities[0], len(e.Cities)-1)
}

// EffectiveDisplayName is the custom label when set, DisplayName otherwise
func (e Entry) EffectiveDisplayName(now time.Time, fullNames, showAll bool) string {
	if e.CustomLabel != "" {
		return e.CustomLabel
	}
	return e.DisplayName(now, fullNames, showAll)
}

func (e Entry) clone() Entry {
	out := e
	out.Cities = append([]string(nil), e.Cities...)
	return out
}
