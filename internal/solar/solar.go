// Package solar computes local sunrise and sunset times for catalog cities.
package solar

import (
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/nathan-osman/go-sunrise"
)

// Times is one day's sunrise and sunset in the zone's local time
type Times struct {
	Sunrise time.Time
	Sunset  time.Time
}

// Format renders the times as "↑06:12 ↓20:45" or with 12-hour clocks
func (t Times) Format(twelveHour bool) string {
	layout := "15:04"
	if twelveHour {
		layout = "3:04pm"
	}
	return "↑" + t.Sunrise.Format(layout) + " ↓" + t.Sunset.Format(layout)
}

// Provider returns sun times for the local date of date in loc. The boolean
// is false when the sun does not rise or set that day.
type Provider interface {
	SunTimes(c catalog.Coordinates, date time.Time, loc *time.Location) (Times, bool)
}

// Calculator is the Provider backed by the NOAA solar equations
type Calculator struct{}

// NewCalculator creates a Calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// SunTimes implements Provider
func (Calculator) SunTimes(c catalog.Coordinates, date time.Time, loc *time.Location) (Times, bool) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.In(loc).Date()
	rise, set := sunrise.SunriseSunset(c.Lat, c.Lon, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return Times{}, false
	}
	return Times{Sunrise: rise.In(loc), Sunset: set.In(loc)}, true
}

// ForCity is a convenience wrapper that rejects cities without coordinates
func ForCity(p Provider, city catalog.City, date time.Time) (Times, bool) {
	if city.Coordinates == nil {
		return Times{}, false
	}
	return p.SunTimes(*city.Coordinates, date, city.Location)
}
