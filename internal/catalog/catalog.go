// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     catalog
// Description: Embedded city reference data and lookups
// Author:      alltz contributors
// Created:     2025-07-14
// License:     MIT
// ============================================================================

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alltz-dev/alltz/internal/tz"
	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var embeddedCities []byte

// ErrCityNotFound is returned when a city name does not match any catalog entry
var ErrCityNotFound = errors.New("city not found")

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// City is one immutable catalog record
type City struct {
	Name        string
	Code        string
	Timezone    string
	Country     string
	Coordinates *Coordinates // nil when the entry has no physical location
	Aliases     []string
	Location    *time.Location
}

// cityRecord is the on-disk shape of a city
type cityRecord struct {
	Name        string    `yaml:"name"`
	Code        string    `yaml:"code"`
	Timezone    string    `yaml:"timezone"`
	Country     string    `yaml:"country"`
	Coordinates []float64 `yaml:"coordinates"`
	Aliases     []string  `yaml:"aliases"`
}

type catalogFile struct {
	Cities      []cityRecord `yaml:"cities"`
	MajorCities []string     `yaml:"major_cities"`
}

// Catalog is the read-only set of known cities
type Catalog struct {
	cities    []City
	major     map[string]bool
	nameCount map[string]int
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse city catalog: %w", err)
	}
	if len(file.Cities) == 0 {
		return nil, errors.New("city catalog is empty")
	}

	c := &Catalog{
		cities:    make([]City, 0, len(file.Cities)),
		major:     make(map[string]bool, len(file.MajorCities)),
		nameCount: make(map[string]int, len(file.Cities)),
	}

	for i, rec := range file.Cities {
		if rec.Name == "" || rec.Code == "" {
			return nil, fmt.Errorf("city #%d: name and code are required", i)
		}
		loc, err := tz.Load(rec.Timezone)
		if err != nil {
			return nil, fmt.Errorf("city %q: %w", rec.Name, err)
		}

		city := City{
			Name:     rec.Name,
			Code:     rec.Code,
			Timezone: rec.Timezone,
			Country:  rec.Country,
			Aliases:  rec.Aliases,
			Location: loc,
		}
		switch len(rec.Coordinates) {
		case 0:
		case 2:
			city.Coordinates = &Coordinates{Lat: rec.Coordinates[0], Lon: rec.Coordinates[1]}
		default:
			return nil, fmt.Errorf("city %q: coordinates must be [lat, lon]", rec.Name)
		}

		c.cities = append(c.cities, city)
		c.nameCount[strings.ToLower(city.Name)]++
	}

	for _, name := range file.MajorCities {
		c.major[name] = true
	}

	return c, nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embeddedCities)
})

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return loadDefault()
}

// MustDefault returns the embedded catalog and panics if it is malformed.
// A broken embedded catalog is a build defect, not a runtime condition.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Cities returns all cities in catalog order
func (c *Catalog) Cities() []City {
	out := make([]City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Len returns the number of cities
func (c *Catalog) Len() int {
	return len(c.cities)
}

// IsMajor reports whether the city gets the major-city search bonus
func (c *Catalog) IsMajor(name string) bool {
	return c.major[name]
}

// Label returns the display label for a city, adding the country when
// several catalog cities share the name.
func (c *Catalog) Label(city City) string {
	if c.nameCount[strings.ToLower(city.Name)] > 1 {
		return city.Name + ", " + city.Country
	}
	return city.Name
}

// Lookup finds a city by name, case-insensitively. "City, Country" selects
// between cities that share a name; a bare name returns the first match.
func (c *Catalog) Lookup(name string) (City, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return City{}, false
	}

	for _, city := range c.cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}

	idx := strings.LastIndex(name, ",")
	if idx < 0 {
		return City{}, false
	}
	cityName := strings.TrimSpace(name[:idx])
	country := strings.TrimSpace(name[idx+1:])
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, cityName) && strings.EqualFold(city.Country, country) {
			return city, true
		}
	}
	return City{}, false
}

// Find is Lookup with an error for CLI callers
func (c *Catalog) Find(name string) (City, error) {
	city, ok := c.Lookup(name)
	if !ok {
		return City{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return city, nil
}

// ForTimezone returns the first city that uses the given IANA zone
func (c *Catalog) ForTimezone(id string) (City, bool) {
	for _, city := range c.cities {
		if city.Timezone == id {
			return city, true
		}
	}
	return City{}, false
}
