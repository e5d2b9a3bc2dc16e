package solar

import (
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/maypok86/otter/v2"
)

// defaultCacheSize comfortably holds a week of dates for every catalog city
const defaultCacheSize = 4096

type cacheKey struct {
	lat, lon float64
	date     string
	zone     string
}

type cacheValue struct {
	times Times
	ok    bool
}

// CachedProvider memoizes another Provider. The dashboard asks for the same
// zone and date on every frame.
type CachedProvider struct {
	next  Provider
	cache *otter.Cache[cacheKey, cacheValue]
}

// NewCachedProvider wraps next with a bounded cache of size entries
func NewCachedProvider(next Provider, size int) *CachedProvider {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &CachedProvider{
		next: next,
		cache: otter.Must(&otter.Options[cacheKey, cacheValue]{
			MaximumSize: size,
		}),
	}
}

// NewDefault returns the cached Calculator used by the dashboard
func NewDefault() *CachedProvider {
	return NewCachedProvider(NewCalculator(), defaultCacheSize)
}

// SunTimes implements Provider
func (p *CachedProvider) SunTimes(c catalog.Coordinates, date time.Time, loc *time.Location) (Times, bool) {
	if loc == nil {
		loc = time.UTC
	}
	key := cacheKey{
		lat:  c.Lat,
		lon:  c.Lon,
		date: date.In(loc).Format(time.DateOnly),
		zone: loc.String(),
	}
	if v, found := p.cache.GetIfPresent(key); found {
		return v.times, v.ok
	}

	times, ok := p.next.SunTimes(c, date, loc)
	p.cache.Set(key, cacheValue{times: times, ok: ok})
	return times, ok
}
