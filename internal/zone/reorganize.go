package zone

import (
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
)

// Reorganize regroups entries for a merge policy without touching the input.
//
// With enable set, entries sharing a TimezoneID are coalesced first, then
// entries showing the same wall clock at now. Otherwise every multi-city entry
// is split into one entry per distinct member timezone. Cities unknown to the
// catalog stay with their original entry. The result is sorted by offset.
func Reorganize(entries []Entry, enable bool, cat *catalog.Catalog, now time.Time) []Entry {
	var out []Entry
	if enable {
		out = coalesce(entries, now)
	} else {
		out = split(entries, cat)
	}
	sortByOffset(out, now)
	return out
}

func coalesce(entries []Entry, now time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		target := -1
		for i := range out {
			if out[i].TimezoneID == e.TimezoneID {
				target = i
				break
			}
		}
		if target < 0 {
			for i := range out {
				if sameWallClock(out[i].Location, e.Location, now) {
					target = i
					break
				}
			}
		}

		if target < 0 {
			out = append(out, e.clone())
			continue
		}
		for _, c := range e.Cities {
			out[target].AddCity(c)
		}
		if out[target].CustomLabel == "" {
			out[target].CustomLabel = e.CustomLabel
		}
	}
	return out
}

func split(entries []Entry, cat *catalog.Catalog) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Cities) <= 1 {
			out = append(out, e.clone())
			continue
		}

		for _, name := range e.Cities {
			city, ok := cat.Lookup(name)
			tzID := e.TimezoneID
			if ok {
				tzID = city.Timezone
			}

			target := -1
			for i := range out {
				if out[i].TimezoneID == tzID {
					target = i
					break
				}
			}
			if target >= 0 {
				out[target].AddCity(name)
				continue
			}

			var part Entry
			if ok && tzID != e.TimezoneID {
				part = NewEntry(city)
				part.Cities = []string{name}
				part.SourceCity = name
			} else {
				part = Entry{
					TimezoneID:  e.TimezoneID,
					Location:    e.Location,
					ShortCode:   e.ShortCode,
					CustomLabel: e.CustomLabel,
					Cities:      []string{name},
					SourceCity:  name,
				}
			}
			out = append(out, part)
		}
	}
	return out
}
