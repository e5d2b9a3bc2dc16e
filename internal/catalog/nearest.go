package catalog

import (
	"math"
	"sort"

	"github.com/golang/geo/s2"
)

// earthRadiusKm is the mean Earth radius used to turn angles into distances
const earthRadiusKm = 6371.0088

// Neighbor is a city together with its great-circle distance from a point
type Neighbor struct {
	City       City
	DistanceKm float64
}

// Nearest returns up to n cities closest to the given point. Cities without
// coordinates are never returned. Invalid coordinates yield no results.
func (c *Catalog) Nearest(lat, lon float64, n int) []Neighbor {
	if n <= 0 || math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return nil
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil
	}

	origin := s2.LatLngFromDegrees(lat, lon)
	neighbors := make([]Neighbor, 0, len(c.cities))
	for _, city := range c.cities {
		if city.Coordinates == nil {
			continue
		}
		ll := s2.LatLngFromDegrees(city.Coordinates.Lat, city.Coordinates.Lon)
		neighbors = append(neighbors, Neighbor{
			City:       city,
			DistanceKm: origin.Distance(ll).Radians() * earthRadiusKm,
		})
	}

	// Distance, then name, for a deterministic order.
	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].DistanceKm != neighbors[j].DistanceKm {
			return neighbors[i].DistanceKm < neighbors[j].DistanceKm
		}
		return neighbors[i].City.Name < neighbors[j].City.Name
	})

	if len(neighbors) > n {
		neighbors = neighbors[:n]
	}
	return neighbors
}
