package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still offered as a suggestion
const maxSuggestDistance = 3

// Suggest returns the catalog label closest to a misspelled name. It is used
// for "did you mean" hints after a failed lookup.
func (c *Catalog) Suggest(name string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return "", false
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, city := range c.cities {
		candidates := append([]string{city.Name, city.Code}, city.Aliases...)
		for _, candidate := range candidates {
			d := levenshtein.ComputeDistance(q, strings.ToLower(candidate))
			if d < bestDist {
				bestDist = d
				best = c.Label(city)
			}
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
