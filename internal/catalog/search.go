package catalog

import (
	"sort"
	"strings"
)

// MaxSearchResults bounds the length of a search result list
const MaxSearchResults = 8

// Search scores
const (
	scoreExact        = 1000
	scoreAliasExact   = 800
	scorePrefix       = 500
	scoreAliasPrefix  = 400
	scoreContains     = 200
	scoreAliasContain = 150
	scoreCountry      = 100
	scoreTimezone     = 50
	scoreMajorBonus   = 25
)

// SearchResult is one ranked match
type SearchResult struct {
	Label string
	Score int
	City  City
}

// Search ranks catalog cities against a free-text query and returns at most
// MaxSearchResults matches, best first. Ties are ordered by label.
func (c *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	results := make([]SearchResult, 0, len(c.cities))
	for _, city := range c.cities {
		score := c.score(city, q)
		if score <= 0 {
			continue
		}
		results = append(results, SearchResult{
			Label: c.Label(city),
			Score: score,
			City:  city,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Label < results[j].Label
	})

	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results
}

// SearchLabels returns only the labels of Search
func (c *Catalog) SearchLabels(query string) []string {
	results := c.Search(query)
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Label
	}
	return labels
}

// score computes the relevance of city for the lower-cased query q
func (c *Catalog) score(city City, q string) int {
	score := 0
	name := strings.ToLower(city.Name)
	code := strings.ToLower(city.Code)

	switch {
	case name == q || code == q:
		score += scoreExact
	case strings.HasPrefix(name, q) || strings.HasPrefix(code, q):
		score += scorePrefix
	case strings.Contains(name, q) || strings.Contains(code, q):
		score += scoreContains
	}

	for _, alias := range city.Aliases {
		a := strings.ToLower(alias)
		switch {
		case a == q:
			score += scoreAliasExact
		case strings.HasPrefix(a, q):
			score += scoreAliasPrefix
		case strings.Contains(a, q):
			score += scoreAliasContain
		}
	}

	if strings.Contains(strings.ToLower(city.Country), q) {
		score += scoreCountry
	}
	if strings.Contains(strings.ToLower(city.Timezone), q) {
		score += scoreTimezone
	}

	if score > 0 && c.IsMajor(city.Name) {
		score += scoreMajorBonus
	}
	return score
}
