package catalog

import (
	"strings"
	"testing"
)

func TestSearch_Empty(t *testing.T) {
	c := MustDefault()
	for _, q := range []string{"", "   ", "\t"} {
		if got := c.Search(q); len(got) != 0 {
			t.Errorf("Search(%q) = %d results, want none", q, len(got))
		}
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if got := MustDefault().Search("zzzzqqq"); len(got) != 0 {
		t.Errorf("Search() = %v, want none", got)
	}
}

func TestSearch_DuplicateNames(t *testing.T) {
	results := MustDefault().Search("London")

	seen := map[string]int{}
	for _, r := range results {
		seen[r.Label]++
	}
	for _, label := range []string{"London, United Kingdom", "London, Canada"} {
		if seen[label] != 1 {
			t.Errorf("label %q appears %d times, want 1", label, seen[label])
		}
	}
	if seen["London"] != 0 {
		t.Error("ambiguous bare label London must not appear")
	}
}

func TestSearch_Ranking(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		query     string
		wantFirst string
		wantScore int
	}{
		// exact name + timezone id contains + major bonus
		{"tokyo", "Tokyo", 1000 + 50 + 25},
		// exact code + major bonus
		{"TYO", "Tokyo", 1000 + 25},
		// prefix + timezone id contains + major bonus
		{"tok", "Tokyo", 500 + 50 + 25},
		// alias exact, no major bonus
		{"Hawaii", "Honolulu", 800},
		// country only
		{"united kingdom", "London, United Kingdom", 100 + 25},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := c.Search(tt.query)
			if len(results) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			if results[0].Label != tt.wantFirst {
				t.Errorf("first = %q, want %q", results[0].Label, tt.wantFirst)
			}
			if results[0].Score != tt.wantScore {
				t.Errorf("score = %d, want %d", results[0].Score, tt.wantScore)
			}
		})
	}
}

func TestSearch_Order(t *testing.T) {
	c := MustDefault()

	queries := []string{"a", "an", "new", "america", "san", "o"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			results := c.Search(q)
			if len(results) > MaxSearchResults {
				t.Fatalf("Search(%q) returned %d results", q, len(results))
			}
			for i := 1; i < len(results); i++ {
				prev, cur := results[i-1], results[i]
				if prev.Score < cur.Score {
					t.Errorf("score order broken at %d: %d < %d", i, prev.Score, cur.Score)
				}
				if prev.Score == cur.Score && prev.Label > cur.Label {
					t.Errorf("label order broken at %d: %q > %q", i, prev.Label, cur.Label)
				}
			}
		})
	}
}

func TestSearch_TimezoneOnlyMatch(t *testing.T) {
	results := MustDefault().Search("tokyo")
	var osaka *SearchResult
	for i := range results {
		if results[i].Label == "Osaka" {
			osaka = &results[i]
		}
	}
	if osaka == nil {
		t.Fatal("Osaka should match through Asia/Tokyo")
	}
	if osaka.Score != 50 {
		t.Errorf("Osaka score = %d, want 50", osaka.Score)
	}
}

func TestSearchLabels(t *testing.T) {
	labels := MustDefault().SearchLabels("par")
	if len(labels) == 0 || !strings.HasPrefix(labels[0], "Paris") {
		t.Errorf("SearchLabels(par) = %v", labels)
	}
}
