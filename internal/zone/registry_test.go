package zone

import (
	"reflect"
	"testing"
	"time"

	"github.com/alltz-dev/alltz/internal/catalog"
)

var winter = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestRegistry(t *testing.T, merge bool) *Registry {
	t.Helper()
	return NewRegistry(catalog.MustDefault(), WithClock(fixedClock(winter)), WithMergeByTime(merge))
}

func cityLists(entries []Entry) [][]string {
	out := make([][]string, len(entries))
	for i, e := range entries {
		out[i] = e.Cities
	}
	return out
}

func TestAddCity_SameTimezoneAlwaysMerges(t *testing.T) {
	for _, merge := range []bool{false, true} {
		r := newTestRegistry(t, merge)
		if !r.AddCity("Toronto") || !r.AddCity("Montreal") {
			t.Fatal("AddCity failed")
		}
		if r.Len() != 1 {
			t.Fatalf("merge=%v: Len() = %d, want 1", merge, r.Len())
		}
		want := []string{"Toronto", "Montreal"}
		if got := r.Entries()[0].Cities; !reflect.DeepEqual(got, want) {
			t.Errorf("merge=%v: Cities = %v, want %v", merge, got, want)
		}
	}
}

func TestAddCity_Duplicate(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("Tokyo")
	r.AddCity("tokyo")
	if r.Len() != 1 || len(r.Entries()[0].Cities) != 1 {
		t.Errorf("duplicate city was added twice: %v", cityLists(r.Entries()))
	}
}

func TestAddCity_Unknown(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("Tokyo")
	if r.AddCity("Atlantis") {
		t.Error("AddCity(Atlantis) should fail")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after failed add", r.Len())
	}
}

func TestAddCity_MergeByTime(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("Toronto")
	r.AddCity("Montreal")
	r.AddCity("New York")
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	r.SetMergeByTime(true)
	if r.Len() != 1 {
		t.Fatalf("after merge Len() = %d, want 1", r.Len())
	}
	if got := len(r.Entries()[0].Cities); got != 3 {
		t.Errorf("merged entry has %d cities, want 3", got)
	}

	r.SetMergeByTime(false)
	if r.Len() != 2 {
		t.Fatalf("after split Len() = %d, want 2", r.Len())
	}
	for _, e := range r.Entries() {
		if e.TimezoneID == "America/New_York" && !reflect.DeepEqual(e.Cities, []string{"New York"}) {
			t.Errorf("New York entry = %v", e.Cities)
		}
		if e.TimezoneID == "America/Toronto" && !reflect.DeepEqual(e.Cities, []string{"Toronto", "Montreal"}) {
			t.Errorf("Toronto entry = %v", e.Cities)
		}
	}
}

func TestAddCity_MergeOnInsert(t *testing.T) {
	r := newTestRegistry(t, true)
	r.AddCity("New York")
	r.AddCity("Toronto")
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	e := r.Entries()[0]
	if e.TimezoneID != "America/New_York" {
		t.Errorf("TimezoneID = %q", e.TimezoneID)
	}
	if !reflect.DeepEqual(e.Cities, []string{"New York", "Toronto"}) {
		t.Errorf("Cities = %v", e.Cities)
	}
}

func TestMergeRoundTrip(t *testing.T) {
	names := []string{"Tokyo", "Seoul", "New York", "Toronto", "London", "UTC", "Dublin"}
	r := newTestRegistry(t, false)
	for _, n := range names {
		r.AddCity(n)
	}
	before := r.Len()
	if before != len(names) {
		t.Fatalf("Len() = %d, want %d", before, len(names))
	}

	r.SetMergeByTime(true)
	if r.Len() >= before {
		t.Errorf("merge did not reduce entries: %d", r.Len())
	}

	r.SetMergeByTime(false)
	if r.Len() != before {
		t.Errorf("split restored %d entries, want %d", r.Len(), before)
	}
}

func TestReorganize_Pure(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("New York")
	r.AddCity("Toronto")
	in := r.Entries()
	snapshot := cityLists(r.Entries())

	out := Reorganize(in, true, r.Catalog(), winter)
	if len(out) != 1 {
		t.Fatalf("Reorganize() = %d entries, want 1", len(out))
	}
	if !reflect.DeepEqual(cityLists(in), snapshot) {
		t.Error("Reorganize modified its input")
	}
}

func TestReorganize_KeepsLabel(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCityWithLabel("New York", "HQ")
	r.AddCity("Toronto")

	merged := Reorganize(r.Entries(), true, r.Catalog(), winter)
	if merged[0].CustomLabel != "HQ" {
		t.Errorf("merged label = %q", merged[0].CustomLabel)
	}

	split := Reorganize(merged, false, r.Catalog(), winter)
	for _, e := range split {
		switch e.TimezoneID {
		case "America/New_York":
			if e.CustomLabel != "HQ" {
				t.Errorf("New York label = %q, want HQ", e.CustomLabel)
			}
		default:
			if e.CustomLabel != "" {
				t.Errorf("%s label = %q, want none", e.TimezoneID, e.CustomLabel)
			}
		}
	}
}

func TestOrdering(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("Tokyo")
	r.AddCity("UTC")
	entries := r.Entries()
	if entries[0].TimezoneID != "UTC" || entries[1].TimezoneID != "Asia/Tokyo" {
		t.Errorf("order = %s, %s", entries[0].TimezoneID, entries[1].TimezoneID)
	}
}

func TestOrdering_StableTies(t *testing.T) {
	r := NewDefaultRegistry(catalog.MustDefault(), WithClock(fixedClock(winter)))

	var got []string
	for _, e := range r.Entries() {
		got = append(got, e.SourceCity)
	}
	want := []string{
		"Los Angeles",
		"New York",
		"UTC",
		"London, United Kingdom",
		"Berlin",
		"Tokyo",
		"Sydney",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	now := r.Now()
	entries := r.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].OffsetHours(now) > entries[i].OffsetHours(now) {
			t.Errorf("entries not sorted at %d", i)
		}
	}
}

func TestOrdering_FollowsClock(t *testing.T) {
	// Sydney is UTC+11 in January and UTC+10 in July; Tokyo stays +9.
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(catalog.MustDefault(), WithClock(fixedClock(summer)))
	r.AddCity("Sydney")
	r.AddCity("Tokyo")

	e := r.Entries()
	if e[0].TimezoneID != "Asia/Tokyo" {
		t.Errorf("first = %s, want Asia/Tokyo", e[0].TimezoneID)
	}
	if got := e[1].OffsetString(summer); got != "UTC+10" {
		t.Errorf("Sydney offset = %s, want UTC+10", got)
	}
}

func TestOrdering_ResortsWhenClockMoves(t *testing.T) {
	// Halifax is UTC-4 in January and UTC-3 in July; Santiago goes the other way.
	now := winter
	r := NewRegistry(catalog.MustDefault(), WithClock(func() time.Time { return now }))
	r.AddCity("Halifax")
	r.AddCity("Santiago")

	if e := r.Entries(); e[0].TimezoneID != "America/Halifax" {
		t.Fatalf("January first = %s, want America/Halifax", e[0].TimezoneID)
	}

	now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	e := r.Entries()
	if e[0].TimezoneID != "America/Santiago" || e[1].TimezoneID != "America/Halifax" {
		t.Errorf("July order = %s, %s, want Santiago before Halifax", e[0].TimezoneID, e[1].TimezoneID)
	}
	for i := 1; i < len(e); i++ {
		if e[i-1].OffsetSeconds(now) > e[i].OffsetSeconds(now) {
			t.Errorf("entries not sorted by offset at %v", now)
		}
	}
	if got, _ := r.Entry(0); got.TimezoneID != "America/Santiago" {
		t.Errorf("Entry(0) = %s, want America/Santiago", got.TimezoneID)
	}
}

func TestRemove(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("UTC")
	r.AddCity("Tokyo")

	tests := []struct {
		name   string
		index  int
		wantOK bool
		wantN  int
	}{
		{"negative", -1, false, 2},
		{"out of range", 2, false, 2},
		{"valid", 0, true, 1},
		{"last", 0, true, 0},
		{"empty", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.Remove(tt.index)
			if ok != tt.wantOK {
				t.Errorf("Remove(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if r.Len() != tt.wantN {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.wantN)
			}
		})
	}
}

func TestSetLabel(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("Tokyo")

	if r.SetLabel(3, "x") {
		t.Error("SetLabel out of range should fail")
	}
	if !r.SetLabel(0, "Office") {
		t.Fatal("SetLabel failed")
	}
	e, _ := r.Entry(0)
	if got := e.EffectiveDisplayName(winter, false, false); got != "Office" {
		t.Errorf("EffectiveDisplayName = %q", got)
	}

	r.SetLabel(0, "")
	e, _ = r.Entry(0)
	if got := e.EffectiveDisplayName(winter, false, false); got != "TYO" {
		t.Errorf("EffectiveDisplayName after clear = %q", got)
	}
}

func TestIndexLookups(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("UTC")
	r.AddCity("Mumbai")
	r.AddCity("Tokyo")

	if i, ok := r.IndexOfOffset(5*3600 + 1800); !ok || i != 1 {
		t.Errorf("IndexOfOffset(+5:30) = %d, %v", i, ok)
	}
	if _, ok := r.IndexOfOffset(3600); ok {
		t.Error("IndexOfOffset(+1) should fail")
	}
	if i, ok := r.IndexOfCity("tokyo"); !ok || i != 2 {
		t.Errorf("IndexOfCity(tokyo) = %d, %v", i, ok)
	}
}

func TestAmbiguousCityName(t *testing.T) {
	r := newTestRegistry(t, false)
	r.AddCity("London, Canada")
	r.AddCity("London")
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	r.SetMergeByTime(true)
	r.SetMergeByTime(false)
	found := map[string]string{}
	for _, e := range r.Entries() {
		found[e.Cities[0]] = e.TimezoneID
	}
	if found["London, Canada"] != "America/Toronto" {
		t.Errorf("London, Canada -> %q", found["London, Canada"])
	}
	if found["London, United Kingdom"] != "Europe/London" {
		t.Errorf("London, United Kingdom -> %q", found["London, United Kingdom"])
	}
}
