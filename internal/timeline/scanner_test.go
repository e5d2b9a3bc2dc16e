package timeline

import (
	"testing"
	"time"

	"github.com/alltz-dev/alltz/internal/tz"
)

func mustLoad(t *testing.T, id string) *time.Location {
	t.Helper()
	loc, err := tz.Load(id)
	if err != nil {
		t.Fatalf("Load(%q): %v", id, err)
	}
	return loc
}

func TestDSTTransitions(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	tests := []struct {
		name   string
		scrub  time.Time
		width  int
		want   []Kind
		wantAt time.Time
	}{
		{
			name:   "spring forward",
			scrub:  time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
			width:  96,
			want:   []Kind{KindSpringForward},
			wantAt: time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC),
		},
		{
			name:   "fall back",
			scrub:  time.Date(2024, 11, 3, 6, 0, 0, 0, time.UTC),
			width:  96,
			want:   []Kind{KindFallBack},
			wantAt: time.Date(2024, 11, 3, 5, 0, 0, 0, time.UTC),
		},
		{
			name:  "quiet week",
			scrub: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			width: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := DSTTransitions(NewWindow(tt.scrub, tt.width), ny)
			if len(events) != len(tt.want) {
				t.Fatalf("got %d events, want %d: %v", len(events), len(tt.want), events)
			}
			for i, e := range events {
				if e.Kind != tt.want[i] {
					t.Errorf("event %d kind = %v, want %v", i, e.Kind, tt.want[i])
				}
			}
			if len(events) > 0 && !events[0].At.Equal(tt.wantAt) {
				t.Errorf("event at %v, want %v", events[0].At, tt.wantAt)
			}
		})
	}
}

func TestDSTTransitions_NoDST(t *testing.T) {
	for _, id := range []string{"UTC", "Asia/Tokyo", "Asia/Kolkata"} {
		w := NewWindow(time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), 400)
		if events := DSTTransitions(w, mustLoad(t, id)); len(events) != 0 {
			t.Errorf("%s: unexpected events %v", id, events)
		}
	}
}

func TestMidnights(t *testing.T) {
	tokyo := mustLoad(t, "Asia/Tokyo")
	w := NewWindow(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), 96)

	got := Midnights(w, tokyo)
	if len(got) != 2 {
		t.Fatalf("got %d midnights, want 2: %v", len(got), got)
	}
	for _, m := range got {
		local := m.In(tokyo)
		if local.Hour() != 0 || local.Minute() != 0 {
			t.Errorf("%v is not local midnight", local)
		}
		if !w.Contains(m) {
			t.Errorf("%v outside window", m)
		}
	}
	if got[0].In(tokyo).Day() != 1 || got[1].In(tokyo).Day() != 2 {
		t.Errorf("midnights = %v", got)
	}
}

func TestMidnights_StartAtMidnight(t *testing.T) {
	// Start falls exactly on UTC midnight and must be included.
	w := NewWindow(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), 96)
	got := Midnights(w, time.UTC)
	if len(got) != 3 || !got[0].Equal(w.Start) {
		t.Errorf("midnights = %v, start = %v", got, w.Start)
	}
}

func TestMidnights_SkipsGap(t *testing.T) {
	beirut := mustLoad(t, "Asia/Beirut")
	// Beirut springs forward at local midnight on 2024-03-31.
	w := NewWindow(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 96)

	got := Midnights(w, beirut)
	if len(got) != 1 {
		t.Fatalf("got %d midnights, want 1: %v", len(got), got)
	}
	if local := got[0].In(beirut); local.Month() != time.April || local.Day() != 1 {
		t.Errorf("midnight = %v, want 2024-04-01", local)
	}
}

func TestMidnights_SkipsFold(t *testing.T) {
	havana := mustLoad(t, "America/Havana")
	// Havana falls back at 01:00 on 2024-11-03, so 00:00-01:00 happens twice.
	w := NewWindow(time.Date(2024, 11, 3, 16, 0, 0, 0, time.UTC), 96)

	got := Midnights(w, havana)
	if len(got) != 1 {
		t.Fatalf("got %d midnights, want 1: %v", len(got), got)
	}
	if local := got[0].In(havana); local.Month() != time.November || local.Day() != 4 {
		t.Errorf("midnight = %v, want 2024-11-04", local)
	}
	if want := time.Date(2024, 11, 4, 5, 0, 0, 0, time.UTC); !got[0].Equal(want) {
		t.Errorf("midnight = %v, want %v", got[0].UTC(), want)
	}
}

func TestMarkers(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	w := NewWindow(time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), 96)

	markers := Markers(w, ny)
	var dst, midnight int
	for i, m := range markers {
		if i > 0 && m.At.Before(markers[i-1].At) {
			t.Errorf("markers out of order at %d", i)
		}
		if m.Column != w.Column(m.At) {
			t.Errorf("marker column %d, want %d", m.Column, w.Column(m.At))
		}
		switch m.Kind {
		case KindSpringForward:
			dst++
		case KindMidnight:
			midnight++
		}
	}
	if dst != 1 {
		t.Errorf("spring-forward markers = %d, want 1", dst)
	}
	if midnight != 2 {
		t.Errorf("midnight markers = %d, want 2", midnight)
	}
}

func TestDateLabels(t *testing.T) {
	w := NewWindow(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), 96)

	labels := DateLabels(w, time.UTC, DefaultHours())
	// 02 Jun 13:00 is past the end of the window.
	want := []string{"31 May", "01 Jun"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v", labels)
	}
	for i, l := range labels {
		if l.Text != want[i] {
			t.Errorf("label %d = %q, want %q", i, l.Text, want[i])
		}
		if l.At.Hour() != 13 {
			t.Errorf("label %d at hour %d, want 13", i, l.At.Hour())
		}
	}
}

func TestKind_Glyph(t *testing.T) {
	tests := map[Kind]rune{
		KindSpringForward: '⇈',
		KindFallBack:      '⇊',
		KindMidnight:      '┊',
	}
	for k, want := range tests {
		if got := k.Glyph(); got != want {
			t.Errorf("%v.Glyph() = %q, want %q", k, got, want)
		}
	}
}
