package timeline

import (
	"sort"
	"time"

	"github.com/alltz-dev/alltz/internal/tz"
)

// Kind classifies a timeline event
type Kind int

const (
	// KindSpringForward marks a UTC offset increase (clocks jump ahead)
	KindSpringForward Kind = iota
	// KindFallBack marks a UTC offset decrease (clocks repeat an hour)
	KindFallBack
	// KindMidnight marks the start of a local calendar day
	KindMidnight
)

func (k Kind) String() string {
	switch k {
	case KindSpringForward:
		return "spring-forward"
	case KindFallBack:
		return "fall-back"
	case KindMidnight:
		return "midnight"
	default:
		return "unknown"
	}
}

// Glyph returns the character drawn for the event
func (k Kind) Glyph() rune {
	switch k {
	case KindSpringForward:
		return '⇈'
	case KindFallBack:
		return '⇊'
	default:
		return '┊'
	}
}

// Event is a point of interest on one zone's timeline
type Event struct {
	At   time.Time
	Kind Kind
}

// Marker is an event placed on a column
type Marker struct {
	Column int
	Kind   Kind
	At     time.Time
}

// DateLabel is a local date drawn at the middle of its work day
type DateLabel struct {
	Column int
	Text   string
	At     time.Time
}

// DSTTransitions walks the window hour by hour and reports every boundary
// where the offset one hour later differs. Events sit on the scanned hour,
// so a transition between grid points is reported up to an hour early.
func DSTTransitions(w Window, loc *time.Location) []Event {
	var events []Event
	for cur := w.Start; cur.Before(w.End); cur = cur.Add(time.Hour) {
		before := tz.OffsetAt(loc, cur)
		after := tz.OffsetAt(loc, cur.Add(time.Hour))
		switch {
		case after > before:
			events = append(events, Event{At: cur, Kind: KindSpringForward})
		case after < before:
			events = append(events, Event{At: cur, Kind: KindFallBack})
		}
	}
	return events
}

// Midnights returns each local 00:00 inside [Start, End). Midnights that
// fall in a DST gap or fold do not have a single instant and are skipped.
func Midnights(w Window, loc *time.Location) []time.Time {
	var out []time.Time
	forEachLocalDate(w, loc, true, func(y int, m time.Month, d int) {
		inst, ok := tz.ResolveMidnight(loc, y, m, d).Instant()
		if ok && w.Contains(inst) {
			out = append(out, inst)
		}
	})
	return out
}

// Markers places DST transitions and midnights on columns, in time order.
// An unrenderable window has no markers.
func Markers(w Window, loc *time.Location) []Marker {
	if !w.Renderable() {
		return nil
	}

	var markers []Marker
	for _, e := range DSTTransitions(w, loc) {
		markers = append(markers, Marker{Column: w.Column(e.At), Kind: e.Kind, At: e.At})
	}
	for _, m := range Midnights(w, loc) {
		markers = append(markers, Marker{Column: w.Column(m), Kind: KindMidnight, At: m})
	}

	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].At.Before(markers[j].At)
	})
	return markers
}

// DateLabels returns one "02 Jan" label per visible local date, positioned
// at the middle of that day's work hours.
func DateLabels(w Window, loc *time.Location, hours Hours) []DateLabel {
	if !w.Renderable() {
		return nil
	}

	mid := hours.WorkMidpoint()
	var labels []DateLabel
	forEachLocalDate(w, loc, false, func(y int, m time.Month, d int) {
		inst, ok := tz.Resolve(loc, y, m, d, mid, 0, 0).Instant()
		if !ok || !w.Contains(inst) {
			return
		}
		labels = append(labels, DateLabel{
			Column: w.Column(inst),
			Text:   inst.In(loc).Format("02 Jan"),
			At:     inst,
		})
	})
	return labels
}

// forEachLocalDate calls fn for every local calendar date from the date of
// Start through the date of End. With skipPartial, the first date is skipped
// unless Start is exactly local midnight.
func forEachLocalDate(w Window, loc *time.Location, skipPartial bool, fn func(int, time.Month, int)) {
	localStart := w.Start.In(loc)
	localEnd := w.End.In(loc)

	y, m, d := localStart.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if skipPartial && !isMidnight(localStart) {
		date = date.AddDate(0, 0, 1)
	}

	ey, em, ed := localEnd.Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)

	for !date.After(last) {
		fn(date.Year(), date.Month(), date.Day())
		date = date.AddDate(0, 0, 1)
	}
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
