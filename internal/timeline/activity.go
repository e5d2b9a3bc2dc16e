package timeline

import "time"

// Activity is the coarse state of a local hour
type Activity int

const (
	Night Activity = iota
	Awake
	Work
)

func (a Activity) String() string {
	switch a {
	case Work:
		return "work"
	case Awake:
		return "awake"
	default:
		return "night"
	}
}

// Glyph returns the shading character for the activity
func (a Activity) Glyph() rune {
	switch a {
	case Work:
		return '▓'
	case Awake:
		return '▒'
	default:
		return '░'
	}
}

// Hours holds the local hour ranges used for shading. Start is inclusive,
// end exclusive; everything outside the awake range is night.
type Hours struct {
	WorkStart  int
	WorkEnd    int
	AwakeStart int
	AwakeEnd   int
}

// DefaultHours returns 08-18 work and 06-22 awake
func DefaultHours() Hours {
	return Hours{
		WorkStart:  8,
		WorkEnd:    18,
		AwakeStart: 6,
		AwakeEnd:   22,
	}
}

// Activity classifies a local hour
func (h Hours) Activity(hour int) Activity {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour >= h.WorkStart && hour < h.WorkEnd:
		return Work
	case hour >= h.AwakeStart && hour < h.AwakeEnd:
		return Awake
	default:
		return Night
	}
}

// WorkMidpoint is the hour in the middle of the work range
func (h Hours) WorkMidpoint() int {
	return (h.WorkStart + h.WorkEnd) / 2
}

// Valid reports whether every bound is an hour of the day and each range
// is non-empty.
func (h Hours) Valid() bool {
	for _, v := range []int{h.WorkStart, h.WorkEnd, h.AwakeStart, h.AwakeEnd} {
		if v < 0 || v > 24 {
			return false
		}
	}
	return h.WorkStart < h.WorkEnd && h.AwakeStart < h.AwakeEnd
}

// Shade returns the activity of every column of w in loc
func Shade(w Window, loc *time.Location, h Hours) []Activity {
	if w.Width <= 0 {
		return nil
	}
	out := make([]Activity, w.Width)
	for i := range out {
		out[i] = h.Activity(w.InstantAt(i).In(loc).Hour())
	}
	return out
}
