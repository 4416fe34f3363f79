package raag

import "github.com/haivivi/raagas/pkg/swar"

// Direction is the melodic movement of a context window.
type Direction int

const (
	Neither Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "neither"
	}
}

// Classify reports whether the swars of w move along the aroha, along
// the avroha, or neither. A window is ascending when its degree indexes
// in aroha.Degrees() never decrease; descending likewise against
// avroha.Degrees(). Ascending wins when both hold.
func Classify(w swar.Window, aroha, avroha *Scale) Direction {
	if aroha != nil && monotonic(w.Swars, aroha.Degrees()) {
		return Ascending
	}
	if avroha != nil && monotonic(w.Swars, avroha.Degrees()) {
		return Descending
	}
	return Neither
}

func monotonic(window, degrees []swar.Swar) bool {
	if len(window) == 0 {
		return false
	}
	prev := -1
	for _, sw := range window {
		i := degreeIndex(degrees, sw)
		if i < 0 || i < prev {
			return false
		}
		prev = i
	}
	return true
}

// degreeIndex finds sw by frequency, falling back to its tone so that an
// octave outside the three registers still maps to its pitch class.
func degreeIndex(degrees []swar.Swar, sw swar.Swar) int {
	if !sw.HasPitch() {
		return -1
	}
	for i, d := range degrees {
		if d.Equal(sw) {
			return i
		}
	}
	for i, d := range degrees {
		if d.Pitch.Tone() == sw.Pitch.Tone() {
			return i
		}
	}
	return -1
}
