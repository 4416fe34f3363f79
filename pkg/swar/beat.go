package swar

// Beat is one rhythmic beat. An empty Beat continues the previous swar.
type Beat struct {
	Swars []Swar `json:"swars" yaml:"swars"`
}

// IsEmpty reports whether b is a continuation marker.
func (b Beat) IsEmpty() bool {
	return len(b.Swars) == 0
}

// Sum returns the total slot share of b, ties included.
func (b Beat) Sum() float64 {
	var sum float64
	for _, s := range b.Swars {
		sum += s.Beats
	}
	return sum
}

// Valid reports whether b follows one of the subdivision patterns:
// empty, one whole, two halves, a grace pair, or four quarters.
func (b Beat) Valid() bool {
	switch len(b.Swars) {
	case 0:
		return true
	case 1:
		return near(b.Swars[0].Beats, 1)
	case 2:
		a, c := b.Swars[0].Beats, b.Swars[1].Beats
		if !near(a+c, 1) {
			return false
		}
		return near(a, 0.5) || near(a, GraceBeats)
	case 4:
		for _, s := range b.Swars {
			if !near(s.Beats, 0.25) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsGrace reports whether b is a kan swar pair.
func (b Beat) IsGrace() bool {
	return len(b.Swars) == 2 && near(b.Swars[0].Beats, GraceBeats)
}

// HasPitch reports whether any swar in b sounds a note.
func (b Beat) HasPitch() bool {
	for _, s := range b.Swars {
		if s.HasPitch() {
			return true
		}
	}
	return false
}

// Pitched returns the indexes of the swars in b that sound a note.
func (b Beat) Pitched() []int {
	var idx []int
	for i, s := range b.Swars {
		if s.HasPitch() {
			idx = append(idx, i)
		}
	}
	return idx
}

// lastPitched returns the index of the last pitched swar before i, or -1.
func (b Beat) lastPitched(i int) int {
	if i > len(b.Swars) {
		i = len(b.Swars)
	}
	for j := i - 1; j >= 0; j-- {
		if b.Swars[j].HasPitch() {
			return j
		}
	}
	return -1
}

// firstPitched returns the index of the first pitched swar after i, or -1.
func (b Beat) firstPitched(i int) int {
	for j := max(i+1, 0); j < len(b.Swars); j++ {
		if b.Swars[j].HasPitch() {
			return j
		}
	}
	return -1
}

// lastSounding returns the index of the last non-tie swar, or -1.
// Rests count: a "-" after a rest lengthens the rest.
func (b Beat) lastSounding(i int) int {
	if i > len(b.Swars) {
		i = len(b.Swars)
	}
	for j := i - 1; j >= 0; j-- {
		if !b.Swars[j].Tie {
			return j
		}
	}
	return -1
}

func (b Beat) clone() Beat {
	if b.Swars == nil {
		return Beat{}
	}
	swars := make([]Swar, len(b.Swars))
	copy(swars, b.Swars)
	return Beat{Swars: swars}
}
