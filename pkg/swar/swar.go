package swar

import "math"

// GraceBeats is the slot share of a kan swar (grace note).
const GraceBeats = 0.2

// epsilon is the tolerance for beat arithmetic.
const epsilon = 1e-9

// Swar is a note or a silence occupying part of a beat.
type Swar struct {
	// Pitch is the resolved note. The zero Pitch is silence.
	Pitch Pitch `json:"pitch" yaml:"pitch"`

	// Beats is the share of the enclosing beat: 1, 0.5, 0.25,
	// GraceBeats or its complement.
	Beats float64 `json:"beats" yaml:"beats"`

	// Held is extra duration carried over from continuations.
	Held float64 `json:"held,omitempty" yaml:"held,omitempty"`

	// Tie marks a slot that continues the previous swar.
	Tie bool `json:"tie,omitempty" yaml:"tie,omitempty"`
}

// Note returns a pitched swar occupying a whole beat.
func Note(p Pitch) Swar {
	return Swar{Pitch: p, Beats: 1}
}

// BeatCount returns the sounding duration in beats.
func (s Swar) BeatCount() float64 {
	return s.Beats + s.Held
}

// HasPitch reports whether s sounds a note.
func (s Swar) HasPitch() bool {
	return !s.Tie && !s.Pitch.IsZero()
}

// IsRest reports whether s is an explicit silence.
func (s Swar) IsRest() bool {
	return !s.Tie && s.Pitch.IsZero()
}

// Equal reports whether s and o sound the same frequency, or are both
// silent. Beat counts and octave spelling are ignored.
func (s Swar) Equal(o Swar) bool {
	if s.HasPitch() != o.HasPitch() {
		return false
	}
	if !s.HasPitch() {
		return true
	}
	return sameFreq(s.Pitch.Freq(), o.Pitch.Freq())
}

func (s Swar) String() string {
	switch {
	case s.Tie:
		return "-"
	case s.Pitch.IsZero():
		return ""
	default:
		return s.Pitch.Name()
	}
}

func sameFreq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
