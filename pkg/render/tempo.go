// Package render turns raag event streams into timed notes.
//
// A Renderer receives the lazy event sequence of a phrase or a whole
// performance plan and prints a timeline or collects notes. Audio
// synthesis is out of scope.
package render

import (
	"time"

	"github.com/haivivi/raagas/pkg/swar"
)

// DefaultBeatsPerSecond is 120 BPM.
const DefaultBeatsPerSecond = 2.0

// Tempo is a flat beats-per-second rate.
type Tempo struct {
	BeatsPerSecond float64
}

// DefaultTempo returns the 120 BPM tempo.
func DefaultTempo() Tempo {
	return Tempo{BeatsPerSecond: DefaultBeatsPerSecond}
}

// BPM returns the rate in beats per minute.
func (t Tempo) BPM() float64 {
	return t.rate() * 60
}

// Duration converts a beat count to wall time.
func (t Tempo) Duration(beats float64) time.Duration {
	return time.Duration(beats / t.rate() * float64(time.Second))
}

func (t Tempo) rate() float64 {
	if t.BeatsPerSecond <= 0 {
		return DefaultBeatsPerSecond
	}
	return t.BeatsPerSecond
}

// Note is a frequency held for a duration. Freq is Rest for silence.
type Note struct {
	Freq float64       `json:"freq" yaml:"freq"`
	Dur  time.Duration `json:"dur" yaml:"dur"`
}

// Rest is the frequency of a silent note.
const Rest = 0.0

// ToNote converts an event using tempo t.
func (t Tempo) ToNote(ev swar.Event) Note {
	return Note{Freq: ev.Pitch.Freq(), Dur: t.Duration(ev.Beats)}
}

// TotalDuration returns the summed duration of notes.
func TotalDuration(notes []Note) time.Duration {
	var total time.Duration
	for _, n := range notes {
		total += n.Dur
	}
	return total
}

// Metronome generates a click per beat, accenting the sam.
type Metronome struct {
	Tempo Tempo

	// Beats is the number of clicks to generate.
	Beats int

	// Cycle is the number of beats in one taal cycle; Sam is the
	// 1-based beat of the cycle that is accented.
	Cycle int
	Sam   int

	HighFreq float64
	LowFreq  float64
	Click    time.Duration
}

// DefaultMetronome returns a 16-beat cycle metronome with the sam on 1.
func DefaultMetronome(tempo Tempo, beats int) Metronome {
	return Metronome{
		Tempo:    tempo,
		Beats:    beats,
		Cycle:    16,
		Sam:      1,
		HighFreq: 1200,
		LowFreq:  800,
		Click:    30 * time.Millisecond,
	}
}

// Generate returns the click track.
func (m Metronome) Generate() []Note {
	beat := m.Tempo.Duration(1)
	cycle := max(m.Cycle, 1)
	sam := (max(m.Sam, 1) - 1) % cycle

	notes := make([]Note, 0, m.Beats*2)
	for i := range m.Beats {
		freq := m.LowFreq
		if i%cycle == sam {
			freq = m.HighFreq
		}
		click := min(m.Click, beat)
		notes = append(notes, Note{Freq: freq, Dur: click})
		if rest := beat - click; rest > 0 {
			notes = append(notes, Note{Freq: Rest, Dur: rest})
		}
	}
	return notes
}
