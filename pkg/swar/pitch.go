package swar

import (
	"fmt"
	"sort"
	"strings"
)

// octaveMark is the octave marker: a prefix lowers, a suffix raises.
const octaveMark = "."

// Hertz is a resolved frequency with its western tone label.
type Hertz struct {
	Freq float64
	Tone string
}

// Pitch is a note name resolved through a Table.
// The zero Pitch is silence.
type Pitch struct {
	name string
	hz   Hertz
}

// Name returns the notation token, e.g. "R", ".D" or "S.".
func (p Pitch) Name() string { return p.name }

// Hertz returns the resolved frequency and tone.
func (p Pitch) Hertz() Hertz { return p.hz }

// Freq returns the resolved frequency in Hz.
func (p Pitch) Freq() float64 { return p.hz.Freq }

// Tone returns the western tone label, e.g. "C#".
func (p Pitch) Tone() string { return p.hz.Tone }

// IsZero reports whether p is silence.
func (p Pitch) IsZero() bool { return p.name == "" }

func (p Pitch) String() string {
	return p.name
}

// MarshalText encodes p as its note name.
func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

// Lower returns the same degree one octave down: "R" -> ".R", "R." -> "R".
func (p Pitch) Lower(t *Table) (Pitch, error) {
	if p.IsZero() {
		return p, nil
	}
	if strings.HasSuffix(p.name, octaveMark) {
		return t.Resolve(strings.TrimSuffix(p.name, octaveMark))
	}
	return t.Resolve(octaveMark + p.name)
}

// Higher returns the same degree one octave up: "R" -> "R.", ".R" -> "R".
func (p Pitch) Higher(t *Table) (Pitch, error) {
	if p.IsZero() {
		return p, nil
	}
	if strings.HasPrefix(p.name, octaveMark) {
		return t.Resolve(strings.TrimPrefix(p.name, octaveMark))
	}
	return t.Resolve(p.name + octaveMark)
}

// middleOctave is the madhya saptak, tonic tuned to C#.
var middleOctave = []struct {
	name string
	hz   Hertz
}{
	{"S", Hertz{277.18, "C#"}},
	{"r", Hertz{293.66, "D"}},
	{"R", Hertz{311.13, "D#"}},
	{"g", Hertz{329.63, "E"}},
	{"G", Hertz{349.23, "F"}},
	{"M", Hertz{369.99, "F#"}},
	{"M'", Hertz{392.00, "G"}},
	{"P", Hertz{415.30, "G#"}},
	{"d", Hertz{440.00, "A"}},
	{"D", Hertz{466.16, "A#"}},
	{"n", Hertz{493.88, "B"}},
	{"N", Hertz{523.25, "C"}},
}

// Table maps note names to frequencies. A Table is read-only once
// built and may be shared.
type Table struct {
	entries map[string]Hertz
}

// NewTable builds the standard three-octave table: the middle octave,
// a lower octave marked with a "." prefix and a higher octave marked
// with a "." suffix.
func NewTable() *Table {
	t := &Table{entries: make(map[string]Hertz, len(middleOctave)*3)}
	for _, e := range middleOctave {
		t.entries[e.name] = e.hz
		t.entries[octaveMark+e.name] = Hertz{Freq: e.hz.Freq / 2, Tone: e.hz.Tone}
		t.entries[e.name+octaveMark] = Hertz{Freq: e.hz.Freq * 2, Tone: e.hz.Tone}
	}
	return t
}

// Lookup returns the frequency for name.
func (t *Table) Lookup(name string) (Hertz, bool) {
	hz, ok := t.entries[name]
	return hz, ok
}

// Resolve returns the Pitch for name or an error wrapping ErrLookup.
func (t *Table) Resolve(name string) (Pitch, error) {
	hz, ok := t.entries[name]
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrLookup, name)
	}
	return Pitch{name: name, hz: hz}, nil
}

// MustResolve is like Resolve but panics on unknown names.
// Use it only for names known at compile time.
func (t *Table) MustResolve(name string) Pitch {
	p, err := t.Resolve(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns all note names ordered by frequency.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		fi, fj := t.entries[names[i]].Freq, t.entries[names[j]].Freq
		if fi != fj {
			return fi < fj
		}
		return names[i] < names[j]
	})
	return names
}
