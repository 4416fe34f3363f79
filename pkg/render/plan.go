package render

import (
	"iter"

	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/swar"
)

const (
	// PauseBeats is the silence between parts of a performance.
	PauseBeats = 2.0

	// TihayiTimes is how often the tihayi is played.
	TihayiTimes = 3
)

// Part is one section of a performance.
type Part struct {
	Name   string
	Blocks swar.Blocks
	Repeat int
}

// Performance is an ordered list of parts separated by pauses.
type Performance struct {
	Parts []Part
	Pause float64
}

// Plan builds the performance of r: aroha, avroha, pakad, the
// swarmaalika sequence and finally the tihayi, played TihayiTimes times.
func Plan(r *raag.Raag) Performance {
	p := Performance{Pause: PauseBeats}
	add := func(name string, bs swar.Blocks, repeat int) {
		if len(bs) > 0 {
			p.Parts = append(p.Parts, Part{Name: name, Blocks: bs, Repeat: repeat})
		}
	}
	if r.Aroha != nil {
		add(raag.PartAroha, r.Aroha.Blocks(), 1)
	}
	if r.Avroha != nil {
		add(raag.PartAvroha, r.Avroha.Blocks(), 1)
	}
	add(raag.PartPakad, r.Pakad, 1)
	if sm := r.Swarmaalika; sm != nil {
		for _, l := range sm.Sequence() {
			add(l.Tag, l.Blocks, 1)
		}
		add(raag.PartTihayi, sm.Tihayi, TihayiTimes)
	}
	return p
}

// Beats returns the total length of p in beats, pauses included.
func (p Performance) Beats() float64 {
	var total float64
	for ev := range p.Events() {
		total += ev.Beats
	}
	return total
}

// Events yields the whole performance with a rest between parts.
func (p Performance) Events() iter.Seq[swar.Event] {
	return func(yield func(swar.Event) bool) {
		for i, part := range p.Parts {
			if i > 0 && p.Pause > 0 {
				if !yield(swar.Event{Beats: p.Pause}) {
					return
				}
			}
			for range max(part.Repeat, 1) {
				for ev := range part.Blocks.Events() {
					if !yield(ev) {
						return
					}
				}
			}
		}
	}
}
