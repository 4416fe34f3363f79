package raag

import (
	"iter"

	"github.com/haivivi/raagas/pkg/swar"
)

// MelodyKind is the shape held by a Melody.
type MelodyKind int

const (
	MelodyRaag MelodyKind = iota
	MelodyBlock
	MelodyBlocks
)

func (k MelodyKind) String() string {
	switch k {
	case MelodyRaag:
		return "raag"
	case MelodyBlock:
		return "block"
	case MelodyBlocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// Melody is anything that can be played: a whole raag, one phrase or a
// phrase group. Exactly one field matching Kind is set.
type Melody struct {
	Kind   MelodyKind
	Raag   *Raag
	Block  swar.Block
	Blocks swar.Blocks
}

// RaagMelody wraps a raag.
func RaagMelody(r *Raag) Melody { return Melody{Kind: MelodyRaag, Raag: r} }

// BlockMelody wraps a single phrase.
func BlockMelody(b swar.Block) Melody { return Melody{Kind: MelodyBlock, Block: b} }

// BlocksMelody wraps a phrase group.
func BlocksMelody(bs swar.Blocks) Melody { return Melody{Kind: MelodyBlocks, Blocks: bs} }

// Events yields the notes of m in performance order. A raag plays its
// aroha, avroha, pakad and swarmaalika sequence.
func (m Melody) Events() iter.Seq[swar.Event] {
	switch m.Kind {
	case MelodyBlock:
		return m.Block.Events()
	case MelodyBlocks:
		return m.Blocks.Events()
	}
	return func(yield func(swar.Event) bool) {
		if m.Raag == nil {
			return
		}
		for _, bs := range m.Raag.Sections() {
			for ev := range bs.Events() {
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// Sections returns the phrase groups of r in performance order.
func (r *Raag) Sections() []swar.Blocks {
	var out []swar.Blocks
	if r.Aroha != nil {
		out = append(out, r.Aroha.Blocks())
	}
	if r.Avroha != nil {
		out = append(out, r.Avroha.Blocks())
	}
	if len(r.Pakad) > 0 {
		out = append(out, r.Pakad)
	}
	if r.Swarmaalika != nil {
		for _, l := range r.Swarmaalika.Sequence() {
			out = append(out, l.Blocks)
		}
	}
	return out
}
