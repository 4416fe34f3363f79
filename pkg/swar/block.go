package swar

import (
	"fmt"
	"iter"
	"strings"
)

// Block is one contiguous phrase.
type Block struct {
	Beats []Beat `json:"beats" yaml:"beats"`
}

// Len returns the number of beats in b.
func (b Block) Len() int {
	return len(b.Beats)
}

// Extend lengthens the last pitched swar of b by beats.
func (b *Block) Extend(beats float64) error {
	for i := len(b.Beats) - 1; i >= 0; i-- {
		if j := b.Beats[i].lastPitched(len(b.Beats[i].Swars)); j >= 0 {
			b.Beats[i].Swars[j].Held += beats
			return nil
		}
	}
	return fmt.Errorf("%w: no pitched swar to extend", ErrStructural)
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	if b.Beats == nil {
		return Block{}
	}
	beats := make([]Beat, len(b.Beats))
	for i, bt := range b.Beats {
		beats[i] = bt.clone()
	}
	return Block{Beats: beats}
}

// Validate checks the subdivision of every beat.
func (b Block) Validate() error {
	for i, bt := range b.Beats {
		if !bt.Valid() {
			return fmt.Errorf("%w: beat %d does not subdivide one beat (sum %.3f)", ErrStructural, i, bt.Sum())
		}
	}
	return nil
}

// String renders b in notation. Parse(b.String()) reproduces b.
func (b Block) String() string {
	tokens := make([]string, len(b.Beats))
	for i, bt := range b.Beats {
		tokens[i] = renderBeat(bt)
	}
	return strings.Join(tokens, " ")
}

func renderBeat(bt Beat) string {
	if bt.IsEmpty() {
		return "-"
	}
	if len(bt.Swars) == 1 {
		return bt.Swars[0].String()
	}
	sep := ":"
	if bt.IsGrace() {
		sep = "/"
	}
	cells := make([]string, len(bt.Swars))
	for i, s := range bt.Swars {
		cells[i] = s.String()
	}
	return strings.Join(cells, sep)
}

// Blocks is an ordered phrase group.
type Blocks []Block

// Locator addresses one swar inside a Blocks tree.
type Locator struct {
	Block int `json:"block" yaml:"block"`
	Beat  int `json:"beat" yaml:"beat"`
	Swar  int `json:"swar" yaml:"swar"`
}

func (l Locator) String() string {
	return fmt.Sprintf("%d.%d.%d", l.Block, l.Beat, l.Swar)
}

// Less orders locators by position in the tree.
func (l Locator) Less(o Locator) bool {
	if l.Block != o.Block {
		return l.Block < o.Block
	}
	if l.Beat != o.Beat {
		return l.Beat < o.Beat
	}
	return l.Swar < o.Swar
}

// At returns a cursor to the swar at loc.
func (bs Blocks) At(loc Locator) (*Swar, error) {
	bt, err := bs.BeatAt(loc)
	if err != nil {
		return nil, err
	}
	if loc.Swar < 0 || loc.Swar >= len(bt.Swars) {
		return nil, fmt.Errorf("%w: swar %s out of range", ErrStructural, loc)
	}
	return &bt.Swars[loc.Swar], nil
}

// BeatAt returns a cursor to the beat containing loc. loc.Swar is ignored.
func (bs Blocks) BeatAt(loc Locator) (*Beat, error) {
	if loc.Block < 0 || loc.Block >= len(bs) {
		return nil, fmt.Errorf("%w: block %d out of range", ErrStructural, loc.Block)
	}
	blk := &bs[loc.Block]
	if loc.Beat < 0 || loc.Beat >= len(blk.Beats) {
		return nil, fmt.Errorf("%w: beat %d.%d out of range", ErrStructural, loc.Block, loc.Beat)
	}
	return &blk.Beats[loc.Beat], nil
}

// Clone returns a deep copy of bs.
func (bs Blocks) Clone() Blocks {
	if bs == nil {
		return nil
	}
	out := make(Blocks, len(bs))
	for i, b := range bs {
		out[i] = b.Clone()
	}
	return out
}

// Validate checks the subdivision of every beat in every block.
func (bs Blocks) Validate() error {
	for i, b := range bs {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of beats across all blocks.
func (bs Blocks) Len() int {
	var n int
	for _, b := range bs {
		n += len(b.Beats)
	}
	return n
}

// Pitched returns every pitched swar in order.
func (bs Blocks) Pitched() []Swar {
	var out []Swar
	for _, b := range bs {
		for _, bt := range b.Beats {
			for _, s := range bt.Swars {
				if s.HasPitch() {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// Index returns the locator of the first pitched swar equal to sw.
func (bs Blocks) Index(sw Swar) (Locator, bool) {
	for i, b := range bs {
		for j, bt := range b.Beats {
			for k, s := range bt.Swars {
				if s.HasPitch() && s.Equal(sw) {
					return Locator{Block: i, Beat: j, Swar: k}, true
				}
			}
		}
	}
	return Locator{}, false
}

// Concat joins bs into a single block.
func (bs Blocks) Concat() Block {
	var out Block
	for _, b := range bs {
		out.Beats = append(out.Beats, b.Clone().Beats...)
	}
	return out
}

func (bs Blocks) String() string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

// Event is one sounding note or silence handed to a renderer.
type Event struct {
	// Pitch is zero for silence.
	Pitch Pitch

	// Beats is the full duration, continuations included.
	Beats float64
}

// Events yields every note and rest of b in order. Ties and empty
// beats produce nothing; their duration is already folded into Beats.
func (b Block) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, bt := range b.Beats {
			for _, s := range bt.Swars {
				if s.Tie {
					continue
				}
				if !yield(Event{Pitch: s.Pitch, Beats: s.BeatCount()}) {
					return
				}
			}
		}
	}
}

// Events yields the events of every block in order.
func (bs Blocks) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, b := range bs {
			for ev := range b.Events() {
				if !yield(ev) {
					return
				}
			}
		}
	}
}
