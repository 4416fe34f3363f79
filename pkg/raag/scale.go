package raag

import (
	"fmt"

	"github.com/haivivi/raagas/pkg/swar"
)

// Scale is an aroha or avroha together with its derived lower and
// higher octave forms.
type Scale struct {
	dir    Direction
	table  *swar.Table
	blocks swar.Blocks
	lower  swar.Blocks
	higher swar.Blocks
}

// NewAroha builds the ascending scale and derives its octave forms.
func NewAroha(bs swar.Blocks, t *swar.Table) (*Scale, error) {
	return newScale(Ascending, bs, t)
}

// NewAvroha builds the descending scale and derives its octave forms.
func NewAvroha(bs swar.Blocks, t *swar.Table) (*Scale, error) {
	return newScale(Descending, bs, t)
}

func newScale(dir Direction, bs swar.Blocks, t *swar.Table) (*Scale, error) {
	s := &Scale{dir: dir, table: t, blocks: bs}
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild recomputes the lower and higher octave forms.
func (s *Scale) Rebuild() error {
	lower, err := s.blocks.Lower(s.table)
	if err != nil {
		return fmt.Errorf("%s lower octave: %w", s.Name(), err)
	}
	higher, err := s.blocks.Higher(s.table)
	if err != nil {
		return fmt.Errorf("%s higher octave: %w", s.Name(), err)
	}
	s.lower, s.higher = lower, higher
	return nil
}

// Name returns "aroha" or "avroha".
func (s *Scale) Name() string {
	if s.dir == Descending {
		return "avroha"
	}
	return "aroha"
}

// Direction returns Ascending for an aroha and Descending for an avroha.
func (s *Scale) Direction() Direction { return s.dir }

// Blocks returns the scale as written. Callers must not modify it.
func (s *Scale) Blocks() swar.Blocks { return s.blocks }

// Lower returns the scale one octave down, boundary tonics trimmed.
func (s *Scale) Lower() swar.Blocks { return s.lower }

// Higher returns the scale one octave up, boundary tonics trimmed.
func (s *Scale) Higher() swar.Blocks { return s.higher }

// Views returns the three registers in the scale's direction: lower,
// middle, higher for an aroha and higher, middle, lower for an avroha.
func (s *Scale) Views() []swar.Blocks {
	if s.dir == Descending {
		return []swar.Blocks{s.higher, s.blocks, s.lower}
	}
	return []swar.Blocks{s.lower, s.blocks, s.higher}
}

// Degrees returns the pitched swars of all three views in order.
func (s *Scale) Degrees() []swar.Swar {
	var out []swar.Swar
	for _, v := range s.Views() {
		out = append(out, v.Pitched()...)
	}
	return out
}

// Context returns the neighbourhood of sw inside the first view that
// contains it.
func (s *Scale) Context(sw swar.Swar) (swar.Window, bool) {
	for _, v := range s.Views() {
		loc, ok := v.Index(sw)
		if !ok {
			continue
		}
		w, err := v.Adjacent(loc)
		if err != nil {
			return swar.Window{}, false
		}
		return w, true
	}
	return swar.Window{}, false
}

func (s *Scale) String() string {
	return s.blocks.String()
}
