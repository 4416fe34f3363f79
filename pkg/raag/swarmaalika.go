package raag

import (
	"fmt"

	"github.com/haivivi/raagas/pkg/swar"
)

// Section names.
const (
	Sthayi = "sthayi"
	Antara = "antara"
)

// ReturnLine is the sthayi line repeated after the last sthayi line.
const ReturnLine = "lineA"

// Line is one tagged line of a section, e.g. "lineA".
type Line struct {
	Tag    string
	Blocks swar.Blocks
}

// Section is an ordered list of lines.
type Section struct {
	Name  string
	Lines []Line
}

// Line returns the blocks of the line tagged tag.
func (s Section) Line(tag string) (swar.Blocks, error) {
	for _, l := range s.Lines {
		if l.Tag == tag {
			return l.Blocks, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has no line %q", swar.ErrStructural, s.Name, tag)
}

// Swarmaalika is a composed song in two sections.
type Swarmaalika struct {
	// Sam is the beat of the cycle the composition starts on. Defaults to 1.
	Sam int

	Mukra  swar.Blocks
	Sthayi Section
	Antara Section
	Tihayi swar.Blocks
}

// Line returns the line tagged tag from either section.
func (s *Swarmaalika) Line(tag string) (swar.Blocks, error) {
	if bs, err := s.Sthayi.Line(tag); err == nil {
		return bs, nil
	}
	if bs, err := s.Antara.Line(tag); err == nil {
		return bs, nil
	}
	return nil, fmt.Errorf("%w: swarmaalika has no line %q", swar.ErrStructural, tag)
}

// Sequence returns the lines in performance order: the mukra, the sthayi
// lines followed by a return to lineA, then the antara lines. Tags are
// qualified by section, e.g. "sthayi/lineB". The tihayi is not included.
func (s *Swarmaalika) Sequence() []Line {
	var out []Line
	if len(s.Mukra) > 0 {
		out = append(out, Line{Tag: PartMukra, Blocks: s.Mukra})
	}
	for _, l := range s.Sthayi.Lines {
		out = append(out, Line{Tag: Sthayi + "/" + l.Tag, Blocks: l.Blocks})
	}
	if bs, err := s.Sthayi.Line(ReturnLine); err == nil {
		out = append(out, Line{Tag: Sthayi + "/" + ReturnLine, Blocks: bs})
	}
	for _, l := range s.Antara.Lines {
		out = append(out, Line{Tag: Antara + "/" + l.Tag, Blocks: l.Blocks})
	}
	return out
}
