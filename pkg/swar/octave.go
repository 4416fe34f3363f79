package swar

import "fmt"

// OctaveSpan returns the part of a scale that is shifted into the
// neighbouring octaves: the scale without its boundary tonic on either
// end. The lower boundary is the first pitched beat after beat 0 of the
// first block. The upper boundary is the last pitched beat of the last
// block, trailing continuations skipped; it is excluded. Blocks in
// between are kept whole.
func (bs Blocks) OctaveSpan() (Blocks, error) {
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w: empty scale", ErrStructural)
	}
	if bs.Len() < 2 {
		return nil, fmt.Errorf("%w: scale of %d beats has no octave span", ErrStructural, bs.Len())
	}

	first := bs[0]
	start := -1
	for i := 1; i < len(first.Beats); i++ {
		if first.Beats[i].HasPitch() {
			start = i
			break
		}
	}

	last := bs[len(bs)-1]
	end := -1
	for i := len(last.Beats) - 1; i >= 0; i-- {
		if last.Beats[i].HasPitch() {
			end = i
			break
		}
	}

	if len(bs) == 1 {
		if start < 0 || end < 0 || start >= end {
			return nil, fmt.Errorf("%w: no notes between the boundary tonics", ErrStructural)
		}
		return Blocks{{Beats: first.Clone().Beats[start:end]}}, nil
	}

	if start < 0 || end < 0 {
		return nil, fmt.Errorf("%w: no notes between the boundary tonics", ErrStructural)
	}
	var span Blocks
	if head := first.Clone().Beats[start:]; len(head) > 0 {
		span = append(span, Block{Beats: head})
	}
	for _, b := range bs[1 : len(bs)-1] {
		span = append(span, b.Clone())
	}
	if tail := last.Clone().Beats[:end]; len(tail) > 0 {
		span = append(span, Block{Beats: tail})
	}
	if len(span.Pitched()) == 0 {
		return nil, fmt.Errorf("%w: no notes between the boundary tonics", ErrStructural)
	}
	return span, nil
}

// Lower returns the octave span shifted one octave down.
func (bs Blocks) Lower(t *Table) (Blocks, error) {
	return bs.shiftSpan(t, Pitch.Lower)
}

// Higher returns the octave span shifted one octave up.
func (bs Blocks) Higher(t *Table) (Blocks, error) {
	return bs.shiftSpan(t, Pitch.Higher)
}

func (bs Blocks) shiftSpan(t *Table, shift func(Pitch, *Table) (Pitch, error)) (Blocks, error) {
	span, err := bs.OctaveSpan()
	if err != nil {
		return nil, err
	}
	for i := range span {
		for j := range span[i].Beats {
			swars := span[i].Beats[j].Swars
			for k := range swars {
				if !swars[k].HasPitch() {
					continue
				}
				p, err := shift(swars[k].Pitch, t)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrStructural, err)
				}
				swars[k].Pitch = p
			}
		}
	}
	return span, nil
}
