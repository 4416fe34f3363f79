package swar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// notationLine is a whitespace separated run of beat tokens.
type notationLine struct {
	Beats []*notationBeat `@@ ( Space @@ )*`
}

// notationBeat is one beat token such as "S", "-", "P:-" or "D/P".
type notationBeat struct {
	Pos   lexer.Position
	Atoms []*notationAtom `@@+`
}

type notationAtom struct {
	Sep  string `  @( Colon | Slash )`
	Dash bool   `| @Dash`
	Name string `| @Name`
}

func (a *notationAtom) String() string {
	switch {
	case a.Sep != "":
		return a.Sep
	case a.Dash:
		return "-"
	default:
		return a.Name
	}
}

func (b *notationBeat) String() string {
	var sb strings.Builder
	for _, a := range b.Atoms {
		sb.WriteString(a.String())
	}
	return sb.String()
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: `\s+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Name", Pattern: `[^\s:/,\-]+`},
})

var notationParser = participle.MustBuild[notationLine](
	participle.Lexer(notationLexer),
)

// Parse parses one line of notation into a Block.
//
// Tokens are separated by whitespace. A bare name is a whole beat, "-"
// continues the previous swar for one beat, "A:B" and "A:B:C:D" split
// the beat in halves or quarters, and "A/B" is a grace pair. Inside a
// split, "-" continues the swar before it and an empty cell is silence.
func Parse(s string, t *Table) (Block, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return Block{}, nil
	}
	line, err := notationParser.ParseString("", s)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return Block{}, &ParseError{Pos: perr.Position().Column, Msg: perr.Message(), Err: ErrParse}
		}
		return Block{}, &ParseError{Msg: err.Error(), Err: ErrParse}
	}
	var blk Block
	for _, nb := range line.Beats {
		bt, err := buildBeat(nb, blk.Beats, t)
		if err != nil {
			return Block{}, err
		}
		blk.Beats = append(blk.Beats, bt)
	}
	return blk, nil
}

// MustParse is like Parse but panics on error. Use it only for
// notation known at compile time.
func MustParse(s string, t *Table) Block {
	blk, err := Parse(s, t)
	if err != nil {
		panic(err)
	}
	return blk
}

// ParseBlocks parses comma separated blocks.
func ParseBlocks(s string, t *Table) (Blocks, error) {
	var bs Blocks
	for i, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		blk, err := Parse(part, t)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		bs = append(bs, blk)
	}
	return bs, nil
}

func buildBeat(nb *notationBeat, prev []Beat, t *Table) (Beat, error) {
	token := nb.String()
	fail := func(msg string, err error) error {
		return &ParseError{Token: token, Pos: nb.Pos.Column, Msg: msg, Err: err}
	}

	cells := [][]*notationAtom{nil}
	var sep string
	for _, a := range nb.Atoms {
		if a.Sep == "" {
			cells[len(cells)-1] = append(cells[len(cells)-1], a)
			continue
		}
		if sep != "" && sep != a.Sep {
			return Beat{}, fail("mixed separators", ErrParse)
		}
		sep = a.Sep
		cells = append(cells, nil)
	}
	for _, c := range cells {
		if len(c) > 1 {
			return Beat{}, fail("malformed cell", ErrParse)
		}
	}

	dangling := fmt.Errorf("%w: %w", ErrParse, ErrStructural)

	if sep == "" {
		a := cells[0][0]
		if a.Dash {
			if !holdPrevious(prev, nil, 1) {
				return Beat{}, fail("nothing to continue", dangling)
			}
			return Beat{}, nil
		}
		p, err := t.Resolve(a.Name)
		if err != nil {
			return Beat{}, fail("unknown note", err)
		}
		return Beat{Swars: []Swar{Note(p)}}, nil
	}

	var shares []float64
	switch {
	case sep == "/" && len(cells) == 2:
		shares = []float64{GraceBeats, 1 - GraceBeats}
	case sep == ":" && len(cells) == 2:
		shares = []float64{0.5, 0.5}
	case sep == ":" && len(cells) == 4:
		shares = []float64{0.25, 0.25, 0.25, 0.25}
	default:
		return Beat{}, fail(fmt.Sprintf("%d cells split by %q", len(cells), sep), ErrParse)
	}

	swars := make([]Swar, 0, len(cells))
	for i, c := range cells {
		share := shares[i]
		switch {
		case len(c) == 0:
			if sep == "/" {
				return Beat{}, fail("grace pair needs two notes", ErrParse)
			}
			swars = append(swars, Swar{Beats: share})
		case c[0].Dash:
			if sep == "/" {
				return Beat{}, fail("grace pair needs two notes", ErrParse)
			}
			if !holdPrevious(prev, swars, share) {
				return Beat{}, fail("nothing to continue", dangling)
			}
			swars = append(swars, Swar{Beats: share, Tie: true})
		default:
			p, err := t.Resolve(c[0].Name)
			if err != nil {
				return Beat{}, fail("unknown note", err)
			}
			swars = append(swars, Swar{Pitch: p, Beats: share})
		}
	}
	return Beat{Swars: swars}, nil
}

// holdPrevious adds beats to the last non-tie swar in cur, or failing
// that in the nearest earlier beat that has one.
func holdPrevious(prev []Beat, cur []Swar, beats float64) bool {
	if j := (Beat{Swars: cur}).lastSounding(len(cur)); j >= 0 {
		cur[j].Held += beats
		return true
	}
	for i := len(prev) - 1; i >= 0; i-- {
		if j := prev[i].lastSounding(len(prev[i].Swars)); j >= 0 {
			prev[i].Swars[j].Held += beats
			return true
		}
	}
	return false
}
