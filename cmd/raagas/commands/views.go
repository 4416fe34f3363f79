package commands

import (
	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/swar"
)

type swarView struct {
	Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
	Tone  string  `json:"tone,omitempty" yaml:"tone,omitempty"`
	Freq  float64 `json:"freq,omitempty" yaml:"freq,omitempty"`
	Beats float64 `json:"beats" yaml:"beats"`
	Held  float64 `json:"held,omitempty" yaml:"held,omitempty"`
	Tie   bool    `json:"tie,omitempty" yaml:"tie,omitempty"`
}

type blockView struct {
	Notation string       `json:"notation" yaml:"notation"`
	Beats    [][]swarView `json:"beats" yaml:"beats"`
}

func newSwarView(s swar.Swar) swarView {
	return swarView{
		Name:  s.Pitch.Name(),
		Tone:  s.Pitch.Tone(),
		Freq:  s.Pitch.Freq(),
		Beats: s.Beats,
		Held:  s.Held,
		Tie:   s.Tie,
	}
}

func newBlocksView(bs swar.Blocks) []blockView {
	out := make([]blockView, len(bs))
	for i, b := range bs {
		beats := make([][]swarView, len(b.Beats))
		for j, bt := range b.Beats {
			beats[j] = make([]swarView, len(bt.Swars))
			for k, s := range bt.Swars {
				beats[j][k] = newSwarView(s)
			}
		}
		out[i] = blockView{Notation: b.String(), Beats: beats}
	}
	return out
}

type scaleView struct {
	Notation string `json:"notation" yaml:"notation"`
	Lower    string `json:"lower" yaml:"lower"`
	Higher   string `json:"higher" yaml:"higher"`
}

type lineView struct {
	Tag      string `json:"tag" yaml:"tag"`
	Notation string `json:"notation" yaml:"notation"`
}

type swarmaalikaView struct {
	Sam    int        `json:"sam" yaml:"sam"`
	Mukra  string     `json:"mukra,omitempty" yaml:"mukra,omitempty"`
	Sthayi []lineView `json:"sthayi,omitempty" yaml:"sthayi,omitempty"`
	Antara []lineView `json:"antara,omitempty" yaml:"antara,omitempty"`
	Tihayi string     `json:"tihayi,omitempty" yaml:"tihayi,omitempty"`
}

type raagView struct {
	Name        string           `json:"name" yaml:"name"`
	Tonic       string           `json:"tonic" yaml:"tonic"`
	Aroha       scaleView        `json:"aroha" yaml:"aroha"`
	Avroha      scaleView        `json:"avroha" yaml:"avroha"`
	Pakad       string           `json:"pakad,omitempty" yaml:"pakad,omitempty"`
	Alankars    string           `json:"alankars,omitempty" yaml:"alankars,omitempty"`
	Swarmaalika *swarmaalikaView `json:"swarmaalika,omitempty" yaml:"swarmaalika,omitempty"`
	Parts       []string         `json:"parts" yaml:"parts"`
}

func newScaleView(s *raag.Scale) scaleView {
	return scaleView{
		Notation: s.String(),
		Lower:    s.Lower().String(),
		Higher:   s.Higher().String(),
	}
}

func newLineViews(lines []raag.Line) []lineView {
	out := make([]lineView, len(lines))
	for i, l := range lines {
		out[i] = lineView{Tag: l.Tag, Notation: l.Blocks.String()}
	}
	return out
}

func newRaagView(r *raag.Raag) raagView {
	v := raagView{
		Name:     r.Name,
		Aroha:    newScaleView(r.Aroha),
		Avroha:   newScaleView(r.Avroha),
		Pakad:    r.Pakad.String(),
		Alankars: r.Alankars.String(),
		Parts:    r.Parts(),
	}
	if tonic, err := r.Tonic(); err == nil {
		v.Tonic = tonic.Pitch.Name()
	}
	if sm := r.Swarmaalika; sm != nil {
		v.Swarmaalika = &swarmaalikaView{
			Sam:    sm.Sam,
			Mukra:  sm.Mukra.String(),
			Sthayi: newLineViews(sm.Sthayi.Lines),
			Antara: newLineViews(sm.Antara.Lines),
			Tihayi: sm.Tihayi.String(),
		}
	}
	return v
}
