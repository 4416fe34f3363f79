package swar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	table := NewTable()
	tests := []string{
		"S:R:M:P S - - M P:P -:D :D P/M",
		"S",
		"S R G M P D N S.",
		".D .N S R. S.",
		"S:- R",
		"S - :G",
		"M' P d:N",
		"S:R:-:G -",
		"S: R",
		"G/R S - -",
		"S:-:-:R P",
		"",
	}
	for _, s := range tests {
		blk, err := Parse(s, table)
		require.NoError(t, err, "Parse(%q)", s)
		assert.Equal(t, s, blk.String(), "round trip of %q", s)
	}
}

func TestParseNormalizesWhitespace(t *testing.T) {
	blk, err := Parse("  S   R\tG  ", NewTable())
	require.NoError(t, err)
	assert.Equal(t, "S R G", blk.String())
}

func TestParseBeatCounts(t *testing.T) {
	blk, err := Parse("S:R:M:P S - - M P:P -:D :D P/M", NewTable())
	require.NoError(t, err)
	require.Len(t, blk.Beats, 9)

	tests := []struct {
		beat, swar int
		name       string
		count      float64
	}{
		{0, 0, "S", 0.25},
		{0, 3, "P", 0.25},
		{1, 0, "S", 3},
		{4, 0, "M", 1},
		{5, 1, "P", 1},
		{6, 1, "D", 0.5},
		{7, 1, "D", 0.5},
		{8, 0, "P", GraceBeats},
		{8, 1, "M", 1 - GraceBeats},
	}
	for _, tt := range tests {
		s := blk.Beats[tt.beat].Swars[tt.swar]
		assert.Equal(t, tt.name, s.Pitch.Name(), "beat %d swar %d", tt.beat, tt.swar)
		assert.InDelta(t, tt.count, s.BeatCount(), 1e-9, "beat %d swar %d", tt.beat, tt.swar)
	}

	assert.True(t, blk.Beats[2].IsEmpty())
	assert.True(t, blk.Beats[6].Swars[0].Tie)
	assert.True(t, blk.Beats[7].Swars[0].IsRest())
}

func TestParseBeatSum(t *testing.T) {
	blk, err := Parse("S:R:M:P S - - M P:P -:D :D P/M S:-:-:R G/M :", NewTable())
	require.NoError(t, err)
	for i, bt := range blk.Beats {
		if bt.IsEmpty() {
			continue
		}
		assert.InDelta(t, 1.0, bt.Sum(), 1e-9, "beat %d", i)
		assert.True(t, bt.Valid(), "beat %d", i)
	}
	require.NoError(t, blk.Validate())
}

func TestParseErrors(t *testing.T) {
	table := NewTable()
	tests := []struct {
		in         string
		structural bool
	}{
		{"S:R:M", false},
		{"S:R/M", false},
		{"S/R/M", false},
		{"S/-", false},
		{"S/", false},
		{"S-", false},
		{"S,R", false},
		{"S:R:M:P:D", false},
		{"- S", true},
		{"-:S", true},
		{"S:R:M:P - -, R", false},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in, table)
		require.Error(t, err, "Parse(%q)", tt.in)
		assert.ErrorIs(t, err, ErrParse, "Parse(%q)", tt.in)
		if tt.structural {
			assert.ErrorIs(t, err, ErrStructural, "Parse(%q)", tt.in)
		}
		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "Parse(%q) returned %T", tt.in, err)
	}
}

func TestParseUnknownNote(t *testing.T) {
	_, err := Parse("S R X", NewTable())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "X", perr.Token)
	assert.Equal(t, 5, perr.Pos)
}

func TestParseBlocks(t *testing.T) {
	bs, err := ParseBlocks("S R G -, G R S -,", NewTable())
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "S R G -, G R S -", bs.String())
	assert.Equal(t, 8, bs.Len())

	_, err = ParseBlocks("S R, - G", NewTable())
	assert.ErrorIs(t, err, ErrStructural)
}

func TestBlockExtend(t *testing.T) {
	table := NewTable()

	blk := MustParse("S - :G", table)
	require.NoError(t, blk.Extend(1.0))
	g := blk.Beats[2].Swars[1]
	assert.Equal(t, "G", g.Pitch.Name())
	assert.InDelta(t, 1.5, g.BeatCount(), 1e-9)
	assert.InDelta(t, 2.0, blk.Beats[0].Swars[0].BeatCount(), 1e-9)

	blk = MustParse("S - G -", table)
	require.NoError(t, blk.Extend(1.0))
	assert.InDelta(t, 3.0, blk.Beats[2].Swars[0].BeatCount(), 1e-9)

	empty := Block{}
	assert.ErrorIs(t, empty.Extend(1), ErrStructural)
}

func TestEvents(t *testing.T) {
	blk := MustParse("S - :G P:- R/M", NewTable())

	var names []string
	var beats []float64
	for ev := range blk.Events() {
		names = append(names, ev.Pitch.Name())
		beats = append(beats, ev.Beats)
	}
	assert.Equal(t, []string{"S", "", "G", "P", "R", "M"}, names)
	assert.InDeltaSlice(t, []float64{2, 0.5, 0.5, 1, GraceBeats, 1 - GraceBeats}, beats, 1e-9)

	var total float64
	for ev := range (Blocks{blk, blk}).Events() {
		total += ev.Beats
	}
	assert.InDelta(t, 10.0, total, 1e-9)
}
