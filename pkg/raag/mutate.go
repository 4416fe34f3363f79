package raag

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/haivivi/raagas/pkg/swar"
)

// Operator is a mutation applied to the target swar.
type Operator int

const (
	// Replace swaps the target's pitch for the candidate's.
	Replace Operator = iota

	// IncBeat replaces the target and holds it for the candidate's
	// duration plus one beat.
	IncBeat

	// DecBeat replaces the target and holds it for half the
	// candidate's duration when that is at least one beat.
	DecBeat

	// ShareBeat splits the target's beat into two halves.
	ShareBeat

	// KanSwar splits the target's beat into a grace note and its
	// complement.
	KanSwar
)

var operatorNames = [...]string{"replace", "inc_beat", "dec_beat", "share_beat", "kan_swar"}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	return []Operator{Replace, IncBeat, DecBeat, ShareBeat, KanSwar}
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}

// ParseOperator returns the operator named s, e.g. "kan_swar".
func ParseOperator(s string) (Operator, error) {
	for i, name := range operatorNames {
		if name == s {
			return Operator(i), nil
		}
	}
	return 0, fmt.Errorf("raag: unknown operator %q", s)
}

// DefaultMaxAttempts bounds the draws Mutate makes before giving up.
const DefaultMaxAttempts = 32

// Mutation is the result of one successful Mutate call.
type Mutation struct {
	// ID identifies the mutation across logs and output.
	ID string

	// Blocks is the mutated copy of the source.
	Blocks swar.Blocks

	// Target locates the mutated swar in the source.
	Target    swar.Locator
	Direction Direction

	// Operator is the operator drawn; Applied is the one that ran.
	// They differ when a split falls back to Replace.
	Operator Operator
	Applied  Operator

	Candidate swar.Swar
	Pool      []swar.Swar

	// Attempts is the number of draws it took.
	Attempts int
}

// MutatorOption configures a Mutator.
type MutatorOption func(*Mutator)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) MutatorOption {
	return func(m *Mutator) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) MutatorOption {
	return func(m *Mutator) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMaxAttempts sets how many draws Mutate makes before returning
// ErrMutationUnavailable.
func WithMaxAttempts(n int) MutatorOption {
	return func(m *Mutator) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithOperators restricts the operators drawn.
func WithOperators(ops ...Operator) MutatorOption {
	return func(m *Mutator) {
		if len(ops) > 0 {
			m.ops = slices.Clone(ops)
		}
	}
}

// Mutator generates variations of phrases within a raag.
// A Mutator owns its random source and is not safe for concurrent use.
type Mutator struct {
	raag        *Raag
	rng         *rand.Rand
	logger      *slog.Logger
	maxAttempts int
	ops         []Operator
}

// NewMutator creates a Mutator for r.
func NewMutator(r *Raag, opts ...MutatorOption) *Mutator {
	m := &Mutator{
		raag:        r,
		logger:      slog.Default(),
		maxAttempts: DefaultMaxAttempts,
		ops:         Operators(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m
}

// Mutate returns a copy of src with one swar rewritten. src is not
// modified. The result always validates and differs from src in the
// targeted beat; when no such result is found the error wraps
// ErrMutationUnavailable.
func (m *Mutator) Mutate(src swar.Blocks) (*Mutation, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("raag: source phrase: %w", err)
	}
	beats := targetBeats(src)
	if len(beats) == 0 {
		return nil, fmt.Errorf("%w: no pitched swar in phrase", ErrMutationUnavailable)
	}
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		mut := m.attempt(src, beats)
		if mut == nil {
			continue
		}
		mut.ID = uuid.NewString()
		mut.Attempts = attempt
		m.logger.Debug("raag/mutate: done",
			"id", mut.ID,
			"target", mut.Target.String(),
			"direction", mut.Direction.String(),
			"operator", mut.Applied.String(),
			"attempts", attempt)
		return mut, nil
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts", ErrMutationUnavailable, m.maxAttempts)
}

// Variations chains n mutations, each applied to the previous result.
// On failure the variations produced so far are returned with the error.
func (m *Mutator) Variations(src swar.Blocks, n int) ([]*Mutation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: variation count %d", swar.ErrStructural, n)
	}
	out := make([]*Mutation, 0, n)
	cur := src
	for range n {
		mut, err := m.Mutate(cur)
		if err != nil {
			return out, err
		}
		out = append(out, mut)
		cur = mut.Blocks
	}
	return out, nil
}

func (m *Mutator) attempt(src swar.Blocks, beats []swar.Locator) *Mutation {
	// PickTarget
	loc := beats[m.rng.IntN(len(beats))]
	bt, _ := src.BeatAt(loc)
	pitched := bt.Pitched()
	loc.Swar = pitched[m.rng.IntN(len(pitched))]
	target := bt.Swars[loc.Swar]

	// ClassifyContext
	w, err := src.Adjacent(loc)
	if err != nil {
		m.logger.Debug("raag/mutate: no context", "target", loc.String(), "error", err)
		return nil
	}
	dir := Classify(w, m.raag.Aroha, m.raag.Avroha)

	// SelectCandidatePool
	pool := m.pool(dir, target, w)
	if len(pool) == 0 {
		m.logger.Debug("raag/mutate: empty pool", "target", loc.String())
		return nil
	}

	// ApplyOperator
	cand := pool[m.rng.IntN(len(pool))]
	op := m.ops[m.rng.IntN(len(m.ops))]
	out := src.Clone()
	applied := m.apply(out, loc, op, cand, pool)

	if err := out.Validate(); err != nil {
		m.logger.Debug("raag/mutate: invalid result", "target", loc.String(), "operator", applied.String(), "error", err)
		return nil
	}
	if !beatChanged(src, out, loc) {
		m.logger.Debug("raag/mutate: unchanged", "target", loc.String(), "operator", applied.String(), "candidate", cand.String())
		return nil
	}
	return &Mutation{
		Blocks:    out,
		Target:    loc,
		Direction: dir,
		Operator:  op,
		Applied:   applied,
		Candidate: cand,
		Pool:      pool,
	}
}

// pool returns the target's neighbourhood in the scale matching dir,
// or the local window when there is none. An ascending window that also
// moves along the avroha tries the avroha before the local window.
func (m *Mutator) pool(dir Direction, target swar.Swar, local swar.Window) []swar.Swar {
	var scales []*Scale
	switch dir {
	case Ascending:
		scales = append(scales, m.raag.Aroha)
		if av := m.raag.Avroha; av != nil && monotonic(local.Swars, av.Degrees()) {
			scales = append(scales, av)
		}
	case Descending:
		scales = append(scales, m.raag.Avroha)
	}
	for _, sc := range scales {
		if sc == nil {
			continue
		}
		if w, ok := sc.Context(target); ok {
			return slices.Clone(w.Swars)
		}
		m.logger.Debug("raag/mutate: target not in scale", "scale", sc.Name(), "swar", target.String())
	}
	return slices.Clone(local.Swars)
}

// apply rewrites out in place and returns the operator that ran.
func (m *Mutator) apply(out swar.Blocks, loc swar.Locator, op Operator, cand swar.Swar, pool []swar.Swar) Operator {
	switch op {
	case IncBeat:
		if resize(out, loc, cand, cand.BeatCount()+1) {
			return IncBeat
		}
	case DecBeat:
		total := cand.BeatCount()
		if total >= 1 {
			total /= 2
		}
		if resize(out, loc, cand, total) {
			return DecBeat
		}
	case ShareBeat, KanSwar:
		if m.split(out, loc, cand, pool, op == KanSwar) {
			return op
		}
	}
	sw, _ := out.At(loc)
	sw.Pitch = cand.Pitch
	return Replace
}

// resize replaces the target and sets its duration to total beats by
// adding or removing the continuation beats that follow it. Only the
// last sounding swar of a beat can be held; resize reports false for
// any other target.
func resize(out swar.Blocks, loc swar.Locator, cand swar.Swar, total float64) bool {
	blk := &out[loc.Block]
	bt := &blk.Beats[loc.Beat]
	if lastSounding(*bt) != loc.Swar {
		return false
	}
	held := 0
	for i := loc.Beat + 1; i < len(blk.Beats) && blk.Beats[i].IsEmpty(); i++ {
		held++
	}

	sw := &bt.Swars[loc.Swar]
	base := sw.BeatCount() - float64(held)
	n := max(int(math.Round(total-base)), 0)

	sw.Pitch = cand.Pitch
	sw.Held += float64(n - held)

	beats := slices.Clone(blk.Beats[:loc.Beat+1])
	beats = append(beats, make([]swar.Beat, n)...)
	blk.Beats = append(beats, blk.Beats[loc.Beat+1+held:]...)
	return true
}

// split replaces a beat holding one whole swar with a pair drawn from
// the pool. The trailing swar keeps the target's continuations.
func (m *Mutator) split(out swar.Blocks, loc swar.Locator, cand swar.Swar, pool []swar.Swar, grace bool) bool {
	bt, _ := out.BeatAt(loc)
	if len(bt.Swars) != 1 || bt.Swars[0].Beats != 1 {
		return false
	}
	a, b := cand, pool[m.rng.IntN(len(pool))]
	if m.rng.IntN(2) == 1 {
		a, b = b, a
	}
	lead := 0.5
	if grace {
		lead = swar.GraceBeats
	}
	bt.Swars = []swar.Swar{
		{Pitch: a.Pitch, Beats: lead},
		{Pitch: b.Pitch, Beats: 1 - lead, Held: bt.Swars[0].Held},
	}
	return true
}

func lastSounding(bt swar.Beat) int {
	for i := len(bt.Swars) - 1; i >= 0; i-- {
		if !bt.Swars[i].Tie {
			return i
		}
	}
	return -1
}

func targetBeats(bs swar.Blocks) []swar.Locator {
	var out []swar.Locator
	for i, b := range bs {
		for j, bt := range b.Beats {
			if bt.HasPitch() {
				out = append(out, swar.Locator{Block: i, Beat: j})
			}
		}
	}
	return out
}

func beatChanged(src, out swar.Blocks, loc swar.Locator) bool {
	a, _ := src.BeatAt(loc)
	b, _ := out.BeatAt(loc)
	if len(a.Swars) != len(b.Swars) {
		return true
	}
	for i := range a.Swars {
		if a.Swars[i] != b.Swars[i] {
			return true
		}
	}
	return false
}
