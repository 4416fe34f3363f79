// Package raag aggregates a raag composition and generates variations of
// its phrases.
//
// A Raag holds the ascending and descending scales (Aroha and Avroha),
// the signature phrase (pakad), practice patterns (alankars) and a
// composed song (Swarmaalika). Each Scale derives its lower and higher
// octave forms once, so melodic context can be checked across three
// registers.
//
// # Mutation
//
// Mutator rewrites one swar of a phrase per call:
//
//	PickTarget -> ClassifyContext -> SelectCandidatePool -> ApplyOperator
//
// The target's neighbourhood is classified as ascending, descending or
// neither against the scales; the candidate pool comes from the matching
// scale, or from the neighbourhood itself. One of five operators is then
// applied to a copy of the phrase. Inputs are never modified.
//
//	m := raag.NewMutator(r, raag.WithRand(rand.New(rand.NewPCG(1, 2))))
//	mut, err := m.Mutate(r.Pakad)
//	if errors.Is(err, raag.ErrMutationUnavailable) {
//	    // fall back to the source phrase
//	}
//
// Drill is a separate, simpler generator for practice runs.
package raag
