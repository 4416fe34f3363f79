package raag

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/haivivi/raagas/pkg/swar"
)

// Drill durations in beats.
const (
	DrillTonicBeats = 3
	DrillNoteBeats  = 2
)

// Drill builds a practice run of n notes drawn from the aroha followed
// by the avroha. The notes keep their order in the scales and are
// bracketed by the tonic.
func Drill(r *Raag, n int, rng *rand.Rand) (swar.Block, error) {
	if r.Aroha == nil || r.Avroha == nil {
		return swar.Block{}, fmt.Errorf("%w: %s needs both aroha and avroha", swar.ErrStructural, r.Name)
	}
	degrees := append(r.Aroha.Blocks().Pitched(), r.Avroha.Blocks().Pitched()...)
	if n < 1 || n > len(degrees) {
		return swar.Block{}, fmt.Errorf("%w: drill of %d notes from %d degrees", swar.ErrStructural, n, len(degrees))
	}
	tonic, err := r.Tonic()
	if err != nil {
		return swar.Block{}, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	picks := rng.Perm(len(degrees))[:n]
	slices.Sort(picks)

	var blk swar.Block
	hold(&blk, tonic.Pitch, DrillTonicBeats)
	for _, i := range picks {
		hold(&blk, degrees[i].Pitch, DrillNoteBeats)
	}
	hold(&blk, tonic.Pitch, DrillTonicBeats)
	return blk, nil
}

func hold(blk *swar.Block, p swar.Pitch, beats int) {
	blk.Beats = append(blk.Beats, swar.Beat{Swars: []swar.Swar{{Pitch: p, Beats: 1, Held: float64(beats - 1)}}})
	blk.Beats = append(blk.Beats, make([]swar.Beat, beats-1)...)
}
