package raag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haivivi/raagas/pkg/swar"
)

// ErrMutationUnavailable is returned when no target, context or
// candidate pool yields a valid mutation.
var ErrMutationUnavailable = errors.New("raag: no mutation available")

// Raag is a loaded raag composition.
type Raag struct {
	Name   string
	Aroha  *Scale
	Avroha *Scale

	// Pakad is the signature phrase group. Optional.
	Pakad swar.Blocks

	// Alankars are practice patterns. Optional.
	Alankars swar.Blocks

	// Swarmaalika is the composed song. Optional.
	Swarmaalika *Swarmaalika
}

// Part names accepted by Raag.Part.
const (
	PartAroha    = "aroha"
	PartAvroha   = "avroha"
	PartPakad    = "pakad"
	PartAlankars = "alankars"
	PartMukra    = "mukra"
	PartTihayi   = "tihayi"

	// PartLinePrefix selects a swarmaalika line, e.g. "line:lineA".
	PartLinePrefix = "line:"
)

// Part returns the named phrase group of r.
func (r *Raag) Part(name string) (swar.Blocks, error) {
	var bs swar.Blocks
	switch {
	case name == PartAroha && r.Aroha != nil:
		bs = r.Aroha.Blocks()
	case name == PartAvroha && r.Avroha != nil:
		bs = r.Avroha.Blocks()
	case name == PartPakad:
		bs = r.Pakad
	case name == PartAlankars:
		bs = r.Alankars
	case name == PartMukra && r.Swarmaalika != nil:
		bs = r.Swarmaalika.Mukra
	case name == PartTihayi && r.Swarmaalika != nil:
		bs = r.Swarmaalika.Tihayi
	case strings.HasPrefix(name, PartLinePrefix):
		if r.Swarmaalika == nil {
			return nil, fmt.Errorf("%w: %s has no swarmaalika", swar.ErrStructural, r.Name)
		}
		return r.Swarmaalika.Line(strings.TrimPrefix(name, PartLinePrefix))
	}
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w: %s has no %s", swar.ErrStructural, r.Name, name)
	}
	return bs, nil
}

// Parts lists the part names that are present in r.
func (r *Raag) Parts() []string {
	var out []string
	for _, name := range []string{PartAroha, PartAvroha, PartPakad, PartAlankars, PartMukra, PartTihayi} {
		if _, err := r.Part(name); err == nil {
			out = append(out, name)
		}
	}
	if r.Swarmaalika != nil {
		for _, sec := range []Section{r.Swarmaalika.Sthayi, r.Swarmaalika.Antara} {
			for _, l := range sec.Lines {
				out = append(out, PartLinePrefix+l.Tag)
			}
		}
	}
	return out
}

// Tonic returns the first pitched swar of the aroha.
func (r *Raag) Tonic() (swar.Swar, error) {
	if r.Aroha == nil {
		return swar.Swar{}, fmt.Errorf("%w: %s has no aroha", swar.ErrStructural, r.Name)
	}
	pitched := r.Aroha.Blocks().Pitched()
	if len(pitched) == 0 {
		return swar.Swar{}, fmt.Errorf("%w: %s aroha has no notes", swar.ErrStructural, r.Name)
	}
	return pitched[0], nil
}
