package collab

import (
	"math"
	"math/rand/v2"

	"github.com/oisee/qureg/pkg/qreg"
)

// Decoherer is a Decohere hook backing: after every gate, it dephases
// each amplitude by a small random angle with probability Rate, a
// coarse phase-noise model. A zero Rate makes it a no-op, for callers
// that want the hook wired (for logging, say) without perturbing the
// state.
type Decoherer struct {
	Rate float64
	rng  *rand.Rand
}

// NewDecoherer returns a decoherer with the given per-gate dephasing
// probability, seeded from s0/s1.
func NewDecoherer(rate float64, s0, s1 uint64) *Decoherer {
	return &Decoherer{Rate: rate, rng: rand.New(rand.NewPCG(s0, s1))}
}

// Perturb is installed as a Register's Hooks.Decohere field.
func (d *Decoherer) Perturb(reg *qreg.Register) {
	if d.Rate <= 0 {
		return
	}
	for i := range reg.Amps {
		if d.rng.Float64() >= d.Rate {
			continue
		}
		angle := (d.rng.Float64()*2 - 1) * 0.01
		reg.Amps[i] *= complex(math.Cos(angle), math.Sin(angle))
	}
}
