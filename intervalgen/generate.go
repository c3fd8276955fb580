// Package intervalgen generates synthetic monotone, chain-connected
// interval sequences for tests and benchmarks.
package intervalgen

import (
	"fmt"
	"math/rand/v2"
)

// Params controls the shape of a generated chain. The zero value is not
// usable directly; use DefaultParams.
type Params struct {
	Seed    uint64
	StepMin int
	StepMax int
	LenMin  int
	LenMax  int
}

// DefaultParams returns a reasonable default shape: short intervals with
// small steps between them, never leaving a gap.
func DefaultParams() Params {
	return Params{Seed: 42, StepMin: 5, StepMax: 15, LenMin: 20, LenMax: 24}
}

// validate enforces the two constraints the generator depends on: step_max
// must be <= len_min (guarantees no gaps between consecutive intervals)
// and step_min must be > len_max-len_min (guarantees R is strictly
// increasing, a stronger property than the weak monotonicity covering
// requires but harmless to generate).
func (p Params) validate() error {
	if p.StepMax > p.LenMin {
		return fmt.Errorf("intervalgen: step_max (%d) must be <= len_min (%d) to prevent gaps", p.StepMax, p.LenMin)
	}
	if p.StepMin <= p.LenMax-p.LenMin {
		return fmt.Errorf("intervalgen: step_min (%d) must be > len_max-len_min (%d) to guarantee R strictly increasing", p.StepMin, p.LenMax-p.LenMin)
	}
	return nil
}

// Generate builds n intervals satisfying covering's preconditions:
// L(i) <= L(i+1), R(i) <= R(i+1), L(i) < R(i), L(i+1) <= R(i).
//
// steps and lens are drawn sequentially from a single seeded source rather
// than generated in parallel, so that the same Params always produces the
// same chain regardless of how many goroutines later touch the result.
func Generate(n int, p Params) (l, r []int64, err error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, nil
	}

	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9E3779B97F4A7C15))
	steps := make([]int, n)
	lens := make([]int, n)
	for i := 0; i < n; i++ {
		steps[i] = p.StepMin + rng.IntN(p.StepMax-p.StepMin+1)
		lens[i] = p.LenMin + rng.IntN(p.LenMax-p.LenMin+1)
	}

	l = make([]int64, n)
	r = make([]int64, n)
	var left int64
	for i := 0; i < n; i++ {
		if i > 0 {
			left += int64(steps[i-1])
		}
		l[i] = left
		r[i] = left + int64(lens[i])
	}
	return l, r, nil
}
