package covering

import (
	"math/rand/v2"
	"testing"
)

// genChain builds a deterministic monotone, chain-connected sequence of n
// intervals, mirroring the constraints of the reference's generate_intervals
// (include/test_utils.h): each interval's length is drawn from a fixed
// range, and the step to the next interval's left endpoint never exceeds
// the shortest possible interval length, guaranteeing L(i+1) <= R(i), and
// always exceeds the spread of lengths, guaranteeing R(i) < R(i+1).
func genChain(t *testing.T, n int) [][2]int {
	t.Helper()
	if n == 0 {
		return nil
	}
	const lenMin, lenMax = 20, 24
	// step_max <= len_min and step_min > len_max-len_min, per the
	// reference's constraints.
	const stepMin, stepMax = 5, 15

	rng := rand.New(rand.NewPCG(1, uint64(n)))
	ivs := make([][2]int, n)
	left := 0
	for i := 0; i < n; i++ {
		length := lenMin + rng.IntN(lenMax-lenMin+1)
		ivs[i] = [2]int{left, left + length}
		step := stepMin + rng.IntN(stepMax-stepMin+1)
		left += step
	}
	return ivs
}
