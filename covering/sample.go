package covering

import "intervalcover/parlaygo"

// splitmix64 is a stateless counter-based pseudo-random function: given a
// seed and a counter i it returns a well-mixed 64-bit value, with no
// shared, mutable RNG state to serialize access to. This lets
// SelectSamples' per-index hash run inside a ParallelFor without any two
// workers touching the same state, and guarantees the same (seed, i)
// always yields the same bit regardless of how many workers are
// scheduled.
func splitmix64(seed uint64, i int) uint64 {
	x := seed + uint64(i)*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// SelectSamples builds the sparse sketch: a bitmask marking roughly one
// index in every blockSize as "sampled", always including 0 and n-1, plus
// the packed ascending list of sampled positions.
func SelectSamples(n, blockSize int) (sampled Bitset, sampledID []int) {
	sampled = NewBitset(n)
	if n == 0 {
		return sampled, nil
	}

	parlaygo.ParallelFor(n, func(i int) {
		if splitmix64(seed, i)%uint64(blockSize) == 0 {
			sampled.Set(i)
		}
	})

	// Endpoints are forced true last, after the hash-driven pass, so a
	// hash collision can never unmark them.
	sampled.Set(0)
	sampled.Set(n - 1)

	sampledID = parlaygo.PackIndex(sampled, n)
	return sampled, sampledID
}
