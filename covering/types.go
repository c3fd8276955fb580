// Package covering computes the minimum interval cover of a monotone,
// chain-connected sequence of intervals: the smallest subset of intervals
// whose union equals the union of all of them. It provides a serial
// ground-truth kernel and two work-efficient parallel variants (sampled
// path-contraction and Euler-tour list ranking) that agree with it
// pointwise on any input satisfying the package's preconditions.
//
// The package is a pure computational core: no I/O, no logging, no
// goroutine leaks across Run. Every exported free function mirrors one
// subroutine of the algorithm and is individually callable so tests can
// cross-check phases against each other without going through Solver.Run.
package covering

import (
	"cmp"

	"intervalcover/parlaygo"
)

// Bitset is the word-packed bitmask covering uses for every per-index
// membership flag it tracks ("sampled", "valid").
type Bitset = parlaygo.Bitset

// NewBitset allocates a Bitset of n bits, all clear.
func NewBitset(n int) Bitset { return parlaygo.NewBitset(n) }

// PackIndex compacts a Bitset's set positions into an ascending slice.
func PackIndex(dense Bitset, n int) []int { return parlaygo.PackIndex(dense, n) }

// Accessor returns the endpoint of interval i. It must be pure, idempotent,
// and safe to call concurrently from multiple goroutines: Run calls it an
// unbounded number of times, possibly concurrently, during the furthest-jump
// build.
type Accessor[T cmp.Ordered] func(i int) T

// Variant selects which parallel kernel Solver.Run dispatches to.
type Variant int

const (
	// SampledPathContraction is the default, recommended variant: a
	// furthest-jump table, a sparse sample of the jump chain, a serial
	// scan of the resulting sketch, and a parallel expansion back to the
	// full index range.
	SampledPathContraction Variant = iota
	// EulerTour is the alternative variant: a doubly-threaded linked
	// list over 2n nodes, scanned with a sampled parallel list-rank.
	EulerTour
)

// defaultBlockSize is the sampling density parameter B: roughly one
// sampled index per B positions, and the serial base case size for the
// furthest-jump divide-and-conquer.
const defaultBlockSize = 2000

// smallNCutoff is the input size at or below which Run dispatches directly
// to the serial kernel: below this the parallel pipeline's fork/join and
// sampling overhead dominates its O(n) work.
const smallNCutoff = 2 * defaultBlockSize

// seed is the fixed counter-based-hash seed used by the sample selector and
// the Euler-tour sketch sampler, so that a run is reproducible across
// invocations.
const seed uint64 = 0
