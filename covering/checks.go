package covering

import (
	"sync/atomic"

	"intervalcover/parlaygo"
)

// checkPreconditions verifies, in parallel, that every interval is
// non-empty, that both endpoints are weakly monotone across consecutive
// intervals, and that the sequence is chain-connected (each interval's
// left endpoint does not exceed the previous interval's right endpoint).
// It reports the lowest-indexed violation it finds (parallel workers race
// to report; any one of them winning is fine since a single violation is
// enough to fail).
func (s *Solver[T]) checkPreconditions() error {
	var firstBad atomic.Int64
	firstBad.Store(int64(s.n))
	var kind PreconditionKind

	record := func(i int, k PreconditionKind) {
		for {
			cur := firstBad.Load()
			if int64(i) >= cur {
				return
			}
			if firstBad.CompareAndSwap(cur, int64(i)) {
				kind = k
				return
			}
		}
	}

	parlaygo.ParallelFor(s.n, func(i int) {
		if s.l(i) >= s.r(i) {
			record(i, EmptyInterval)
		}
	})
	parlaygo.ParallelFor(s.n-1, func(i int) {
		if s.l(i) > s.l(i+1) || s.r(i) > s.r(i+1) {
			record(i, NotMonotone)
		}
		if s.l(i+1) > s.r(i) {
			record(i, ChainGap)
		}
	})

	if idx := int(firstBad.Load()); idx < s.n {
		return &PreconditionError{Index: idx, Kind: kind}
	}
	return nil
}

// checkFurthestInvariant verifies the post-furthest-jump invariants:
// furthestID[i] >= i for all i, and furthestID[n-1] == n-1.
func (s *Solver[T]) checkFurthestInvariant() error {
	if s.furthestID[s.n-1] != s.n-1 {
		return &InvariantError{Where: "FurthestJumpParallel", Index: s.n - 1}
	}

	var firstBad atomic.Int64
	firstBad.Store(int64(s.n))
	parlaygo.ParallelFor(s.n, func(i int) {
		if s.furthestID[i] < i {
			for {
				cur := firstBad.Load()
				if int64(i) >= cur || firstBad.CompareAndSwap(cur, int64(i)) {
					return
				}
			}
		}
	})
	if idx := int(firstBad.Load()); idx < s.n {
		return &InvariantError{Where: "FurthestJumpParallel", Index: idx}
	}
	return nil
}
