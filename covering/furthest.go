package covering

import (
	"cmp"

	"intervalcover/parlaygo"
)

// FurthestJumpBlockSize is the tuning constant controlling when the
// recursive builder bottoms out: once a subproblem's combined span falls
// at or below this size, the builder switches to the serial two-pointer
// merge instead of forking further.
const FurthestJumpBlockSize = defaultBlockSize

// FurthestJumpSerial fills furthestID[s:e] with the trivial two-pointer
// merge: furthestID[i] is the largest j in [i, n) with l(j) <= r(i). It
// relies on both l and r being non-decreasing, so the candidate cursor rid
// only ever moves right as i advances.
//
// Callers pass the candidate range explicitly (rl, rr) so this can serve
// both as the whole-array ground truth (rl=0, rr=n) and as the base case of
// FurthestJumpParallel's recursion (a restricted candidate window).
func FurthestJumpSerial[T cmp.Ordered](l, r Accessor[T], s, e, rl, rr int, furthestID []int) {
	rid := rl
	for i := s; i < e; i++ {
		ri := r(i)
		for rid < rr && l(rid) <= ri {
			rid++
		}
		furthestID[i] = rid - 1
	}
}

// FurthestJumpParallel computes furthestID[0:n) with a recursive
// two-sequence merge: O(n) work, O(log^2 n) depth. build picks the
// midpoint lmid of its left range, binary-searches for
// furthestID[lmid] within the allowed candidate window, then forks two
// subproblems bounded by that midpoint value on either side — valid
// because r is non-decreasing, so every i < lmid has r(i) <= r(lmid) and
// every i > lmid has r(i) >= r(lmid).
func FurthestJumpParallel[T cmp.Ordered](n int, l, r Accessor[T], furthestID []int) {
	if n == 0 {
		return
	}
	build(l, r, 0, n-1, 0, n-1, furthestID)
}

func build[T cmp.Ordered](l, r Accessor[T], ll, lr, rl, rr int, furthestID []int) {
	leftSpan := lr - ll + 1
	rightSpan := rr - rl + 1
	if leftSpan+rightSpan <= FurthestJumpBlockSize {
		FurthestJumpSerial(l, r, ll, lr+1, rl, rr+1, furthestID)
		return
	}

	lmid := (ll + lr) / 2
	k := furthestAt(l, r(lmid), max(lmid, rl), rr)
	furthestID[lmid] = k

	parlaygo.ParallelDo(
		func() {
			if ll <= lmid-1 {
				build(l, r, ll, lmid-1, rl, k, furthestID)
			}
		},
		func() {
			if lmid+1 <= lr {
				build(l, r, lmid+1, lr, k, rr, furthestID)
			}
		},
	)
}

// furthestAt binary-searches [lo, hi] for the largest index k with
// l(k) <= target.
func furthestAt[T cmp.Ordered](l Accessor[T], target T, lo, hi int) int {
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if l(mid) <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
