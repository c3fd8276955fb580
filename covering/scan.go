package covering

import "intervalcover/parlaygo"

// ScanSketch walks the sampled sketch — starting at 0, following nxt from
// sampled node to sampled node — and returns the sampled indices that lie
// on the greedy path, in path order, ending just before n-1. It also marks
// valid at every node it visits, including n-1.
//
// This is a deliberately serial O(n/B) pass: the sketch is short enough
// that parallelizing it would not pay for its own overhead.
func ScanSketch(nxt []int, n int, valid Bitset) []int {
	if n == 0 {
		return nil
	}
	var validSampledNode []int
	id := 0
	for id < n-1 {
		validSampledNode = append(validSampledNode, id)
		valid.Set(id)
		id = nxt[id]
	}
	valid.Set(id) // id == n-1 here
	return validSampledNode
}

// ExpandNonSampled fills in valid for the non-sampled indices that lie on
// the greedy path between consecutive sampled path nodes. For each
// sampled node start in validSampledNode, the segment it opens
// runs from furthestID[start] up to (but not including) nxt[start]; the
// segments partition the non-sampled indices disjointly, so every segment
// is walked and committed concurrently with no synchronization beyond the
// parallel-for join.
func ExpandNonSampled(furthestID []int, validSampledNode []int, nxt []int, valid Bitset) {
	parlaygo.ParallelFor(len(validSampledNode), func(i int) {
		start := validSampledNode[i]
		end := nxt[start]

		var found []int
		id := furthestID[start]
		for id != end {
			found = append(found, id)
			id = furthestID[id]
		}

		set := NewSparseIndexSet(found, len(furthestID))
		set.Apply(func(idx int) { valid.Set(idx) })
	})
}
