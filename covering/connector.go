package covering

import "intervalcover/parlaygo"

// ConnectSamples fills, for every sampled index s, the next sampled index
// reachable from s by repeatedly following furthestID. The returned slice
// has length n and is only meaningful at positions where sampled.Get(s) is
// true.
//
// Each sampled index walks independently and in parallel; because 0 and
// n-1 are always sampled the walk from any s is guaranteed to terminate,
// and because every non-sampled index is touched by at most one walker
// (the nearest preceding sampled index), the total work across all walks
// is O(n) in expectation.
func ConnectSamples(furthestID []int, sampled Bitset, sampledID []int) []int {
	n := sampled.Len()
	nxt := make([]int, n)

	parlaygo.ParallelFor(len(sampledID), func(j int) {
		s := sampledID[j]
		id := furthestID[s]
		for !sampled.Get(id) {
			id = furthestID[id]
		}
		nxt[s] = id
	})

	return nxt
}
