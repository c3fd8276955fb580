package covering

import "intervalcover/parlaygo"

// llNode is one node of the Euler-tour doubly-threaded linked list. A
// plain struct of (index, bool, bool) is used here rather than bit-packing
// next/valid/sampled into a single word; the extra memory per node costs
// nothing the algorithm's correctness depends on.
type llNode struct {
	next    int
	valid   bool
	sampled bool
}

// lNodeID and rNodeID map interval index i to its two Euler-tour nodes.
func lNodeID(i int) int { return i * 2 }
func rNodeID(i int) int { return i*2 + 1 }

// runEulerTour builds the furthest-jump table, threads it into a
// doubly-threaded linked list whose traversal order is the Euler tour of
// the greedy selection, runs a sampled list-rank over that list, and
// derives valid from the two nodes' differing colorings.
func (s *Solver[T]) runEulerTour() error {
	s.furthestID = make([]int, s.n)
	FurthestJumpParallel(s.n, s.l, s.r, s.furthestID)

	if s.Debug {
		if err := s.checkFurthestInvariant(); err != nil {
			return err
		}
	}

	list := buildEulerLinkList(s.furthestID, s.n)
	sampledID := buildEulerSampleID(list, s.n, s.blockSize())
	scanEulerLinkList(list, sampledID, s.n)

	s.valid = NewBitset(s.n)
	parlaygo.ParallelFor(s.n, func(i int) {
		if list[lNodeID(i)].valid != list[rNodeID(i)].valid {
			s.valid.Set(i)
		}
	})
	return nil
}

// nullPtrFor is the Euler-tour list's end-of-list sentinel: any value
// outside [0, 2n) works; this uses 2n itself.
func nullPtrFor(n int) int { return 2 * n }

// buildEulerLinkList threads furthestID into the doubly-threaded list.
func buildEulerLinkList(furthestID []int, n int) []llNode {
	nn := 2 * n
	null := nullPtrFor(n)
	list := make([]llNode, nn)
	for i := range list {
		list[i].next = null
	}
	list[rNodeID(0)].valid = true

	if n > 1 {
		parlaygo.ParallelFor(n-1, func(i int) {
			if i == 0 || furthestID[i-1] != furthestID[i] {
				list[lNodeID(furthestID[i])].next = lNodeID(i)
			} else {
				list[rNodeID(i-1)].next = lNodeID(i)
			}

			if furthestID[i+1] != furthestID[i] {
				list[rNodeID(i)].next = rNodeID(furthestID[i])
			} else if i+1 == furthestID[i] {
				list[rNodeID(i)].next = rNodeID(i + 1)
			}
		})
	}

	parlaygo.ParallelFor(n, func(i int) {
		if list[lNodeID(i)].next == null {
			list[lNodeID(i)].next = rNodeID(i)
		}
	})

	list[rNodeID(n-1)].next = null
	return list
}

// buildEulerSampleID samples roughly nn/blockSize nodes of the 2n-node
// list, always including the tour's start node l(n-1), using the same
// counter-based hash as SelectSamples. Deliberately serial, since it must
// check-then-set each candidate node to avoid sampling the same node
// twice.
func buildEulerSampleID(list []llNode, n, blockSize int) []int {
	nn := 2 * n
	totalMax := 1 + (nn+blockSize-1)/blockSize
	sampledID := make([]int, 0, totalMax)

	sample := func(nodeID int) {
		if list[nodeID].sampled {
			return
		}
		list[nodeID].sampled = true
		sampledID = append(sampledID, nodeID)
	}

	sample(lNodeID(n - 1))
	for i := 1; i < totalMax; i++ {
		sample(int(splitmix64(seed, i) % uint64(nn)))
	}
	return sampledID
}

// scanEulerLinkList runs a sampled list-rank over the Euler-tour list:
// each sampled node scans ahead to the next sampled node propagating a
// running "seen a valid node yet" flag, the short resulting sketch is
// scanned serially, and then link restoration and the final propagation
// into each segment's interior run as two separate, barrier-separated
// parallel passes rather than interleaved in one — interleaving them would
// let one task observe another sampled node's link before it has been
// restored, racing pass 2b's traversal against pass 2a's write.
func scanEulerLinkList(list []llNode, sampledID []int, n int) {
	null := nullPtrFor(n)
	nxtInitial := make([]int, len(sampledID))

	// Pass 1: from each sampled node, walk to the next sampled node,
	// propagating valid along the way, then temporarily rewire the
	// sampled node directly to the one it reached (building the sketch).
	parlaygo.ParallelFor(len(sampledID), func(i int) {
		startID := sampledID[i]
		nxtInitial[i] = list[startID].next

		valid := list[startID].valid
		nodeID := list[startID].next
		for nodeID != null {
			valid = valid || list[nodeID].valid
			list[nodeID].valid = valid
			if list[nodeID].sampled {
				break
			}
			nodeID = list[nodeID].next
		}
		list[startID].next = nodeID
	})

	// Serial scan over the sampled sketch.
	{
		nodeID := sampledID[0]
		valid := false
		for nodeID != null {
			valid = valid || list[nodeID].valid
			list[nodeID].valid = valid
			nodeID = list[nodeID].next
		}
	}

	// Pass 2a: restore every sampled node's original link. Kept as its
	// own barrier-separated pass so no task in pass 2b can ever observe
	// another sampled node's link still pointing at the sketch shortcut.
	parlaygo.ParallelFor(len(sampledID), func(i int) {
		list[sampledID[i]].next = nxtInitial[i]
	})

	// Pass 2b: propagate each now-correct sampled valid value into the
	// interior of its segment.
	parlaygo.ParallelFor(len(sampledID), func(i int) {
		startID := sampledID[i]
		valid := list[startID].valid
		nodeID := nxtInitial[i]
		for nodeID != null {
			valid = valid || list[nodeID].valid
			list[nodeID].valid = valid
			if list[nodeID].sampled {
				break
			}
			nodeID = list[nodeID].next
		}
	})
}
