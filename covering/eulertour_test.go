package covering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEulerLinkListNullTerminated(t *testing.T) {
	ivs := genChain(t, 4000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)

	furthestID := make([]int, n)
	FurthestJumpParallel(n, l, r, furthestID)

	list := buildEulerLinkList(furthestID, n)
	assert.Equal(t, nullPtrFor(n), list[rNodeID(n-1)].next)

	// Every node other than r(n-1) must eventually reach it by following
	// next pointers — the list threads a single Euler tour, not a forest.
	for start := 0; start < 2*n; start++ {
		id := start
		steps := 0
		for id != nullPtrFor(n) {
			id = list[id].next
			steps++
			require.Less(t, steps, 2*n+1, "node %d's chain does not terminate", start)
		}
	}
}

func TestBuildEulerSampleIDIncludesStart(t *testing.T) {
	ivs := genChain(t, 4000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)

	furthestID := make([]int, n)
	FurthestJumpParallel(n, l, r, furthestID)
	list := buildEulerLinkList(furthestID, n)
	sampledID := buildEulerSampleID(list, n, defaultBlockSize)

	assert.Contains(t, sampledID, lNodeID(n-1))
	for _, id := range sampledID {
		assert.True(t, list[id].sampled)
	}
}

func TestEulerTourMatchesSampledPathContraction(t *testing.T) {
	ivs := genChain(t, 10000)
	l, r := accessorsFromIntervals(ivs)

	sa := New(len(ivs), l, r)
	require.NoError(t, sa.Run())

	sb := New(len(ivs), l, r)
	require.NoError(t, sb.RunEulerTour())

	assert.Equal(t, bitsetToBools(sa.valid), bitsetToBools(sb.valid))
}

func TestEulerTourSmallScenarios(t *testing.T) {
	scenarios := [][][2]int{
		{{0, 10}},
		{{0, 5}, {3, 10}},
		{{0, 5}, {5, 10}, {10, 15}, {15, 20}},
	}
	for _, ivs := range scenarios {
		l, r := accessorsFromIntervals(ivs)
		s := New(len(ivs), l, r)
		require.NoError(t, s.RunEulerTour())
		want := SerialGreedy(len(ivs), l, r)
		assert.Equal(t, bitsetToBools(want), bitsetToBools(s.valid))
	}
}
