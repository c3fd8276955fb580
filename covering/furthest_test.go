package covering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFurthestJumpParallelAgreesWithSerial(t *testing.T) {
	ivs := genChain(t, 5000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)

	want := make([]int, n)
	FurthestJumpSerial(l, r, 0, n, 0, n, want)

	got := make([]int, n)
	FurthestJumpParallel(n, l, r, got)

	require.Equal(t, want, got)
}

func TestFurthestJumpParallelLastIsSelfJump(t *testing.T) {
	ivs := genChain(t, 3000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)
	got := make([]int, n)
	FurthestJumpParallel(n, l, r, got)
	assert.Equal(t, n-1, got[n-1])
}

func TestFurthestJumpParallelMonotoneNonDecreasing(t *testing.T) {
	ivs := genChain(t, 4000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)
	got := make([]int, n)
	FurthestJumpParallel(n, l, r, got)
	for i := 1; i < n; i++ {
		assert.GreaterOrEqualf(t, got[i], got[i-1], "furthestID must be non-decreasing at %d", i)
		assert.GreaterOrEqualf(t, got[i], i, "furthestID[%d] must be >= %d", i, i)
	}
}

func TestFurthestJumpSerialSmall(t *testing.T) {
	ivs := [][2]int{{0, 5}, {1, 8}, {3, 10}, {7, 15}}
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)
	got := make([]int, n)
	FurthestJumpSerial(l, r, 0, n, 0, n, got)
	// from 0 (r=5): furthest j with l(j)<=5 is index 2 (l=3)
	assert.Equal(t, 2, got[0])
	// from 3 (r=15): furthest j with l(j)<=15 is index 3 itself
	assert.Equal(t, 3, got[3])
}
