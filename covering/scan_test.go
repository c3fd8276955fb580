package covering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSketchAndExpandAgreeWithSerial(t *testing.T) {
	ivs := genChain(t, 9000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)

	furthestID := make([]int, n)
	FurthestJumpParallel(n, l, r, furthestID)
	sampled, sampledID := SelectSamples(n, defaultBlockSize)
	nxt := ConnectSamples(furthestID, sampled, sampledID)

	valid := NewBitset(n)
	validSampledNode := ScanSketch(nxt, n, valid)
	ExpandNonSampled(furthestID, validSampledNode, nxt, valid)

	want := SerialGreedy(n, l, r)
	require.Equal(t, bitsetToBools(want), bitsetToBools(valid))
}

func TestScanSketchMarksEndpoints(t *testing.T) {
	ivs := genChain(t, 5000)
	l, r := accessorsFromIntervals(ivs)
	n := len(ivs)

	furthestID := make([]int, n)
	FurthestJumpParallel(n, l, r, furthestID)
	sampled, sampledID := SelectSamples(n, defaultBlockSize)
	nxt := ConnectSamples(furthestID, sampled, sampledID)

	valid := NewBitset(n)
	ScanSketch(nxt, n, valid)
	assert.True(t, valid.Get(0))
	assert.True(t, valid.Get(n-1))
}

func TestScanSketchEmpty(t *testing.T) {
	valid := NewBitset(0)
	got := ScanSketch(nil, 0, valid)
	assert.Nil(t, got)
}
