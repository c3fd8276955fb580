package parlaygo

import (
	"math/bits"

	"intervalcover/bitutils"
)

// Bitset is a fixed-length, word-packed bitmask: one bit per index rather
// than one byte, set with an atomic fetch-or so that concurrent
// ParallelFor workers can each claim their own bit without a lock.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset allocates a Bitset able to hold n bits, all initially clear.
func NewBitset(n int) Bitset {
	return Bitset{words: make([]uint64, (n+63)/64), n: n}
}

// Len returns the number of addressable bits.
func (b Bitset) Len() int { return b.n }

// Set marks bit i. Safe to call concurrently for distinct or even
// coincident i, since it goes through an atomic fetch-or.
func (b Bitset) Set(i int) {
	bitutils.FetchOr(&b.words[i>>6], uint64(1)<<uint(i&63))
}

// Clear unmarks bit i. Safe to call concurrently.
func (b Bitset) Clear(i int) {
	bitutils.FetchAnd(&b.words[i>>6], ^(uint64(1) << uint(i&63)))
}

// Get reports whether bit i is set. Plain (non-atomic) load: callers must
// not race a Get against a concurrent Set/Clear of the same bit.
func (b Bitset) Get(i int) bool {
	return b.words[i>>6]&(uint64(1)<<uint(i&63)) != 0
}

// Count returns the number of set bits.
func (b Bitset) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}
