package covering

import "intervalcover/parlaygo"

// IndexSet is a sparse/dense hybrid set of interval indices. The
// non-sampled expansion phase uses one IndexSet per sampled segment to
// accumulate the indices it discovers before they are committed to the
// solver's shared valid Bitset, and Solver.SelectedIndices exposes the
// final cover in this form.
type IndexSet struct {
	isSparse bool
	n        int
	universe int
	sparse   []int
	dense    []bool
}

// denseCrossoverRatio is the density, relative to the set's universe, at
// which a dense bitmap scan becomes cheaper than walking a sparse index
// list: above one member per 20 universe slots dense wins, and below it
// sparse wins.
const denseCrossoverRatio = 20

// NewSparseIndexSet wraps an existing slice of indices as a sparse set
// against a universe of size universe, converting to dense immediately if
// the slice is already dense enough. The caller keeps ownership of
// indices; NewSparseIndexSet does not copy.
func NewSparseIndexSet(indices []int, universe int) IndexSet {
	s := IndexSet{isSparse: true, n: len(indices), universe: universe, sparse: indices}
	s.crossover()
	return s
}

// NewDenseIndexSet wraps an existing []bool membership slice as a dense
// set, converting to sparse immediately if it is sparse enough.
func NewDenseIndexSet(dense []bool) IndexSet {
	count := 0
	for _, v := range dense {
		if v {
			count++
		}
	}
	s := IndexSet{isSparse: false, n: count, universe: len(dense), dense: dense}
	s.crossover()
	return s
}

// Size returns the number of indices in the set.
func (s *IndexSet) Size() int { return s.n }

// Add appends indices to the set: for a sparse set this is a plain append;
// for a dense set it marks each index's slot true. Either may flip the
// set's representation via crossover.
func (s *IndexSet) Add(indices []int) {
	if s.isSparse {
		s.sparse = append(s.sparse, indices...)
	} else {
		for _, i := range indices {
			s.dense[i] = true
		}
	}
	s.n += len(indices)
	s.crossover()
}

// crossover switches representation once Size crosses denseCrossoverRatio
// relative to universe.
func (s *IndexSet) crossover() {
	if s.universe == 0 {
		return
	}
	threshold := s.universe / denseCrossoverRatio
	if s.isSparse && s.n > threshold {
		dense := make([]bool, s.universe)
		for _, i := range s.sparse {
			dense[i] = true
		}
		s.dense = dense
		s.sparse = nil
		s.isSparse = false
		return
	}
	if !s.isSparse && s.n <= threshold {
		s.sparse = denseToSlice(s.dense)
		s.dense = nil
		s.isSparse = true
	}
}

// denseToSlice packs a []bool membership slice into an ascending slice of
// set positions, in parallel, the same way ToSlice does for a standing
// dense set.
func denseToSlice(dense []bool) []int {
	b := NewBitset(len(dense))
	for i, v := range dense {
		if v {
			b.Set(i)
		}
	}
	return parlaygo.PackIndex(b, len(dense))
}

// ToSlice returns the set's members as a slice, packing the dense
// representation in parallel via parlaygo.PackIndex when the set is large
// enough to be worth it.
func (s *IndexSet) ToSlice() []int {
	if s.isSparse {
		return s.sparse
	}
	return denseToSlice(s.dense)
}

// Apply calls f(i) for every index i in the set, in parallel.
func (s *IndexSet) Apply(f func(i int)) {
	if s.isSparse {
		parlaygo.ParallelFor(len(s.sparse), func(j int) {
			f(s.sparse[j])
		})
		return
	}
	parlaygo.ParallelFor(len(s.dense), func(i int) {
		if s.dense[i] {
			f(i)
		}
	})
}
