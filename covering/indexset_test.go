package covering

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseIndexSetToSlice(t *testing.T) {
	s := NewSparseIndexSet([]int{2, 5, 9}, 100)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{2, 5, 9}, s.ToSlice())
}

func TestSparseIndexSetAdd(t *testing.T) {
	s := NewSparseIndexSet([]int{1}, 100)
	s.Add([]int{2, 3})
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestSparseIndexSetApply(t *testing.T) {
	s := NewSparseIndexSet([]int{4, 1, 7}, 100)
	var mu sync.Mutex
	var seen []int
	s.Apply(func(i int) {
		mu.Lock()
		seen = append(seen, i)
		mu.Unlock()
	})
	sort.Ints(seen)
	assert.Equal(t, []int{1, 4, 7}, seen)
}

func TestDenseIndexSetToSlice(t *testing.T) {
	dense := []bool{false, true, false, true, true}
	s := NewDenseIndexSet(dense)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{1, 3, 4}, s.ToSlice())
}

func TestDenseIndexSetApply(t *testing.T) {
	dense := []bool{true, false, true}
	s := NewDenseIndexSet(dense)
	var mu sync.Mutex
	var seen []int
	s.Apply(func(i int) {
		mu.Lock()
		seen = append(seen, i)
		mu.Unlock()
	})
	sort.Ints(seen)
	assert.Equal(t, []int{0, 2}, seen)
}

func TestSparseIndexSetCrossesToDenseOnceOverThreshold(t *testing.T) {
	// universe 100, threshold = 100/20 = 5: 6 members should flip to dense.
	s := NewSparseIndexSet([]int{1, 2, 3, 4, 5, 6}, 100)
	assert.False(t, s.isSparse)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.ToSlice())
}

func TestSparseIndexSetStaysSparseUnderThreshold(t *testing.T) {
	s := NewSparseIndexSet([]int{1, 2}, 100)
	assert.True(t, s.isSparse)
}

func TestSparseIndexSetAddCrossesToDense(t *testing.T) {
	s := NewSparseIndexSet([]int{1, 2}, 100)
	assert.True(t, s.isSparse)
	s.Add([]int{3, 4, 5, 6})
	assert.False(t, s.isSparse)
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.ToSlice())
}

func TestDenseIndexSetCrossesToSparseUnderThreshold(t *testing.T) {
	dense := make([]bool, 100)
	dense[7] = true
	dense[42] = true
	s := NewDenseIndexSet(dense)
	assert.True(t, s.isSparse)
	assert.Equal(t, []int{7, 42}, s.ToSlice())
}

func TestDenseIndexSetStaysDenseOverThreshold(t *testing.T) {
	dense := make([]bool, 100)
	for i := 0; i < 10; i++ {
		dense[i] = true
	}
	s := NewDenseIndexSet(dense)
	assert.False(t, s.isSparse)
}
