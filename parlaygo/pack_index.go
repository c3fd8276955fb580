package parlaygo

import (
	"runtime"
	"sync"
)

// PackIndex returns, in ascending order, the indices in [0, n) for which
// dense.Get(i) is true.
//
// Work is split into runtime.GOMAXPROCS(0) chunks, each goroutine building
// its own local slice (padded so two workers' counters never share a cache
// line), then the locals are concatenated in chunk order so the result
// stays sorted.
func PackIndex(dense Bitset, n int) []int {
	if n <= 0 {
		return nil
	}
	if n <= SerialCutoff {
		var out []int
		for i := 0; i < n; i++ {
			if dense.Get(i) {
				out = append(out, i)
			}
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	locals := make([][]int, workers)
	counts := make([]paddedCount, workers)
	var wg sync.WaitGroup

	active := 0
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		active = w + 1
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			var local []int
			for i := lo; i < hi; i++ {
				if dense.Get(i) {
					local = append(local, i)
				}
			}
			locals[idx] = local
			counts[idx].n = len(local)
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for i := 0; i < active; i++ {
		total += counts[i].n
	}
	result := make([]int, 0, total)
	for i := 0; i < active; i++ {
		result = append(result, locals[i]...)
	}
	return result
}
