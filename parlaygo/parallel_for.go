// Package parlaygo provides the nested fork-join primitives the covering
// solver is built on: a chunked parallel-for, a two-way fork/join
// (parallel-do), and a parallel bitset compaction.
package parlaygo

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// SerialCutoff is the range size at or below which ParallelFor and PackIndex run
// a plain sequential loop instead of paying goroutine dispatch overhead.
const SerialCutoff = 2000

// ParallelFor calls body(i) for every i in [0, n), splitting the range into
// runtime.GOMAXPROCS(0) contiguous chunks run on separate goroutines. body
// must only touch indices disjoint from every other call's index, as with
// any fork-join parallel-for: no synchronization is done between calls.
func ParallelFor(n int, body func(i int)) {
	if n <= 0 {
		return
	}
	if n <= SerialCutoff {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				body(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// paddedCount is a per-worker partial count padded to a full cache line so
// that adjacent workers writing their own slot never contend over the same
// cache line (false sharing).
type paddedCount struct {
	n int
	_ cpu.CacheLinePad
}
