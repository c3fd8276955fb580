package parlaygo

import "golang.org/x/sync/errgroup"

// ParallelDo forks f1 and f2 and waits for both to finish. Used by the
// recursive furthest-jump builder to fork its left and right subproblems.
// Built on golang.org/x/sync/errgroup rather than a bare sync.WaitGroup so
// the two branches share one join point; the zero-value Group used here
// carries no context, so nothing is cancelled. Neither closure returns an
// error, but errgroup.Group is still the idiomatic fork/join type for this
// shape.
func ParallelDo(f1, f2 func()) {
	var g errgroup.Group
	g.Go(func() error {
		f1()
		return nil
	})
	g.Go(func() error {
		f2()
		return nil
	})
	_ = g.Wait()
}
