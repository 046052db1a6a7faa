package cliffnet

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// resolveWorkers maps a requested worker count to an effective one.
// Zero or negative means one worker per CPU.
func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}

// parallelRange splits [0, n) into contiguous blocks and runs fn on each.
// Each index belongs to exactly one block, so callers that write only to
// their own block see results independent of the worker count.
func parallelRange(ctx context.Context, n, workers int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return nil
	}

	// Cache-aware scheduling: each worker processes one contiguous block
	blockSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += blockSize {
		start := lo
		end := min(start+blockSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(start, end)
			return nil
		})
	}
	return g.Wait()
}
