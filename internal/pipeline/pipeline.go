/*
Package pipeline runs independent indexed jobs on a pool of workers.

Indices are handed out in increasing order. When a job fails no further
indices are handed out, but jobs already started run to completion, so every
index lower than the failing one has been processed by the time Run returns.
The error reported is always the one with the lowest index, which is the same
error a sequential loop would have stopped at.
*/
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

func generate(ctx context.Context, n int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Run calls fn for every index in [0, n) using up to workers goroutines. A
// workers value less than one uses runtime.NumCPU().
func Run(workers, n int, fn func(int) error) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	errs := make([]error, n)

	g, ctx := errgroup.WithContext(context.Background())
	in := generate(ctx, n)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range in {
				if err := fn(i); err != nil {
					errs[i] = err
					return err
				}
			}
			return nil
		})
	}

	if g.Wait() == nil {
		return nil
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
