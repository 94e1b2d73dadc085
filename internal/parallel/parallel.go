// Package parallel provides structured parallel execution utilities.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// Sequential returns a config that disables all fan-out. Shard workers
// use it to avoid oversubscription when several devices run at once.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + cfg.NumWorkers - 1) / cfg.NumWorkers

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForErr executes f(i) for i in [0, n) and aggregates failures: the first
// error wins, siblings are signalled to stop, and ForErr returns only
// after every task has finished.
func ForErr(n int, f func(i int) error, cfg Config) error {
	if !cfg.Enabled || n < 2 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	chunkSize := (n + cfg.NumWorkers - 1) / cfg.NumWorkers

	for start := 0; start < n; start += chunkSize {
		s, e := start, min(start+chunkSize, n)
		g.Go(func() error {
			for i := s; i < e; i++ {
				// A sibling failed; stop early.
				if err := ctx.Err(); err != nil {
					return nil
				}
				if err := f(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
