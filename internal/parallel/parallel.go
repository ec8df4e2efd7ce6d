// Package parallel splits index ranges across worker goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Workers      int // Maximum concurrent goroutines; <= 1 runs sequentially.
	MinChunkSize int // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 4096,
	}
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{Workers: 1}
}

// For calls f(start, end) on consecutive chunks covering [0, n) and waits
// for all of them. Chunks never overlap, so f may write to disjoint slices
// of a shared buffer without locking.
//
// Falls back to a single call f(0, n) if parallelism is disabled or n does
// not exceed one chunk.
func For(n int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk := max(cfg.MinChunkSize, 1)
	if cfg.Workers <= 1 || n <= minChunk {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.Workers-1)/cfg.Workers, minChunk)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

// Each calls f(i) for every i in [0, n), distributing indices like For.
func Each(n int, cfg Config, f func(i int)) {
	For(n, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}
