// Package parallel provides the optional data-parallel execution strategy
// for KAN layers. Parallelism is across independent per-node or per-edge
// work inside one forward/backward call; the core's correctness never
// depends on it, only floating-point summation order may vary.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Small layers are cheaper to run sequentially.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too
// small. f must touch disjoint state for distinct i.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

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

// ForEdges executes f(i, j) over the dense nIn x nOut edge matrix of a
// layer. Each edge is visited by exactly one worker.
func ForEdges(nIn, nOut int, f func(i, j int), cfg Config) {
	n := nIn * nOut
	For(n, func(k int) {
		f(k/nOut, k%nOut)
	}, cfg)
}
