// Package parallel provides the work-splitting helper used for batch
// gradient computation.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split across goroutines.
type Config struct {
	Workers      int // Goroutine count; values below 2 run sequentially.
	MinChunkSize int // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 1,
	}
}

// NumChunks returns how many contiguous ranges Chunks will produce for n
// items, which is at most cfg.Workers.
func NumChunks(n int, cfg Config) int {
	if cfg.Workers < 2 || n <= cfg.MinChunkSize {
		return 1
	}
	chunkSize := chunkSize(n, cfg)
	return (n + chunkSize - 1) / chunkSize
}

// Chunks partitions [0, n) into contiguous ranges and calls f once per
// range, each on its own goroutine. The chunk index passed to f is stable
// and smaller than NumChunks(n, cfg), so callers can keep per-chunk state
// without locking. Chunks returns after every range has completed.
//
// Runs f(0, 0, n) sequentially when parallelism is disabled or n is small.
func Chunks(n int, cfg Config, f func(chunk, start, end int)) {
	if n == 0 {
		return
	}
	if cfg.Workers < 2 || n <= cfg.MinChunkSize {
		f(0, 0, n)
		return
	}

	size := chunkSize(n, cfg)

	var wg sync.WaitGroup
	chunk := 0
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(chunk, s, e int) {
			defer wg.Done()
			f(chunk, s, e)
		}(chunk, start, end)
		chunk++
	}
	wg.Wait()
}

func chunkSize(n int, cfg Config) int {
	size := (n + cfg.Workers - 1) / cfg.Workers
	return max(size, cfg.MinChunkSize)
}
