package parallel

import (
	"sync/atomic"
	"testing"
)

func TestChunks_CoversRangeExactlyOnce(t *testing.T) {
	const n = 103
	cfg := Config{Workers: 4, MinChunkSize: 1}

	var counts [n]int32
	Chunks(n, cfg, func(_, start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestChunks_ChunkIndexBounded(t *testing.T) {
	const n = 10
	cfg := Config{Workers: 3, MinChunkSize: 1}
	limit := NumChunks(n, cfg)

	Chunks(n, cfg, func(chunk, _, _ int) {
		if chunk < 0 || chunk >= limit {
			t.Errorf("chunk index %d out of range [0, %d)", chunk, limit)
		}
	})
}

func TestChunks_SequentialFallback(t *testing.T) {
	calls := 0
	Chunks(5, Config{Workers: 1, MinChunkSize: 1}, func(chunk, start, end int) {
		calls++
		if chunk != 0 || start != 0 || end != 5 {
			t.Errorf("sequential call = (%d, %d, %d), want (0, 0, 5)", chunk, start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential fallback made %d calls, want 1", calls)
	}
}

func TestChunks_EmptyRange(t *testing.T) {
	Chunks(0, DefaultConfig(), func(_, _, _ int) {
		t.Error("f must not be called for an empty range")
	})
}

func TestNumChunks(t *testing.T) {
	cfg := Config{Workers: 4, MinChunkSize: 1}
	if got := NumChunks(103, cfg); got != 4 {
		t.Errorf("NumChunks(103) = %d, want 4", got)
	}
	if got := NumChunks(3, Config{Workers: 8, MinChunkSize: 1}); got != 3 {
		t.Errorf("NumChunks(3, workers=8) = %d, want 3", got)
	}
	if got := NumChunks(100, Config{Workers: 1}); got != 1 {
		t.Errorf("NumChunks(workers=1) = %d, want 1", got)
	}
}
