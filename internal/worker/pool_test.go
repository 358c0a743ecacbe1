package worker

import (
	"sync/atomic"
	"testing"
)

// collectResults drains the result channel and returns the count.
func collectResults[R any](pool *Pool[int, R]) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(func(item Item[int]) int {
		atomic.AddInt32(&processed, 1)
		return item.Value * 2
	}, WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(Item[int]{Value: i, Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolOptionsIgnoreInvalid keeps defaults for non-positive option values.
func TestPoolOptionsIgnoreInvalid(t *testing.T) {
	pool := NewPool(func(item Item[int]) int { return item.Value }, WithWorkers(3), WithWorkers(0), WithBufferSize(-1))
	if pool.numWorkers != 3 {
		t.Errorf("numWorkers = %d; want 3", pool.numWorkers)
	}
	if pool.bufferSize != 16 {
		t.Errorf("bufferSize = %d; want 16", pool.bufferSize)
	}
}

// TestMapPreservesOrder checks results line up with their inputs.
func TestMapPreservesOrder(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	out := Map(in, func(v int) int { return v * v }, WithWorkers(7))
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d; want %d", i, v, i*i)
		}
	}
}

// TestMapEmpty returns an empty slice without starting work.
func TestMapEmpty(t *testing.T) {
	out := Map(nil, func(v int) int { return v }, WithWorkers(2))
	if len(out) != 0 {
		t.Fatalf("len(out) = %d; want 0", len(out))
	}
}
