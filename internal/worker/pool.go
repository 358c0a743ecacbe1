// Package worker provides a small generic worker pool for independent, CPU-bound jobs.
package worker

import (
	"runtime"
	"sync"
)

// Item is a unit of work tagged with its submission index.
type Item[T any] struct {
	Value T
	Index int // Original index for tracking
}

// Result pairs a processed value with the index of the item that produced it.
type Result[R any] struct {
	Value R
	Index int
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item Item[T]) R

// Pool runs ProcessFunc over submitted items on a fixed number of goroutines.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Item[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*options)

type options struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(o *options) {
		if n >= 1 {
			o.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(o *options) {
		if size >= 1 {
			o.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options.
// Default: one worker per CPU, buffer size of 16.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	o := options{numWorkers: runtime.GOMAXPROCS(0), bufferSize: 16}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[T, R]{
		numWorkers:  o.numWorkers,
		bufferSize:  o.bufferSize,
		workChan:    make(chan Item[T], o.bufferSize),
		resultChan:  make(chan Result[R], o.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		p.resultChan <- Result[R]{Value: p.processFunc(item), Index: item.Index}
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item Item[T]) {
	p.workChan <- item
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// Map runs fn over values on a pool and returns the results in input order.
func Map[T, R any](values []T, fn func(T) R, opts ...PoolOption) []R {
	out := make([]R, len(values))
	pool := NewPool(func(item Item[T]) R { return fn(item.Value) }, opts...)
	pool.Start()
	go func() {
		for i, v := range values {
			pool.Submit(Item[T]{Value: v, Index: i})
		}
		pool.Close()
	}()
	for res := range pool.Results() {
		out[res.Index] = res.Value
	}
	return out
}
