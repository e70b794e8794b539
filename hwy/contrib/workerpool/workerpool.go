// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting slice transforms across goroutines. A Pool is created once and
// reused across many calls, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    pool.ParallelForBlocks(len(batch), 512, func(start, end int) {
//	        process(batch[start:end])
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while a call queues work and for writing by
	// Close, so workC is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

// workItem is one chunk of a parallel call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close
// multiple times is safe, and so is calling it while other goroutines are
// inside ParallelFor: calls that already queued their work finish on the
// workers, later calls run on the caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ParallelFor calls fn over disjoint contiguous ranges covering [0, n),
// one range per worker at most, and blocks until all calls return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForBlocks(n, 1, fn)
}

// ParallelForBlocks is ParallelFor with every range boundary except n itself
// falling on a multiple of block. Slice kernels pass their vector width (or
// a multiple of it) so that only the last range has a partial vector.
func (p *Pool) ParallelForBlocks(n, block int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	block = max(block, 1)

	numBlocks := (n + block - 1) / block
	workers := min(p.numWorkers, numBlocks)
	if workers <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := (numBlocks + workers - 1) / workers * block

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
