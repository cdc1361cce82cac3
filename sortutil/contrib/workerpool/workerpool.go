// Copyright 2025 The go-sortutil Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool. A Pool is
// created once and reused across many operations, so repeated parallel
// sorts pay no goroutine-spawn or channel-allocation cost per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    pool.ParallelFor(len(batch), func(start, end int) {
//	        process(batch[start:end])
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is a single unit of work plus the barrier it reports to.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with the given number of workers, spawned
// immediately. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes; calling Close more
// than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into contiguous ranges, one per
// worker. Blocks until all ranges complete. A closed pool degrades to a
// single sequential call.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- task{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
