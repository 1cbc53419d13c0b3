// Package parallel runs per-band render work on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with one queue per worker. An idle
// worker steals from the other queues, so a band that lands in the slow
// part of the set does not leave the rest of the pool waiting.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held for reading while Run enqueues and for writing while
	// Close shuts the pool, so no job lands in a queue after its worker
	// has exited.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers. If workers
// is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	depth := max(workers*4, 8)
	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run calls fn(0) .. fn(n-1) across the pool and waits for every started
// call to return. Once ctx is done, calls that have not started yet are
// skipped and Run returns ctx.Err(). Run on a closed pool executes nothing
// and returns ErrClosed.
func (p *WorkerPool) Run(ctx context.Context, n int, fn func(i int)) error {
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return ErrClosed
	}
	if n <= 0 {
		p.mu.RUnlock()
		return ctx.Err()
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(i)
		}
	}
	p.mu.RUnlock()
	wg.Wait()

	if !p.running.Load() {
		return ErrClosed
	}
	return ctx.Err()
}

// Close stops the workers after the queued work has run. Close is safe to
// call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.mu.Lock()
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
