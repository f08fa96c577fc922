// Package parallel runs independent export jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines draining one shared job queue.
//
// Export jobs are few and coarse (one per font size), so a single queue
// keeps the pool simple; there is no per-worker queue or work stealing.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue holds pending jobs.
	queue chan func()

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// closeOnce guards closing the queue.
	closeOnce sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker runs jobs until the queue is closed and drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		if job != nil {
			job()
		}
	}
}

// ExecuteAll runs every job on the pool and waits for all to complete.
// Jobs may finish in any order; callers that need ordered results should
// write them into a slice indexed by job position.
// If the pool is closed, the jobs run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))
	for _, fn := range work {
		p.queue <- func() {
			defer completionWG.Done()
			fn()
		}
	}
	completionWG.Wait()
}

// Close stops accepting work, waits for queued jobs and stops all workers.
// Close is safe to call multiple times.
// Close must not run concurrently with ExecuteAll.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() {
		p.running.Store(false)
		close(p.queue)
	})
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
