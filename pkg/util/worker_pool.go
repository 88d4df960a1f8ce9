package util

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is a unit of work submitted to the pool.
type Job func()

// WorkerPool executes jobs on a bounded set of goroutines. Used by the CLI
// batch mode to score many sessions concurrently without unbounded goroutine
// growth.
type WorkerPool struct {
	jobs      chan Job
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	submitted int64
	completed int64
	stopOnce  sync.Once
}

// NewWorkerPool creates and starts a pool. Non-positive workers defaults to
// the CPU count; non-positive queueSize defaults to ten slots per worker.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if queueSize <= 0 {
		queueSize = workers * 10
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		jobs:   make(chan Job, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job()
			atomic.AddInt64(&p.completed, 1)
		case <-p.ctx.Done():
			return
		}
	}
}

// Submit queues a job. It returns false when the queue is full or the pool
// is stopped; the caller decides whether to run the job inline or drop it.
func (p *WorkerPool) Submit(job Job) bool {
	if job == nil {
		return false
	}
	select {
	case p.jobs <- job:
		atomic.AddInt64(&p.submitted, 1)
		return true
	case <-p.ctx.Done():
		return false
	default:
		return false
	}
}

// Wait blocks until every queued job has run, then stops the workers. The
// pool cannot be reused afterwards.
func (p *WorkerPool) Wait() {
	p.stopOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
	p.cancel()
}

// Completed reports how many jobs have finished.
func (p *WorkerPool) Completed() int64 {
	return atomic.LoadInt64(&p.completed)
}

// Submitted reports how many jobs were accepted.
func (p *WorkerPool) Submitted() int64 {
	return atomic.LoadInt64(&p.submitted)
}
