package parallel

import (
	"context"
	"runtime"
	"sync"
)

// WorkerPool runs batches of fallible work on a fixed set of goroutines.
//
// All workers pull from one shared queue, so a slow band only delays the
// worker that picked it up. Each ExecuteAll call is a job: its items share a
// context that is cancelled as soon as one item fails.
//
// A nil *WorkerPool is valid and runs every job on the calling goroutine.
type WorkerPool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup

	// mu guards closed. Submitters hold the read lock while queueing so
	// Close never closes tasks under a pending send.
	mu     sync.RWMutex
	closed bool
}

// task is one item of a job.
type task struct {
	job *job
	fn  func(context.Context) error
}

// job tracks the items of a single ExecuteAll call.
type job struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
	err    error
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		tasks:   make(chan task, workers*4),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.job.run(t.fn)
	}
}

// ExecuteAll runs every item of work and waits for all of them.
//
// Items receive a context derived from ctx. The first item to fail cancels
// it, and items that have not started yet are skipped. The first error is
// returned; if ctx is cancelled before every item ran, ctx.Err() is.
//
// On a nil or closed pool the items run in order on the calling goroutine,
// stopping at the first error.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func(context.Context) error) error {
	if len(work) == 0 {
		return nil
	}

	j := &job{}
	j.ctx, j.cancel = context.WithCancel(ctx)
	defer j.cancel()

	if !p.submit(j, work) {
		for _, fn := range work {
			j.run(fn)
			if j.err != nil {
				break
			}
		}
		return j.err
	}

	j.wg.Wait()
	return j.err
}

// submit queues the items of j and reports whether the pool accepted them.
func (p *WorkerPool) submit(j *job, work []func(context.Context) error) bool {
	if p == nil {
		j.wg.Add(len(work))
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	j.wg.Add(len(work))
	if p.closed {
		return false
	}
	for _, fn := range work {
		p.tasks <- task{job: j, fn: fn}
	}
	return true
}

// run executes one item unless the job is already cancelled.
func (j *job) run(fn func(context.Context) error) {
	defer j.wg.Done()
	if err := j.ctx.Err(); err != nil {
		j.fail(err)
		return
	}
	if err := fn(j.ctx); err != nil {
		j.fail(err)
	}
}

// fail records err if it is the job's first error and cancels the job.
func (j *job) fail(err error) {
	j.once.Do(func() {
		j.err = err
		j.cancel()
	})
}

// Close stops the workers after the queued items have run.
// Later ExecuteAll calls run on the caller's goroutine. Close is idempotent.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}
