package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// ErrPoolStopped is returned when a job is enqueued after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool. A pool with one worker runs jobs strictly
// one after another.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			p.drain()
			return
		}
	}
}

// drain runs whatever was queued before Stop so no accepted job is lost
func (p *Pool) drain() {
	for {
		select {
		case job := <-p.jobQueue:
			logger.FromContext(p.ctx).Debug(LogMsgPoolDraining)
			p.run(job)
		default:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(p.ctx).Error(LogMsgWorkerJobPanic, "panic", fmt.Sprint(r))
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It fails with ErrPoolStopped once Stop has been called.
func (p *Pool) Enqueue(job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers, runs any queued jobs and waits for them to finish.
// It is safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		p.cancel()
		logger.FromContext(p.ctx).Debug(LogMsgPoolStopped)
	})
}
