package task

import (
	"context"
	"log/slog"
	"sync"
)

// WorkerPool runs a fixed number of goroutines that drain a task queue and
// hand each task to a process callback. The pool owns only concurrency; what
// processing means (status updates, error handling) belongs to the caller.
type WorkerPool struct {
	queue   TaskQueueReader
	process func(workerID int, task Task)
	count   int

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// NewWorkerPool creates a pool of workerCount goroutines over the queue.
// A non-positive workerCount is clamped to one worker.
func NewWorkerPool(
	queue TaskQueueReader,
	workerCount int,
	process func(workerID int, task Task),
	logger *slog.Logger,
) *WorkerPool {
	if workerCount <= 0 {
		logger.Warn("invalid worker count, using one worker", "requested", workerCount)
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		queue:   queue,
		process: process,
		count:   workerCount,
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}
}

// Start launches the worker goroutines.
func (p *WorkerPool) Start() {
	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop cancels all workers and waits for them to exit. Tasks already handed
// to a process callback run to completion.
func (p *WorkerPool) Stop() {
	p.cancel()
	p.wg.Wait()
}

// Wait blocks until every worker has exited. Used when the queue is closed
// and workers are expected to drain it rather than be cancelled.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("worker started", "worker_id", id)

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Debug("worker cancelled", "worker_id", id)
			return

		case task, ok := <-p.queue.Chan():
			if !ok {
				p.logger.Debug("queue closed, worker exiting", "worker_id", id)
				return
			}
			p.process(id, task)
		}
	}
}
