package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TaskRunnerConfig controls queue sizing, worker concurrency, and stuck-task
// detection for the runner.
type TaskRunnerConfig struct {
	WorkerCount int
	QueueSize   int

	// StuckTaskAge is how long a task may sit in the processing state
	// before it is considered abandoned and reset to pending.
	StuckTaskAge time.Duration

	// StuckTaskCheckInterval is how often abandoned tasks are looked for.
	// Zero defaults to five minutes.
	StuckTaskCheckInterval time.Duration
}

// DefaultTaskRunnerConfig returns the configuration used when nothing is
// set explicitly.
func DefaultTaskRunnerConfig() TaskRunnerConfig {
	return TaskRunnerConfig{
		WorkerCount:            2,
		QueueSize:              100,
		StuckTaskAge:           30 * time.Minute,
		StuckTaskCheckInterval: 5 * time.Minute,
	}
}

// TaskRunner accepts tasks, persists them, and executes them on a worker
// pool. Every status transition is written through the TaskStore so a
// restarted process can requeue unfinished work via Recover.
type TaskRunner struct {
	store  TaskStore
	queue  *TaskQueue
	pool   *WorkerPool
	config TaskRunnerConfig
	logger *slog.Logger

	ctx        context.Context
	cancel     context.CancelFunc
	monitorWG  sync.WaitGroup
	errHandler func(task Task, err error)
}

// NewTaskRunner creates a runner over the given store. The runner is inert
// until Start is called.
func NewTaskRunner(store TaskStore, config TaskRunnerConfig, logger *slog.Logger) *TaskRunner {
	if config.StuckTaskCheckInterval == 0 {
		config.StuckTaskCheckInterval = 5 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	r := &TaskRunner{
		store:  store,
		queue:  NewTaskQueue(config.QueueSize, logger),
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		errHandler: func(task Task, err error) {
			logger.Error("task execution failed",
				"task_id", task.ID(),
				"task_type", task.Type(),
				"error", err)
		},
	}
	r.pool = NewWorkerPool(r.queue, config.WorkerCount, r.processTask, logger)

	return r
}

// SetErrorHandler replaces the default log-only failure handler. Must be
// called before Start.
func (r *TaskRunner) SetErrorHandler(handler func(task Task, err error)) {
	r.errHandler = handler
}

// Submit persists the task and hands it to the worker queue. The task is
// durable once Submit returns nil: even if the process dies before a worker
// picks it up, Recover will requeue it.
func (r *TaskRunner) Submit(ctx context.Context, task Task) error {
	if err := r.store.SaveTask(ctx, task); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	if err := r.queue.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	return nil
}

// Start launches the worker pool and the stuck-task monitor.
func (r *TaskRunner) Start() error {
	r.pool.Start()

	r.monitorWG.Add(1)
	go r.stuckTaskMonitor()

	return nil
}

// Stop shuts the runner down: the monitor and workers are cancelled, then
// the queue is closed. In-flight task executions run to completion.
func (r *TaskRunner) Stop() {
	r.cancel()
	r.monitorWG.Wait()
	r.pool.Stop()
	r.queue.Close()
}

// Recover requeues work left over from a previous run: pending tasks go
// straight back on the queue, and tasks stranded in the processing state are
// reset to pending first. Call it after Start so workers are draining.
func (r *TaskRunner) Recover() error {
	ctx := context.Background()

	pending, err := r.store.GetPendingTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending tasks: %w", err)
	}

	stranded, err := r.store.GetProcessingTasks(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to get processing tasks: %w", err)
	}

	r.logger.Info("recovering unfinished tasks",
		"pending_count", len(pending),
		"processing_count", len(stranded))

	for _, t := range pending {
		r.requeue(t)
	}

	for _, t := range stranded {
		if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusPending, "Reset after recovery"); err != nil {
			r.logger.Error("failed to reset stranded task",
				"task_id", t.ID(),
				"task_type", t.Type(),
				"error", err)
			continue
		}
		r.requeue(t)
	}

	return nil
}

func (r *TaskRunner) requeue(t Task) {
	if err := r.queue.Enqueue(t); err != nil {
		r.logger.Error("failed to requeue task",
			"task_id", t.ID(),
			"task_type", t.Type(),
			"error", err)
	}
}

// processTask runs one task and records the outcome. It is the worker
// pool's process callback.
func (r *TaskRunner) processTask(workerID int, t Task) {
	ctx := context.Background()
	log := r.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
		"worker_id", workerID,
	)

	if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusProcessing, ""); err != nil {
		log.Error("failed to mark task processing", "error", err)
		return
	}

	log.Info("processing task")

	if err := t.Execute(ctx); err != nil {
		log.Error("task execution failed", "error", err)
		if updateErr := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusFailed, err.Error()); updateErr != nil {
			log.Error("failed to mark task failed", "error", updateErr)
		}
		r.errHandler(t, err)
		return
	}

	log.Info("task completed")
	if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusCompleted, ""); err != nil {
		log.Error("failed to mark task completed", "error", err)
	}
}

// stuckTaskMonitor periodically resets tasks that have been processing
// longer than StuckTaskAge and puts them back on the queue.
func (r *TaskRunner) stuckTaskMonitor() {
	defer r.monitorWG.Done()

	ticker := time.NewTicker(r.config.StuckTaskCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return

		case <-ticker.C:
			ctx := context.Background()

			stuck, err := r.store.GetProcessingTasks(ctx, r.config.StuckTaskAge)
			if err != nil {
				r.logger.Error("failed to check for stuck tasks", "error", err)
				continue
			}
			if len(stuck) == 0 {
				continue
			}

			r.logger.Info("found stuck tasks", "count", len(stuck))
			for _, t := range stuck {
				if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusPending,
					"Reset after being stuck in processing state"); err != nil {
					r.logger.Error("failed to reset stuck task",
						"task_id", t.ID(),
						"task_type", t.Type(),
						"error", err)
					continue
				}
				r.requeue(t)
			}
		}
	}
}
