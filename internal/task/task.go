package task

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a background task. Statuses are
// persisted as strings so a restarted process can resume where it left off.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// TaskTypeCorpusGeneration identifies tasks that rebuild the sentence and
// matching-game corpora.
const TaskTypeCorpusGeneration = "corpus_generation"

// Task is a unit of background work. Payload must be a self-contained JSON
// document: a recovered task is reconstructed from it after a restart.
type Task interface {
	ID() uuid.UUID
	Type() string
	Payload() []byte
	Status() TaskStatus

	// Execute runs the task to completion or error. It must be safe to
	// retry: a task may run again after a crash mid-execution.
	Execute(ctx context.Context) error
}

// TaskQueueReader is the consumer side of a task queue.
type TaskQueueReader interface {
	// Chan returns the channel workers receive tasks from. The channel is
	// closed when the queue closes.
	Chan() <-chan Task
}

// TaskQueueWriter is the producer side of a task queue.
type TaskQueueWriter interface {
	// Enqueue hands a task to the queue without blocking. Returns
	// ErrQueueFull or ErrQueueClosed when the task cannot be accepted.
	Enqueue(task Task) error

	Close()
}

// TaskStore persists task state so in-flight work survives restarts.
type TaskStore interface {
	SaveTask(ctx context.Context, task Task) error

	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status TaskStatus, errorMsg string) error

	// GetPendingTasks returns every task still waiting to run.
	GetPendingTasks(ctx context.Context) ([]Task, error)

	// GetProcessingTasks returns tasks marked processing. A zero olderThan
	// returns all of them; otherwise only tasks that have sat in that state
	// longer than the given duration.
	GetProcessingTasks(ctx context.Context, olderThan time.Duration) ([]Task, error)

	// WithTx returns a store bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
