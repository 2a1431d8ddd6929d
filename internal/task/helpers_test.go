package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// stubTask is a configurable Task implementation for tests.
type stubTask struct {
	id      uuid.UUID
	typ     string
	payload []byte
	status  TaskStatus
	execFn  func(ctx context.Context) error
}

func newStubTask(typ string, payload []byte) *stubTask {
	return &stubTask{
		id:      uuid.New(),
		typ:     typ,
		payload: payload,
		status:  TaskStatusPending,
		execFn:  func(ctx context.Context) error { return nil },
	}
}

func newStubTaskWithMessage(message string) *stubTask {
	data, _ := json.Marshal(map[string]string{"message": message})
	return newStubTask("stub_task", data)
}

func (t *stubTask) ID() uuid.UUID      { return t.id }
func (t *stubTask) Type() string       { return t.typ }
func (t *stubTask) Payload() []byte    { return t.payload }
func (t *stubTask) Status() TaskStatus { return t.status }

func (t *stubTask) Execute(ctx context.Context) error { return t.execFn(ctx) }

// memoryTaskStore is a thread-safe in-memory TaskStore that records every
// status transition, so tests can assert on task lifecycles.
type memoryTaskStore struct {
	mu          sync.RWMutex
	tasks       map[uuid.UUID]Task
	statuses    map[uuid.UUID]TaskStatus
	statusTimes map[uuid.UUID]time.Time
	history     map[uuid.UUID][]TaskStatus

	saveFn func(ctx context.Context, t Task) error
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{
		tasks:       make(map[uuid.UUID]Task),
		statuses:    make(map[uuid.UUID]TaskStatus),
		statusTimes: make(map[uuid.UUID]time.Time),
		history:     make(map[uuid.UUID][]TaskStatus),
	}
}

func (s *memoryTaskStore) SaveTask(ctx context.Context, t Task) error {
	if s.saveFn != nil {
		return s.saveFn(ctx, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID()] = t
	s.statuses[t.ID()] = t.Status()
	s.statusTimes[t.ID()] = time.Now()
	s.history[t.ID()] = append(s.history[t.ID()], t.Status())
	return nil
}

func (s *memoryTaskStore) UpdateTaskStatus(
	ctx context.Context,
	taskID uuid.UUID,
	status TaskStatus,
	errorMsg string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[taskID] = status
	s.statusTimes[taskID] = time.Now()
	s.history[taskID] = append(s.history[taskID], status)
	return nil
}

func (s *memoryTaskStore) GetPendingTasks(ctx context.Context) ([]Task, error) {
	return s.tasksWithStatus(TaskStatusPending, 0), nil
}

func (s *memoryTaskStore) GetProcessingTasks(ctx context.Context, olderThan time.Duration) ([]Task, error) {
	return s.tasksWithStatus(TaskStatusProcessing, olderThan), nil
}

func (s *memoryTaskStore) tasksWithStatus(status TaskStatus, olderThan time.Duration) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Task
	now := time.Now()
	for id, t := range s.tasks {
		if s.statuses[id] != status {
			continue
		}
		if olderThan > 0 && now.Sub(s.statusTimes[id]) <= olderThan {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *memoryTaskStore) WithTx(tx *sql.Tx) TaskStore {
	return s
}

func (s *memoryTaskStore) statusOf(id uuid.UUID) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statuses[id]
}

// setStatus backdates a task into the given state, as if a previous process
// had left it there.
func (s *memoryTaskStore) setStatus(id uuid.UUID, status TaskStatus, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = status
	s.statusTimes[id] = at
}

var _ TaskStore = (*memoryTaskStore)(nil)
