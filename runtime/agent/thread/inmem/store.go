// Package inmem provides in-memory implementations of the thread.ThreadStore,
// thread.TaskStore, and thread.ScratchpadStore interfaces.
//
// Intended for tests, local development, and the orchestrator's "ephemeral
// stores" mode (a fresh bundle per execution, dropped at context teardown).
// Production deployments should use a durable implementation.
package inmem

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent"
	"github.com/nexusflow/agentrt/runtime/agent/hooks"
	"github.com/nexusflow/agentrt/runtime/agent/model"
	"github.com/nexusflow/agentrt/runtime/agent/thread"
)

var (
	ErrThreadNotFound = errors.New("thread not found")
	ErrTaskNotFound   = errors.New("task not found")
)

type (
	// ThreadStore is an in-memory thread.ThreadStore. Safe for concurrent use.
	ThreadStore struct {
		mu      sync.RWMutex
		threads map[string]thread.Thread
	}

	// TaskStore is an in-memory thread.TaskStore. Safe for concurrent use.
	TaskStore struct {
		mu       sync.RWMutex
		tasks    map[string]thread.Task
		messages map[string][]thread.TaskMessage // keyed by task id
	}

	// ScratchpadStore is an in-memory thread.ScratchpadStore. Safe for
	// concurrent use.
	ScratchpadStore struct {
		mu      sync.RWMutex
		entries map[string][]thread.ScratchpadEntry // keyed by thread id
	}
)

// NewThreadStore returns an empty ThreadStore.
func NewThreadStore() *ThreadStore {
	return &ThreadStore{threads: make(map[string]thread.Thread)}
}

// CreateThread implements thread.ThreadStore.
func (s *ThreadStore) CreateThread(_ context.Context, t thread.Thread) (thread.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.threads[t.ID]; ok {
		return existing, nil
	}
	s.threads[t.ID] = t
	return t, nil
}

// GetThread implements thread.ThreadStore.
func (s *ThreadStore) GetThread(_ context.Context, id string) (thread.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.threads[id]
	if !ok {
		return thread.Thread{}, ErrThreadNotFound
	}
	return t, nil
}

// UpdateThread implements thread.ThreadStore.
func (s *ThreadStore) UpdateThread(_ context.Context, t thread.Thread) (thread.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[t.ID]; !ok {
		return thread.Thread{}, ErrThreadNotFound
	}
	s.threads[t.ID] = t
	return t, nil
}

// DeleteThread implements thread.ThreadStore.
func (s *ThreadStore) DeleteThread(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.threads, id)
	return nil
}

// ListThreads implements thread.ThreadStore.
func (s *ThreadStore) ListThreads(_ context.Context, agentID agent.Ident, limit, offset int) ([]thread.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []thread.Thread
	for _, t := range s.threads {
		if agentID != "" && t.AgentID != agentID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// UpdateThreadWithMessage implements thread.ThreadStore.
func (s *ThreadStore) UpdateThreadWithMessage(_ context.Context, threadID, lastMessage string, at time.Time) (thread.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[threadID]
	if !ok {
		return thread.Thread{}, ErrThreadNotFound
	}
	t.MessageCount++
	t.LastMessage = lastMessage
	t.UpdatedAt = at
	s.threads[threadID] = t
	return t, nil
}

// NewTaskStore returns an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:    make(map[string]thread.Task),
		messages: make(map[string][]thread.TaskMessage),
	}
}

// CreateTask implements thread.TaskStore.
func (s *TaskStore) CreateTask(_ context.Context, t thread.Task) (thread.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.tasks[t.ID]; ok {
		return existing, nil
	}
	s.tasks[t.ID] = t
	return t, nil
}

// GetTask implements thread.TaskStore.
func (s *TaskStore) GetTask(_ context.Context, id string) (thread.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return thread.Task{}, ErrTaskNotFound
	}
	return t, nil
}

// UpdateTaskStatus implements thread.TaskStore.
func (s *TaskStore) UpdateTaskStatus(_ context.Context, id string, status thread.TaskStatus) (thread.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return thread.Task{}, ErrTaskNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	return t, nil
}

// UpdateParentTask implements thread.TaskStore.
func (s *TaskStore) UpdateParentTask(_ context.Context, id, parentTaskID string) (thread.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return thread.Task{}, ErrTaskNotFound
	}
	t.ParentTaskID = parentTaskID
	s.tasks[id] = t
	return t, nil
}

// CancelTask implements thread.TaskStore.
func (s *TaskStore) CancelTask(ctx context.Context, id string) (thread.Task, error) {
	return s.UpdateTaskStatus(ctx, id, thread.TaskCanceled)
}

// AddMessageToTask implements thread.TaskStore.
func (s *TaskStore) AddMessageToTask(_ context.Context, taskID string, msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[taskID]; !ok {
		return ErrTaskNotFound
	}
	m := msg
	s.messages[taskID] = append(s.messages[taskID], thread.TaskMessage{Message: &m, At: time.Now()})
	return nil
}

// AddEventToTask implements thread.TaskStore.
func (s *TaskStore) AddEventToTask(_ context.Context, taskID string, evt hooks.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[taskID]; !ok {
		return ErrTaskNotFound
	}
	s.messages[taskID] = append(s.messages[taskID], thread.TaskMessage{Event: evt, At: time.Now()})
	return nil
}

// ListTasks implements thread.TaskStore.
func (s *TaskStore) ListTasks(_ context.Context, threadID string) ([]thread.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []thread.Task
	for _, t := range s.tasks {
		if t.ThreadID == threadID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// GetHistory implements thread.TaskStore.
func (s *TaskStore) GetHistory(_ context.Context, threadID string, filter thread.HistoryFilter) ([]thread.TaskMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed := make(map[string]bool, len(filter.TaskIDs))
	for _, id := range filter.TaskIDs {
		allowed[id] = true
	}

	var out []thread.TaskMessage
	for taskID, t := range s.tasks {
		if t.ThreadID != threadID {
			continue
		}
		if len(allowed) > 0 && !allowed[taskID] {
			continue
		}
		out = append(out, s.messages[taskID]...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}

// NewScratchpadStore returns an empty ScratchpadStore.
func NewScratchpadStore() *ScratchpadStore {
	return &ScratchpadStore{entries: make(map[string][]thread.ScratchpadEntry)}
}

// AddEntry implements thread.ScratchpadStore.
func (s *ScratchpadStore) AddEntry(_ context.Context, threadID string, e thread.ScratchpadEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[threadID] = append(s.entries[threadID], e)
	return nil
}

// GetEntries implements thread.ScratchpadStore.
func (s *ScratchpadStore) GetEntries(_ context.Context, threadID, taskID string, limit int) ([]thread.ScratchpadEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []thread.ScratchpadEntry
	for _, e := range s.entries[threadID] {
		if taskID == "" || e.TaskID == taskID {
			out = append(out, e)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// GetAllEntries implements thread.ScratchpadStore.
func (s *ScratchpadStore) GetAllEntries(_ context.Context, threadID string) ([]thread.ScratchpadEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]thread.ScratchpadEntry, len(s.entries[threadID]))
	copy(out, s.entries[threadID])
	return out, nil
}

// ClearEntries implements thread.ScratchpadStore.
func (s *ScratchpadStore) ClearEntries(_ context.Context, threadID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if taskID == "" {
		delete(s.entries, threadID)
		return nil
	}
	kept := s.entries[threadID][:0]
	for _, e := range s.entries[threadID] {
		if e.TaskID != taskID {
			kept = append(kept, e)
		}
	}
	s.entries[threadID] = kept
	return nil
}
