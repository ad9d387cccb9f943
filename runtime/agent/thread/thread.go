// Package thread defines the persistence surface for conversation threads,
// tasks, and their messages/events. A Thread is a conversation container; a
// Task is one user-initiated unit of work within a thread, executed by one or
// more runs of the step loop (runtime/agent/runtime). Tasks own an ordered
// sequence of TaskMessages, each either a persisted model.Message (the
// history surface the model sees) or an Event (the observability surface).
package thread

import (
	"context"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent"
	"github.com/nexusflow/agentrt/runtime/agent/hooks"
	"github.com/nexusflow/agentrt/runtime/agent/model"
)

// TaskStatus is the lifecycle state of a Task.
type TaskStatus string

const (
	TaskPending       TaskStatus = "pending"
	TaskRunning       TaskStatus = "running"
	TaskInputRequired TaskStatus = "input_required"
	TaskCompleted     TaskStatus = "completed"
	TaskFailed        TaskStatus = "failed"
	TaskCanceled      TaskStatus = "canceled"
)

type (
	// Thread is a conversation container. Created on first message; updated
	// on each subsequent user message.
	Thread struct {
		ID          string
		AgentID     agent.Ident
		Title       string
		CreatedAt   time.Time
		UpdatedAt   time.Time
		MessageCount int
		LastMessage string
		Metadata    map[string]string
		Attributes  map[string]any
		ExternalID  string
	}

	// Task is one user-initiated unit of work within a thread. ParentTaskID is
	// set for subagent tasks, forming a DAG over the owning thread.
	Task struct {
		ID           string
		ThreadID     string
		ParentTaskID string
		Status       TaskStatus
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	// TaskMessage is one entry in a task's ordered history: exactly one of
	// Message or Event is set.
	TaskMessage struct {
		Message *model.Message
		Event   hooks.Event
		At      time.Time
	}

	// HistoryFilter narrows GetHistory to a subset of tasks within a thread.
	HistoryFilter struct {
		// TaskIDs, when non-empty, restricts history to these tasks (used so
		// sibling tasks under the same thread don't leak into each other's
		// prompt).
		TaskIDs []string
	}

	// ScratchpadEntry is one append-only record in a task's scratchpad, used
	// for summarization and for planning strategies to compress history under
	// a token budget.
	ScratchpadEntry struct {
		Timestamp    time.Time
		TaskID       string
		ParentTaskID string
		EntryKind    string
		Payload      any
	}

	// ThreadStore persists Thread records.
	ThreadStore interface {
		CreateThread(ctx context.Context, t Thread) (Thread, error)
		GetThread(ctx context.Context, id string) (Thread, error)
		UpdateThread(ctx context.Context, t Thread) (Thread, error)
		DeleteThread(ctx context.Context, id string) error
		ListThreads(ctx context.Context, agentID agent.Ident, limit, offset int) ([]Thread, error)
		// UpdateThreadWithMessage bumps UpdatedAt/MessageCount/LastMessage in
		// one write, as happens on every new user message.
		UpdateThreadWithMessage(ctx context.Context, threadID, lastMessage string, at time.Time) (Thread, error)
	}

	// TaskStore persists Task records and their ordered TaskMessages.
	TaskStore interface {
		CreateTask(ctx context.Context, t Task) (Task, error)
		GetTask(ctx context.Context, id string) (Task, error)
		UpdateTaskStatus(ctx context.Context, id string, status TaskStatus) (Task, error)
		UpdateParentTask(ctx context.Context, id, parentTaskID string) (Task, error)
		CancelTask(ctx context.Context, id string) (Task, error)
		AddMessageToTask(ctx context.Context, taskID string, msg model.Message) error
		AddEventToTask(ctx context.Context, taskID string, evt hooks.Event) error
		ListTasks(ctx context.Context, threadID string) ([]Task, error)
		// GetHistory reads back the ordered TaskMessages for a thread, filtered
		// to the given tasks if filter.TaskIDs is non-empty, sorted by
		// creation time.
		GetHistory(ctx context.Context, threadID string, filter HistoryFilter) ([]TaskMessage, error)
	}

	// ScratchpadStore persists append-only ScratchpadEntry records per
	// (thread, task).
	ScratchpadStore interface {
		AddEntry(ctx context.Context, threadID string, e ScratchpadEntry) error
		GetEntries(ctx context.Context, threadID, taskID string, limit int) ([]ScratchpadEntry, error)
		GetAllEntries(ctx context.Context, threadID string) ([]ScratchpadEntry, error)
		ClearEntries(ctx context.Context, threadID, taskID string) error
	}
)
