// Package memory exposes agent memory storage contracts and helpers for
// persisting and retrieving agent run history. Memory stores record the
// chronological sequence of messages, tool calls, and results so planners
// and scratchpad readers can reference prior turns when generating responses.
package memory

import (
	"context"
	"time"
)

type (
	// Store persists agent run history so planners and tooling can inspect prior
	// turns. Implementations must be thread-safe and handle concurrent reads/writes
	// to the same run. Production deployments typically use a durable backend
	// (MongoDB, etc.); see features/memory/mongo for an example.
	Store interface {
		// LoadRun retrieves the snapshot for the given agent and run. Returns an empty
		// snapshot (not an error) if the run doesn't exist yet, allowing callers to
		// treat absence as empty history. Returns an error only for storage failures
		// or connectivity issues.
		LoadRun(ctx context.Context, agentID, runID string) (Snapshot, error)

		// AppendEvents appends events to the run's history. Events should be written
		// atomically if the backend supports it. Returns an error if the write fails.
		AppendEvents(ctx context.Context, agentID, runID string, events ...Event) error
	}

	// Snapshot captures the durable state of a run at a point in time. Snapshots are
	// immutable once returned by LoadRun; concurrent writes create new snapshots.
	Snapshot struct {
		AgentID string
		RunID   string
		// Events lists the chronological memory events persisted so far, ordered by
		// Timestamp ascending. Empty if the run has no history yet.
		Events []Event
		// Meta carries implementation-defined metadata such as database cursors,
		// version numbers, or sync tokens. Callers should not rely on these fields.
		Meta map[string]any
	}

	// Event describes a single entry persisted to the memory store. Events form a
	// chronological log of the agent's interactions, tool invocations, and responses.
	Event struct {
		Type      EventType
		Timestamp time.Time
		// Data holds the event-specific payload. The structure depends on Type:
		// user/assistant messages carry text or structured parts, tool calls carry
		// arguments, tool results carry return values.
		Data any
		// Labels provides structured metadata for filtering or policy decisions.
		Labels map[string]string
	}

	// Reader provides read-only access to a snapshot, used by planners and the
	// scratchpad to query prior turns without touching storage directly.
	Reader interface {
		Events() []Event
		FilterByType(t EventType) []Event
		// Latest returns the most recent event of the given type. ok is false if no
		// event of that type exists.
		Latest(t EventType) (e Event, ok bool)
	}

	// Annotation represents planner- or policy-supplied metadata appended during
	// execution. Annotations are persisted as EventAnnotation entries.
	Annotation struct {
		Message string
		Labels  map[string]string
	}
)

// EventType enumerates persisted memory event categories.
type EventType string

const (
	EventUserMessage      EventType = "user_message"
	EventAssistantMessage EventType = "assistant_message"
	EventToolCall         EventType = "tool_call"
	EventToolResult       EventType = "tool_result"
	EventPlannerNote      EventType = "planner_note"
	EventAnnotation       EventType = "annotation"
)

// snapshotReader is the default Reader implementation, wrapping a Snapshot's
// events slice with filtering helpers.
type snapshotReader struct {
	events []Event
}

// NewReader wraps events in a Reader for filtering and lookup.
func NewReader(events []Event) Reader {
	cp := make([]Event, len(events))
	copy(cp, events)
	return &snapshotReader{events: cp}
}

func (r *snapshotReader) Events() []Event { return r.events }

func (r *snapshotReader) FilterByType(t EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *snapshotReader) Latest(t EventType) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return Event{}, false
}
