package hooks

import (
	"github.com/nexusflow/agentrt/runtime/agent"
)

type (
	// PlanPrunedEvent fires when the planner drops steps from the current
	// plan, typically after a policy decision narrows the allowed tool set or
	// a tool failure makes a branch of the plan unreachable.
	PlanPrunedEvent struct {
		baseEvent
		RemovedSteps []string
	}

	// HandoverReason classifies why a turn was transferred from one agent to
	// another via transfer_to_agent.
	HandoverReason string

	// AgentHandoverEvent fires when transfer_to_agent hands a turn from one
	// agent to another. The new step loop runs under the same thread, with a
	// task whose ParentTaskID is the handing-over task's ID.
	AgentHandoverEvent struct {
		baseEvent
		From           agent.Ident
		To             agent.Ident
		Reason         string
		HandoverReason HandoverReason
	}

	// WorkflowStartedEvent fires when a workflow agent begins executing its
	// declarative node graph.
	WorkflowStartedEvent struct {
		baseEvent
		WorkflowName string
		NodeCount    int
	}

	// NodeStartedEvent fires when a workflow node (a Tool or Agent step)
	// begins execution.
	NodeStartedEvent struct {
		baseEvent
		NodeName string
		NodeKind string // "tool" or "agent"
	}

	// NodeCompletedEvent fires when a workflow node finishes, successfully or
	// not.
	NodeCompletedEvent struct {
		baseEvent
		NodeName string
		Success  bool
		Error    string
	}

	// TodosUpdatedEvent fires when the todo-tracking built-in tool changes
	// the run's todo list.
	TodosUpdatedEvent struct {
		baseEvent
		FormattedTodos string
		Action         string // "add", "update", "complete", "clear"
		TodoCount      int
	}

	// BrowserSessionStartedEvent fires when a browser-automation tool opens a
	// new session.
	BrowserSessionStartedEvent struct {
		baseEvent
		SessionID string
	}

	// BrowserScreenshotEvent fires when a browser-automation tool captures a
	// screenshot. High-volume; excluded from the task-store sink (see
	// TaskStoreSubscriber).
	BrowserScreenshotEvent struct {
		baseEvent
		SessionID string
		URI       string
		Step      int
	}

	// InlineHookRequestedEvent fires when a hook must run inline before the
	// step loop can continue, such as a compaction or moderation hook.
	InlineHookRequestedEvent struct {
		baseEvent
		HookName string
		Reason   string
	}
)

const (
	// HandoverReasonCapability indicates the receiving agent has a tool or
	// skill the handing-over agent lacks.
	HandoverReasonCapability HandoverReason = "capability"
	// HandoverReasonEscalation indicates the turn was escalated, typically to
	// a more capable or more privileged agent.
	HandoverReasonEscalation HandoverReason = "escalation"
	// HandoverReasonUserRequest indicates the user explicitly asked to switch
	// agents.
	HandoverReasonUserRequest HandoverReason = "user_request"
)

// NewPlanPrunedEvent constructs a PlanPrunedEvent naming the removed steps.
func NewPlanPrunedEvent(runID string, agentID agent.Ident, sessionID string, removedSteps []string) *PlanPrunedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &PlanPrunedEvent{baseEvent: be, RemovedSteps: append([]string(nil), removedSteps...)}
}

// NewAgentHandoverEvent constructs an AgentHandoverEvent for a
// transfer_to_agent tool result.
func NewAgentHandoverEvent(runID string, agentID agent.Ident, sessionID string, from, to agent.Ident, reason string, handoverReason HandoverReason) *AgentHandoverEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &AgentHandoverEvent{baseEvent: be, From: from, To: to, Reason: reason, HandoverReason: handoverReason}
}

// NewWorkflowStartedEvent constructs a WorkflowStartedEvent.
func NewWorkflowStartedEvent(runID string, agentID agent.Ident, sessionID, workflowName string, nodeCount int) *WorkflowStartedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &WorkflowStartedEvent{baseEvent: be, WorkflowName: workflowName, NodeCount: nodeCount}
}

// NewNodeStartedEvent constructs a NodeStartedEvent.
func NewNodeStartedEvent(runID string, agentID agent.Ident, sessionID, nodeName, nodeKind string) *NodeStartedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &NodeStartedEvent{baseEvent: be, NodeName: nodeName, NodeKind: nodeKind}
}

// NewNodeCompletedEvent constructs a NodeCompletedEvent.
func NewNodeCompletedEvent(runID string, agentID agent.Ident, sessionID, nodeName string, success bool, errMsg string) *NodeCompletedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &NodeCompletedEvent{baseEvent: be, NodeName: nodeName, Success: success, Error: errMsg}
}

// NewTodosUpdatedEvent constructs a TodosUpdatedEvent.
func NewTodosUpdatedEvent(runID string, agentID agent.Ident, sessionID, formattedTodos, action string, todoCount int) *TodosUpdatedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &TodosUpdatedEvent{baseEvent: be, FormattedTodos: formattedTodos, Action: action, TodoCount: todoCount}
}

// NewBrowserSessionStartedEvent constructs a BrowserSessionStartedEvent.
func NewBrowserSessionStartedEvent(runID string, agentID agent.Ident, sessionID, browserSessionID string) *BrowserSessionStartedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &BrowserSessionStartedEvent{baseEvent: be, SessionID: browserSessionID}
}

// NewBrowserScreenshotEvent constructs a BrowserScreenshotEvent.
func NewBrowserScreenshotEvent(runID string, agentID agent.Ident, sessionID, browserSessionID, uri string, step int) *BrowserScreenshotEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &BrowserScreenshotEvent{baseEvent: be, SessionID: browserSessionID, URI: uri, Step: step}
}

// NewInlineHookRequestedEvent constructs an InlineHookRequestedEvent.
func NewInlineHookRequestedEvent(runID string, agentID agent.Ident, sessionID, hookName, reason string) *InlineHookRequestedEvent {
	be := newBaseEvent(runID, agentID)
	be.sessionID = sessionID
	return &InlineHookRequestedEvent{baseEvent: be, HookName: hookName, Reason: reason}
}

func (e *PlanPrunedEvent) Type() EventType            { return PlanPruned }
func (e *AgentHandoverEvent) Type() EventType         { return AgentHandover }
func (e *WorkflowStartedEvent) Type() EventType       { return WorkflowStarted }
func (e *NodeStartedEvent) Type() EventType           { return NodeStarted }
func (e *NodeCompletedEvent) Type() EventType         { return NodeCompleted }
func (e *TodosUpdatedEvent) Type() EventType          { return TodosUpdated }
func (e *BrowserSessionStartedEvent) Type() EventType { return BrowserSessionStarted }
func (e *BrowserScreenshotEvent) Type() EventType     { return BrowserScreenshot }
func (e *InlineHookRequestedEvent) Type() EventType   { return InlineHookRequested }
