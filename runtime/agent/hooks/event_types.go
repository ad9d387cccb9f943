package hooks

// EventType enumerates well-known runtime events broadcast on the hook bus.
// Each type corresponds to a specific phase in the agent workflow lifecycle.
// The set is closed: subscribers may safely exhaustively switch on it.
type EventType string

const (
	// RunStarted fires when a run begins execution. The payload carries the
	// initial RunContext and input.
	RunStarted EventType = "run_started"

	// RunCompleted fires after a run finishes, whether successfully, with a
	// failure, or canceled. See RunCompletedEvent.Status to distinguish.
	RunCompleted EventType = "run_completed"

	// RunPaused fires when execution is suspended awaiting external action.
	RunPaused EventType = "run_paused"

	// RunResumed fires when a previously paused run resumes execution.
	RunResumed EventType = "run_resumed"

	// RunPhaseChanged fires when a run transitions between lifecycle phases.
	RunPhaseChanged EventType = "run_phase_changed"

	// ToolCallScheduled fires when the runtime schedules a tool activity for
	// execution.
	ToolCallScheduled EventType = "tool_call_scheduled"

	// ToolResultReceived fires when a tool activity completes and returns a
	// result or error.
	ToolResultReceived EventType = "tool_result_received"

	// ToolCallUpdated fires when a tool call's metadata is updated, typically
	// when a parent tool (agent-as-tool) dynamically discovers additional
	// child tools.
	ToolCallUpdated EventType = "tool_call_updated"

	// ToolCallArgsDelta fires as a planner streams a tool call's argument JSON
	// incrementally, before the call is scheduled.
	ToolCallArgsDelta EventType = "tool_call_args_delta"

	// PlannerNote fires when the planner emits an annotation or intermediate
	// thought.
	PlannerNote EventType = "planner_note"

	// ThinkingBlock fires when the planner emits a structured reasoning block.
	ThinkingBlock EventType = "thinking_block"

	// AssistantMessage fires when a final assistant response is produced.
	AssistantMessage EventType = "assistant_message"

	// RetryHintIssued fires when the planner or runtime suggests a retry
	// policy change.
	RetryHintIssued EventType = "retry_hint"

	// MemoryAppended fires when new memory entries are successfully persisted
	// to the memory store.
	MemoryAppended EventType = "memory_appended"

	// PolicyDecision fires when a policy engine returns a decision for the
	// turn.
	PolicyDecision EventType = "policy_decision"

	// Usage reports token usage for a model invocation within a run.
	Usage EventType = "usage"

	// HardProtectionTriggered signals the runtime applied a hard protection to
	// avoid a pathological loop or expensive no-op behavior.
	HardProtectionTriggered EventType = "hard_protection_triggered"

	// AgentRunStarted fires in the parent run when an agent-as-tool child run
	// is started.
	AgentRunStarted EventType = "agent_run_started"

	// AwaitClarification indicates the planner requested a human-provided
	// clarification before continuing execution.
	AwaitClarification EventType = "await_clarification"

	// AwaitConfirmation indicates the runtime requested an explicit operator
	// confirmation before executing a sensitive tool call.
	AwaitConfirmation EventType = "await_confirmation"

	// ToolAuthorization indicates an operator provided an explicit approval or
	// denial decision for a pending tool call.
	ToolAuthorization EventType = "tool_authorization"

	// AwaitExternalTools indicates the planner requested tool execution
	// delegated to the caller (see runtime/agent/extcall).
	AwaitExternalTools EventType = "await_external_tools"

	// AwaitQuestions indicates the planner requested structured,
	// multiple-choice answers before continuing execution.
	AwaitQuestions EventType = "await_questions"

	// PlanStarted fires when the planner produces an initial multi-step plan.
	PlanStarted EventType = "plan_started"

	// PlanFinished fires when the planner's plan for the turn is finalized.
	PlanFinished EventType = "plan_finished"

	// PlanPruned fires when the planner drops steps from the current plan,
	// typically in response to a policy decision or a tool failure.
	PlanPruned EventType = "plan_pruned"

	// AgentHandover fires when a turn transfers control from one agent to
	// another via the transfer_to_agent tool result.
	AgentHandover EventType = "agent_handover"

	// WorkflowStarted fires when a declarative workflow agent begins
	// executing its node graph.
	WorkflowStarted EventType = "workflow_started"

	// NodeStarted fires when a workflow node (tool or agent step) begins
	// execution.
	NodeStarted EventType = "node_started"

	// NodeCompleted fires when a workflow node finishes, successfully or not.
	NodeCompleted EventType = "node_completed"

	// TodosUpdated fires when the todo-tracking built-in tool changes the
	// run's todo list.
	TodosUpdated EventType = "todos_updated"

	// BrowserSessionStarted fires when a browser-automation tool opens a new
	// session.
	BrowserSessionStarted EventType = "browser_session_started"

	// BrowserScreenshot fires when a browser-automation tool captures a
	// screenshot.
	BrowserScreenshot EventType = "browser_screenshot"

	// InlineHookRequested fires when a hook needs to run inline before the
	// step loop can continue (e.g., a compaction or moderation hook).
	InlineHookRequested EventType = "inline_hook_requested"
)
