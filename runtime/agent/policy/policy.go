// Package policy codifies policy evaluation and enforcement for agent runs.
// Policy engines decide which tools are available to planners on each turn,
// enforce resource caps (max tool calls, time budgets, failure limits), and
// react to planner retry hints. This allows runtime-level control over agent
// behavior without modifying planner logic or tool implementations.
package policy

import (
	"context"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent/run"
)

type (
	// Engine decides which tools remain available to the planner on each turn.
	// The runtime invokes the policy engine before each planner call (start and
	// resume) to compute the allowlist and update caps. The default runtime
	// behavior (if no Engine is provided) allows all tools and enforces basic
	// cap counting.
	Engine interface {
		// Decide evaluates policy constraints and returns the decision for this
		// turn. Implementations should be fast; heavy operations should use
		// caching or background precomputation. An error here terminates the
		// run.
		Decide(ctx context.Context, input Input) (Decision, error)
	}

	// Input groups all the information made available to the policy engine for
	// decision making. The runtime constructs this before each planner invocation.
	Input struct {
		// RunContext carries run-level identifiers, labels, and caps configuration.
		RunContext run.Context

		// Tools lists all candidate tools allowed by the agent design and runtime
		// registration. The policy engine filters this list down to the allowlist
		// for the current turn.
		Tools []ToolMetadata

		// RetryHint carries planner suggestions after tool failures. Nil if no
		// hint was provided.
		RetryHint *RetryHint

		// RemainingCaps reflects the current execution budgets.
		RemainingCaps CapsState

		// Requested enumerates tools explicitly requested by the caller or
		// planner.
		Requested []ToolHandle

		// Labels are arbitrary key/value pairs propagated to policy decisions.
		Labels map[string]string
	}

	// Decision captures the outcome of a policy evaluation for a turn. The
	// runtime applies this decision before invoking the planner.
	Decision struct {
		// AllowedTools is the final allowlist of tools for this turn. Empty
		// means no tools are allowed (planner must produce a final response).
		AllowedTools []ToolHandle

		// Caps carries the updated caps that should be enforced for this turn
		// and subsequent turns.
		Caps CapsState

		// DisableTools signals that no further tool calls should be executed
		// for this run.
		DisableTools bool

		// Labels allows policies to annotate downstream telemetry, memory, or
		// hooks. Merged into the RunContext and propagated to subsequent turns.
		Labels map[string]string

		// Metadata captures policy-specific information (reason codes, approval
		// IDs) persisted for audit trails and surfaced via hooks.
		Metadata map[string]any
	}

	// ToolMetadata describes a candidate tool available to the agent.
	ToolMetadata struct {
		// ID is the fully qualified tool identifier (e.g., "weather.search.forecast").
		ID          string
		Name        string
		Description string
		Tags        []string
	}

	// ToolHandle identifies a tool by its fully qualified ID.
	ToolHandle struct {
		ID string
	}

	// CapsState tracks remaining execution budgets for a run.
	CapsState struct {
		// MaxToolCalls is the total allowed tool invocations for the run. Zero
		// means unlimited.
		MaxToolCalls int

		// RemainingToolCalls tracks how many tool invocations are still
		// allowed.
		RemainingToolCalls int

		// MaxConsecutiveFailedToolCalls caps consecutive failures per run.
		// Zero means unlimited.
		MaxConsecutiveFailedToolCalls int

		// RemainingConsecutiveFailedToolCalls tracks how many consecutive
		// failures are allowed before circuit breaking. Resets to
		// MaxConsecutiveFailedToolCalls on success.
		RemainingConsecutiveFailedToolCalls int

		// ExpiresAt conveys when the run-level budgets expire. Zero means no
		// deadline.
		ExpiresAt time.Time
	}
)

// RetryReason categorizes planner failures communicated via RetryHint.
type RetryReason string

const (
	RetryReasonInvalidArguments  RetryReason = "invalid_arguments"
	RetryReasonMissingFields     RetryReason = "missing_fields"
	RetryReasonMalformedResponse RetryReason = "malformed_response"
	RetryReasonTimeout           RetryReason = "timeout"
	RetryReasonRateLimited       RetryReason = "rate_limited"
	RetryReasonToolUnavailable   RetryReason = "tool_unavailable"
)

// RetryHint communicates planner guidance after tool failures so policy
// engines can adjust allowlists or caps.
type RetryHint struct {
	Reason             RetryReason
	Tool               string
	RestrictToTool     bool
	MissingFields      []string
	ExampleInput       map[string]any
	PriorInput         map[string]any
	ClarifyingQuestion string
	Message            string
}
