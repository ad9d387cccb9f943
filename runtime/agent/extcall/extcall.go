// Package extcall implements the external-tool rendezvous: the mechanism by
// which the step loop pauses on a tool call delegated to the caller (rather
// than executed in-process) and resumes once the caller posts a response.
//
// This is the only place in the runtime where a step can block indefinitely
// on a third party. The rendezvous itself enforces a default wait timeout
// (see WithDefaultTimeout) so an abandoned call cannot leak a goroutine
// forever, while still letting callers supply a shorter per-call deadline via
// context.
package extcall

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent/model"
)

// Status is the lifecycle state of a pending external tool call.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// DefaultTimeout is the wait enforced by Rendezvous.Await when the caller's
// context carries no earlier deadline and the rendezvous was not configured
// with a different default (see SPEC_FULL.md §4.F, §9).
const DefaultTimeout = 120 * time.Second

type (
	// Response is what the caller posts back for a pending external tool call.
	Response struct {
		ID    string
		Parts []model.Part
	}

	// Record is the persisted row for a pending or completed external tool
	// call.
	Record struct {
		ID        string
		Status    Status
		Response  *Response
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// Store persists Record rows. Implementations must be safe for concurrent
	// use; the core never retries a failed store operation.
	Store interface {
		Insert(ctx context.Context, id string, at time.Time) error
		Complete(ctx context.Context, id string, resp Response, at time.Time) error
		Remove(ctx context.Context, id string) error
		ListPending(ctx context.Context) ([]Record, error)
	}

	// Rendezvous registers pending external tool calls and delivers responses
	// to the step loop goroutines awaiting them.
	Rendezvous struct {
		store   Store
		timeout time.Duration

		mu      sync.Mutex
		pending map[string]chan Response
	}

	// Option configures a Rendezvous.
	Option func(*Rendezvous)
)

// ErrConflict indicates a call with this id is already pending.
var ErrConflict = errors.New("extcall: a call with this id is already pending")

// ErrUnknown indicates no pending call exists for this id.
var ErrUnknown = errors.New("extcall: no pending call with this id")

// WithDefaultTimeout overrides DefaultTimeout for calls that don't carry an
// earlier context deadline.
func WithDefaultTimeout(d time.Duration) Option {
	return func(r *Rendezvous) { r.timeout = d }
}

// New builds a Rendezvous backed by store.
func New(store Store, opts ...Option) *Rendezvous {
	r := &Rendezvous{
		store:   store,
		timeout: DefaultTimeout,
		pending: make(map[string]chan Response),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts a pending row for id; the step loop then receives the
// response via Await. Returns ErrConflict if id is already pending.
func (r *Rendezvous) Register(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, exists := r.pending[id]; exists {
		r.mu.Unlock()
		return ErrConflict
	}
	ch := make(chan Response, 1)
	r.pending[id] = ch
	r.mu.Unlock()

	if err := r.store.Insert(ctx, id, time.Now()); err != nil {
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
		return err
	}
	return nil
}

// Await blocks until a response for id is delivered, ctx is canceled, or the
// rendezvous's default timeout elapses (whichever comes first). On timeout or
// cancellation, the receiver is dropped; a later Complete call for the same
// id still updates the store but its delivery fails silently.
func (r *Rendezvous) Await(ctx context.Context, id string) (Response, error) {
	r.mu.Lock()
	ch, ok := r.pending[id]
	r.mu.Unlock()
	if !ok {
		return Response{}, ErrUnknown
	}

	waitCtx := ctx
	// context.WithTimeout keeps an earlier deadline already carried by ctx.
	if r.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	select {
	case resp := <-ch:
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
		return resp, nil
	case <-waitCtx.Done():
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
		return Response{}, waitCtx.Err()
	}
}

// Complete delivers resp to whatever goroutine is awaiting id, updates the
// store row to completed, and removes it. If no goroutine is currently
// awaiting id (it already timed out or was never registered in this
// process), the send is skipped silently but the store is still updated.
func (r *Rendezvous) Complete(ctx context.Context, resp Response) error {
	if err := r.store.Complete(ctx, resp.ID, resp, time.Now()); err != nil {
		return err
	}

	r.mu.Lock()
	ch, ok := r.pending[resp.ID]
	r.mu.Unlock()
	if ok {
		select {
		case ch <- resp:
		default:
		}
	}

	return r.store.Remove(ctx, resp.ID)
}

// ListPending returns every call still awaiting a response.
func (r *Rendezvous) ListPending(ctx context.Context) ([]Record, error) {
	return r.store.ListPending(ctx)
}
