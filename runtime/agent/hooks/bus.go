package hooks

import (
	"context"
	"errors"
	"sync"
)

type (
	// Bus publishes runtime events to registered subscribers in a fan-out
	// pattern. The bus is thread-safe and supports concurrent Publish,
	// Register, and Close operations.
	//
	// Delivery is non-blocking best-effort for ordinary subscribers: a slow or
	// failing subscriber never stops delivery to the rest, and Publish does
	// not return its error. Subscribers registered with RegisterCritical are
	// different — their errors are collected and returned from Publish, since
	// a critical sink (the task store) losing a terminal event is not
	// tolerable. Event delivery itself is always synchronous in the
	// publisher's goroutine; the order in which subscribers receive an event
	// is not defined, because registrations are kept in a map. "Non-blocking"
	// here describes failure handling, not threading.
	Bus interface {
		// Publish delivers the event to every currently registered
		// subscriber. Ordinary subscriber errors are swallowed (the event
		// still reaches every other subscriber); critical subscriber errors
		// are joined and returned.
		Publish(ctx context.Context, event Event) error

		// Register adds a best-effort subscriber to the bus and returns a
		// Subscription that can be closed to unregister. Register returns an
		// error if sub is nil.
		Register(sub Subscriber) (Subscription, error)

		// RegisterCritical adds a subscriber whose HandleEvent errors are
		// returned from Publish instead of swallowed. Intended for sinks that
		// must not silently lose events, such as the task-store sink.
		RegisterCritical(sub Subscriber) (Subscription, error)
	}

	// Subscriber reacts to published runtime events by implementing
	// HandleEvent. Subscribers are registered with a Bus and receive all
	// events until their subscription is closed; the order among subscribers
	// is not defined.
	//
	// Implementations must be thread-safe if the same subscriber instance is
	// registered with multiple buses or if HandleEvent performs concurrent
	// work.
	Subscriber interface {
		// HandleEvent processes a single event. The context passed to this
		// method originates from the Bus.Publish call and may carry
		// deadlines or cancellation signals that implementations should
		// respect.
		HandleEvent(ctx context.Context, event Event) error
	}

	// Subscription represents an active registration on a Bus. Calling Close
	// removes the subscriber from the bus, ensuring it receives no further
	// events. Subscriptions are safe to close multiple times; subsequent
	// Close calls are no-ops.
	Subscription interface {
		// Close removes the subscriber from the bus. Always returns nil.
		Close() error
	}

	// bus is the concrete implementation of the Bus interface.
	bus struct {
		mu          sync.RWMutex
		subscribers map[*subscription]registration
	}

	registration struct {
		sub      Subscriber
		critical bool
	}

	subscription struct {
		bus  *bus
		once sync.Once
	}
)

// NewBus constructs a new in-memory event bus for publishing runtime events
// to subscribers. The returned bus is thread-safe and ready for immediate
// use.
//
// Typical usage:
//
//	bus := hooks.NewBus()
//	sub := hooks.SubscriberFunc(func(ctx context.Context, evt hooks.Event) error {
//	    log.Printf("received: %s", evt.Type())
//	    return nil
//	})
//	subscription, _ := bus.Register(sub)
//	defer subscription.Close()
//
//	bus.Publish(ctx, hooks.NewRunStartedEvent(...))
func NewBus() Bus {
	return &bus{subscribers: make(map[*subscription]registration)}
}

// Publish delivers event to every currently registered subscriber, in no
// defined order, continuing past ordinary subscriber errors so a single
// misbehaving sink (for example, a disconnected streaming client) cannot
// block delivery to the rest. Errors from subscribers registered via
// RegisterCritical are joined together and returned; if none occur, Publish
// returns nil regardless of ordinary subscriber failures.
func (b *bus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	regs := make([]registration, 0, len(b.subscribers))
	for _, r := range b.subscribers {
		regs = append(regs, r)
	}
	b.mu.RUnlock()

	var errs []error
	for _, r := range regs {
		if err := r.sub.HandleEvent(ctx, event); err != nil && r.critical {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Register adds a best-effort subscriber to the bus. Register returns an
// error if sub is nil.
func (b *bus) Register(sub Subscriber) (Subscription, error) {
	return b.register(sub, false)
}

// RegisterCritical adds a subscriber whose errors propagate from Publish.
func (b *bus) RegisterCritical(sub Subscriber) (Subscription, error) {
	return b.register(sub, true)
}

func (b *bus) register(sub Subscriber, critical bool) (Subscription, error) {
	if sub == nil {
		return nil, errors.New("subscriber is required")
	}
	s := &subscription{bus: b}
	b.mu.Lock()
	b.subscribers[s] = registration{sub: sub, critical: critical}
	b.mu.Unlock()
	return s, nil
}

// Close removes the subscriber from the bus. Idempotent and thread-safe.
func (s *subscription) Close() error {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subscribers, s)
		s.bus.mu.Unlock()
	})
	return nil
}
