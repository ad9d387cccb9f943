// Package inmem provides an in-memory implementation of memory.Store.
//
// It is intended for tests and local development. Production deployments should
// use a durable implementation (for example features/memory/mongo).
package inmem

import (
	"context"
	"sync"

	"github.com/nexusflow/agentrt/runtime/agent/memory"
)

type (
	// Store is an in-memory implementation of memory.Store. It is safe for
	// concurrent use.
	Store struct {
		mu   sync.RWMutex
		runs map[string][]memory.Event
	}
)

// New returns an empty Store.
func New() *Store {
	return &Store{runs: make(map[string][]memory.Event)}
}

// LoadRun implements memory.Store.
func (s *Store) LoadRun(_ context.Context, agentID, runID string) (memory.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.runs[key(agentID, runID)]
	cp := make([]memory.Event, len(events))
	copy(cp, events)
	return memory.Snapshot{AgentID: agentID, RunID: runID, Events: cp}, nil
}

// AppendEvents implements memory.Store.
func (s *Store) AppendEvents(_ context.Context, agentID, runID string, events ...memory.Event) error {
	if len(events) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(agentID, runID)
	s.runs[k] = append(s.runs[k], events...)
	return nil
}

func key(agentID, runID string) string { return agentID + "\x00" + runID }
