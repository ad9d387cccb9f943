// Package inmem provides an in-memory implementation of extcall.Store.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent/extcall"
)

// Store is an in-memory extcall.Store. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	rows map[string]extcall.Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{rows: make(map[string]extcall.Record)}
}

// Insert implements extcall.Store.
func (s *Store) Insert(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[id] = extcall.Record{ID: id, Status: extcall.StatusPending, CreatedAt: at, UpdatedAt: at}
	return nil
}

// Complete implements extcall.Store.
func (s *Store) Complete(_ context.Context, id string, resp extcall.Response, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.rows[id]
	row.ID = id
	row.Status = extcall.StatusCompleted
	row.Response = &resp
	row.UpdatedAt = at
	s.rows[id] = row
	return nil
}

// Remove implements extcall.Store.
func (s *Store) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

// ListPending implements extcall.Store.
func (s *Store) ListPending(_ context.Context) ([]extcall.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []extcall.Record
	for _, r := range s.rows {
		if r.Status == extcall.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}
