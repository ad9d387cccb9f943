package inmem

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent/thread"
)

var (
	ErrSessionNotFound        = errors.New("auth session not found")
	ErrSecretNotFound         = errors.New("secret not found")
	ErrOAuthStateNotFound     = errors.New("oauth state not found")
	ErrPluginNotFound         = errors.New("plugin not found")
	ErrAgentNotFound          = errors.New("agent not found")
	ErrBrowserSessionNotFound = errors.New("browser session not found")
)

// ToolAuthStore is an in-memory thread.ToolAuthStore. Safe for concurrent use.
type ToolAuthStore struct {
	mu       sync.RWMutex
	sessions map[string]thread.AuthSession
	secrets  map[string]thread.Secret
	oauth    map[string]thread.OAuthState
}

// NewToolAuthStore returns an empty ToolAuthStore.
func NewToolAuthStore() *ToolAuthStore {
	return &ToolAuthStore{
		sessions: make(map[string]thread.AuthSession),
		secrets:  make(map[string]thread.Secret),
		oauth:    make(map[string]thread.OAuthState),
	}
}

func authKey(provider, userID string) string { return provider + "\x00" + userID }

func (s *ToolAuthStore) GetSession(_ context.Context, provider, userID string) (thread.AuthSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[authKey(provider, userID)]
	if !ok {
		return thread.AuthSession{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *ToolAuthStore) StoreSession(_ context.Context, sess thread.AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[authKey(sess.Provider, sess.UserID)] = sess
	return nil
}

func (s *ToolAuthStore) RemoveSession(_ context.Context, provider, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, authKey(provider, userID))
	return nil
}

func secretKey(userID, provider, name string) string { return userID + "\x00" + provider + "\x00" + name }

func (s *ToolAuthStore) GetSecret(_ context.Context, userID, provider, name string) (thread.Secret, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.secrets[secretKey(userID, provider, name)]
	if !ok {
		return thread.Secret{}, ErrSecretNotFound
	}
	return v, nil
}

func (s *ToolAuthStore) StoreSecret(_ context.Context, sec thread.Secret) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[secretKey(sec.UserID, sec.Provider, sec.Name)] = sec
	return nil
}

func (s *ToolAuthStore) RemoveSecret(_ context.Context, userID, provider, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, secretKey(userID, provider, name))
	return nil
}

func (s *ToolAuthStore) StoreOAuthState(_ context.Context, st thread.OAuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oauth[st.State] = st
	return nil
}

func (s *ToolAuthStore) GetOAuthState(_ context.Context, state string) (thread.OAuthState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.oauth[state]
	if !ok {
		return thread.OAuthState{}, ErrOAuthStateNotFound
	}
	return st, nil
}

func (s *ToolAuthStore) RemoveOAuthState(_ context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.oauth, state)
	return nil
}

// PluginCatalogStore is an in-memory thread.PluginCatalogStore.
type PluginCatalogStore struct {
	mu      sync.RWMutex
	plugins map[string]thread.PluginMetadata
}

// NewPluginCatalogStore returns an empty PluginCatalogStore.
func NewPluginCatalogStore() *PluginCatalogStore {
	return &PluginCatalogStore{plugins: make(map[string]thread.PluginMetadata)}
}

func (s *PluginCatalogStore) ListPlugins(_ context.Context) ([]thread.PluginMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]thread.PluginMetadata, 0, len(s.plugins))
	for _, p := range s.plugins {
		out = append(out, p)
	}
	return out, nil
}

func (s *PluginCatalogStore) GetPlugin(_ context.Context, pkg string) (thread.PluginMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plugins[pkg]
	if !ok {
		return thread.PluginMetadata{}, ErrPluginNotFound
	}
	return p, nil
}

func (s *PluginCatalogStore) UpsertPlugin(_ context.Context, m thread.PluginMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins[m.Package] = m
	return nil
}

func (s *PluginCatalogStore) RemovePlugin(_ context.Context, pkg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plugins, pkg)
	return nil
}

// AgentStore is an in-memory thread.AgentStore.
type AgentStore struct {
	mu     sync.RWMutex
	agents map[string]thread.AgentRecord
}

// NewAgentStore returns an empty AgentStore.
func NewAgentStore() *AgentStore {
	return &AgentStore{agents: make(map[string]thread.AgentRecord)}
}

func (s *AgentStore) GetAgent(_ context.Context, name string) (thread.AgentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.agents[name]
	if !ok {
		return thread.AgentRecord{}, ErrAgentNotFound
	}
	return a, nil
}

func (s *AgentStore) ListAgents(_ context.Context) ([]thread.AgentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]thread.AgentRecord, 0, len(s.agents))
	for _, a := range s.agents {
		out = append(out, a)
	}
	return out, nil
}

func (s *AgentStore) UpsertAgent(_ context.Context, a thread.AgentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[a.Name] = a
	return nil
}

func (s *AgentStore) RemoveAgent(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, name)
	return nil
}

// BrowserSessionStore is an in-memory thread.BrowserSessionStore.
type BrowserSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]thread.BrowserSession
}

// NewBrowserSessionStore returns an empty BrowserSessionStore.
func NewBrowserSessionStore() *BrowserSessionStore {
	return &BrowserSessionStore{sessions: make(map[string]thread.BrowserSession)}
}

func (s *BrowserSessionStore) CreateSession(_ context.Context, sess thread.BrowserSession) (thread.BrowserSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *BrowserSessionStore) GetSession(_ context.Context, id string) (thread.BrowserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return thread.BrowserSession{}, ErrBrowserSessionNotFound
	}
	return sess, nil
}

func (s *BrowserSessionStore) EndSession(_ context.Context, id string, at time.Time) (thread.BrowserSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return thread.BrowserSession{}, ErrBrowserSessionNotFound
	}
	sess.EndedAt = &at
	s.sessions[id] = sess
	return sess, nil
}

func (s *BrowserSessionStore) ListSessionsByRun(_ context.Context, runID string) ([]thread.BrowserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []thread.BrowserSession
	for _, sess := range s.sessions {
		if sess.RunID == runID {
			out = append(out, sess)
		}
	}
	return out, nil
}
