package thread

import (
	"context"
	"time"

	"github.com/nexusflow/agentrt/runtime/agent"
	"github.com/nexusflow/agentrt/runtime/agent/extcall"
	"github.com/nexusflow/agentrt/runtime/agent/memory"
	"github.com/nexusflow/agentrt/runtime/agent/session"
)

type (
	// AuthSession is a delegated-credential session for a (provider, user)
	// pair, used by MCP/plugin tool dispatch that needs to act on the user's
	// behalf.
	AuthSession struct {
		Provider  string
		UserID    string
		Token     string
		ExpiresAt time.Time
		Metadata  map[string]string
	}

	// Secret is an opaque credential scoped to a user and optionally a
	// provider.
	Secret struct {
		UserID   string
		Provider string
		Name     string
		Value    string
	}

	// OAuthState is a pending OAuth2 authorization-code exchange.
	OAuthState struct {
		State       string
		Provider    string
		UserID      string
		RedirectURI string
		CreatedAt   time.Time
	}

	// ToolAuthStore persists delegated-credential sessions, secrets, and
	// in-flight OAuth2 state used by tool dispatch preflight checks.
	ToolAuthStore interface {
		GetSession(ctx context.Context, provider, userID string) (AuthSession, error)
		StoreSession(ctx context.Context, s AuthSession) error
		RemoveSession(ctx context.Context, provider, userID string) error

		GetSecret(ctx context.Context, userID, provider, name string) (Secret, error)
		StoreSecret(ctx context.Context, s Secret) error
		RemoveSecret(ctx context.Context, userID, provider, name string) error

		StoreOAuthState(ctx context.Context, s OAuthState) error
		GetOAuthState(ctx context.Context, state string) (OAuthState, error)
		RemoveOAuthState(ctx context.Context, state string) error
	}

	// PluginMetadata describes a loaded plugin package.
	PluginMetadata struct {
		Package     string
		Version     string
		Description string
		Tools       []string
		Workflows   []string
	}

	// PluginCatalogStore persists PluginMetadata records.
	PluginCatalogStore interface {
		ListPlugins(ctx context.Context) ([]PluginMetadata, error)
		GetPlugin(ctx context.Context, pkg string) (PluginMetadata, error)
		UpsertPlugin(ctx context.Context, m PluginMetadata) error
		RemovePlugin(ctx context.Context, pkg string) error
	}

	// AgentRecord is the persisted form of a declarative agent definition
	// (see SPEC_FULL.md §6 for the full shape; the orchestrator owns the
	// richer in-memory AgentRegistration built from this record).
	AgentRecord struct {
		Name        string
		Package     string
		Description string
		Definition  []byte // YAML-encoded agent definition
		UpdatedAt   time.Time
	}

	// AgentStore persists AgentRecord definitions by name.
	AgentStore interface {
		GetAgent(ctx context.Context, name string) (AgentRecord, error)
		ListAgents(ctx context.Context) ([]AgentRecord, error)
		UpsertAgent(ctx context.Context, a AgentRecord) error
		RemoveAgent(ctx context.Context, name string) error
	}

	// BrowserSession is a running or completed browser-automation session
	// associated with a run, used by tools that emit BrowserScreenshot and
	// BrowserSessionStarted events.
	BrowserSession struct {
		ID        string
		RunID     string
		AgentID   agent.Ident
		StartedAt time.Time
		EndedAt   *time.Time
		Metadata  map[string]string
	}

	// BrowserSessionStore persists BrowserSession records.
	BrowserSessionStore interface {
		CreateSession(ctx context.Context, s BrowserSession) (BrowserSession, error)
		GetSession(ctx context.Context, id string) (BrowserSession, error)
		EndSession(ctx context.Context, id string, at time.Time) (BrowserSession, error)
		ListSessionsByRun(ctx context.Context, runID string) ([]BrowserSession, error)
	}

	// Stores bundles every store the core depends on. An "ephemeral" bundle
	// (see runtime/agent/thread/inmem) is created fresh per execution for
	// stateless API mode and dropped at context teardown; implementations
	// are otherwise interchangeable.
	Stores struct {
		Thread            ThreadStore
		Task              TaskStore
		Session           session.Store
		Scratchpad        ScratchpadStore
		Memory            memory.Store
		ToolAuth          ToolAuthStore
		ExternalToolCalls *extcall.Rendezvous
		PluginCatalog     PluginCatalogStore
		Agent             AgentStore
		BrowserSession    BrowserSessionStore
	}
)
