package memory

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blackroad/blackroad-go/core"
	"github.com/blackroad/blackroad-go/logging"
)

// defaultQueryLimit is sent whenever the caller does not override it.
// The server would otherwise page with its own default; pinning the
// value here keeps query results stable across server versions.
const defaultQueryLimit = "100"

// defaultRecentLimit bounds Recent when the caller passes zero.
const defaultRecentLimit = 50

// Options configures the memory facade.
type Options struct {
	// Logger receives domain events for mutating operations. Defaults
	// to a no-op logger.
	Logger logging.Logger
}

// API exposes the memory ledger over the shared request pipeline.
type API struct {
	caller core.Caller
	logger logging.Logger
}

// New creates a memory API. The caller is typically the client's
// transport pipeline; tests substitute a stub.
func New(caller core.Caller, optFns ...func(o *Options)) *API {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &API{caller: caller, logger: opts.Logger}
}

// Log appends an entry to the ledger and returns it with its chain
// position (hash, prev_hash) filled in by the server.
func (m *API) Log(ctx context.Context, opts *core.LogMemoryOptions) (*core.MemoryEntry, error) {
	var o core.LogMemoryOptions
	if opts != nil {
		o = *opts
	}

	m.logger.Debug("Logging memory entry", "action", o.Action, "entity", o.Entity)

	var entry core.MemoryEntry
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/memory",
		Body:   o,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Query searches the ledger. The limit parameter is always sent,
// defaulting to 100 unless opts overrides it; all other parameters are
// included only when set. A nil opts returns the most recent hundred
// entries.
func (m *API) Query(ctx context.Context, opts *core.MemoryQueryOptions) ([]core.MemoryEntry, error) {
	query := map[string]string{"limit": defaultQueryLimit}
	if opts != nil {
		if opts.Search != "" {
			query["q"] = opts.Search
		}
		if opts.Action != "" {
			query["action"] = opts.Action
		}
		if opts.Entity != "" {
			query["entity"] = opts.Entity
		}
		if len(opts.Tags) > 0 {
			query["tags"] = strings.Join(opts.Tags, ",")
		}
		if opts.Since != nil {
			query["since"] = opts.Since.Format(time.RFC3339)
		}
		if opts.Until != nil {
			query["until"] = opts.Until.Format(time.RFC3339)
		}
		if opts.Limit > 0 {
			query["limit"] = strconv.Itoa(opts.Limit)
		}
		if opts.Offset > 0 {
			query["offset"] = strconv.Itoa(opts.Offset)
		}
	}

	var envelope struct {
		Entries []core.MemoryEntry `json:"entries"`
	}
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/memory",
		Query:  query,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Entries, nil
}

// Get fetches a single entry by its chain hash.
func (m *API) Get(ctx context.Context, entryHash string) (*core.MemoryEntry, error) {
	var entry core.MemoryEntry
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/memory/" + entryHash,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Recent returns the latest entries, newest first. A limit of zero or
// below falls back to 50.
func (m *API) Recent(ctx context.Context, limit int) ([]core.MemoryEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return m.Query(ctx, &core.MemoryQueryOptions{Limit: limit})
}

// AgentState fetches the synced state mapping of one agent.
func (m *API) AgentState(ctx context.Context, agentID string) (map[string]any, error) {
	var state map[string]any
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/memory/agents/" + agentID + "/state",
	}, &state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SyncState replaces the synced state mapping of one agent.
func (m *API) SyncState(ctx context.Context, agentID string, state map[string]any) error {
	m.logger.Debug("Syncing agent state", "agent_id", agentID)

	return m.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/memory/agents/" + agentID + "/state",
		Body:   state,
	}, nil)
}

// Broadcast publishes a message to all listening agents and returns
// the broadcast id.
func (m *API) Broadcast(ctx context.Context, msgType, payload string) (string, error) {
	m.logger.Debug("Broadcasting message", "type", msgType)

	var envelope struct {
		BroadcastID string `json:"broadcast_id"`
	}
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/memory/broadcast",
		Body:   map[string]string{"type": msgType, "payload": payload},
	}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.BroadcastID, nil
}

// TIL records a "today I learned" entry: a Log call with the action
// "til", the category as entity, and tags ["til", category].
func (m *API) TIL(ctx context.Context, category, learning string) (*core.MemoryEntry, error) {
	return m.Log(ctx, &core.LogMemoryOptions{
		Action:  "til",
		Entity:  category,
		Details: learning,
		Tags:    []string{"til", category},
	})
}

// Stats returns aggregate counts over the ledger.
func (m *API) Stats(ctx context.Context) (*core.Stats, error) {
	var stats core.Stats
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/memory/stats",
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// VerifyChain asks the server to validate hash linkage, optionally
// starting from a specific entry. It reports whether the chain is
// intact and how many entries were checked.
func (m *API) VerifyChain(ctx context.Context, startHash string) (*core.VerifyChainResult, error) {
	query := map[string]string{}
	if startHash != "" {
		query["start"] = startHash
	}

	var result core.VerifyChainResult
	err := m.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/memory/verify",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
