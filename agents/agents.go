package agents

import (
	"context"
	"net/http"
	"strconv"

	"github.com/blackroad/blackroad-go/core"
	"github.com/blackroad/blackroad-go/logging"
)

// Options configures the agents facade.
type Options struct {
	// Logger receives domain events for mutating operations. Defaults
	// to a no-op logger.
	Logger logging.Logger
}

// API exposes the agent registry over the shared request pipeline.
type API struct {
	caller core.Caller
	logger logging.Logger
}

// New creates an agents API. The caller is typically the client's
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

// Register creates a new agent. Type defaults to "ai" and Level to 4,
// the worker tier; the caller's options struct is never modified.
func (a *API) Register(ctx context.Context, opts *core.RegisterAgentOptions) (*core.Agent, error) {
	var o core.RegisterAgentOptions
	if opts != nil {
		o = *opts
	}
	if o.Type == "" {
		o.Type = "ai"
	}
	if o.Level == 0 {
		o.Level = 4
	}

	a.logger.Debug("Registering agent", "name", o.Name, "type", o.Type, "level", o.Level)

	var agent core.Agent
	err := a.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/agents",
		Body:   o,
	}, &agent)
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// List returns agents matching the given filters. A nil opts lists
// everything.
func (a *API) List(ctx context.Context, opts *core.AgentListOptions) ([]core.Agent, error) {
	query := map[string]string{}
	if opts != nil {
		if opts.Type != "" {
			query["type"] = opts.Type
		}
		if opts.Division != "" {
			query["division"] = opts.Division
		}
		if opts.Level > 0 {
			query["level"] = strconv.Itoa(opts.Level)
		}
		if opts.Status != "" {
			query["status"] = opts.Status
		}
		if opts.Limit > 0 {
			query["limit"] = strconv.Itoa(opts.Limit)
		}
		if opts.Offset > 0 {
			query["offset"] = strconv.Itoa(opts.Offset)
		}
	}

	var envelope struct {
		Agents []core.Agent `json:"agents"`
	}
	err := a.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/agents",
		Query:  query,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Agents, nil
}

// Get fetches a single agent by id.
func (a *API) Get(ctx context.Context, agentID string) (*core.Agent, error) {
	var agent core.Agent
	err := a.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/agents/" + agentID,
	}, &agent)
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// Heartbeat reports the agent as alive. A load above zero is included
// so the scheduler can weigh assignments.
func (a *API) Heartbeat(ctx context.Context, agentID string, load float64) error {
	body := map[string]any{}
	if load > 0 {
		body["load"] = load
	}
	return a.caller.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   "/agents/" + agentID + "/heartbeat",
		Body:   body,
	}, nil)
}

// UpdateStatus transitions an agent to the given status and returns the
// updated record.
func (a *API) UpdateStatus(ctx context.Context, agentID, status string) (*core.Agent, error) {
	a.logger.Debug("Updating agent status", "agent_id", agentID, "status", status)

	var agent core.Agent
	err := a.caller.Call(ctx, core.Request{
		Method: http.MethodPut,
		Path:   "/agents/" + agentID,
		Body:   map[string]string{"status": status},
	}, &agent)
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// Delete removes an agent from the registry.
func (a *API) Delete(ctx context.Context, agentID string) error {
	a.logger.Debug("Deleting agent", "agent_id", agentID)

	var envelope struct {
		Deleted bool `json:"deleted"`
	}
	return a.caller.Call(ctx, core.Request{
		Method: http.MethodDelete,
		Path:   "/agents/" + agentID,
	}, &envelope)
}

// Stats returns aggregate counts over the registry.
func (a *API) Stats(ctx context.Context) (*core.Stats, error) {
	var stats core.Stats
	err := a.caller.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/agents/stats",
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ByDivision lists the agents of one division.
func (a *API) ByDivision(ctx context.Context, division string) ([]core.Agent, error) {
	return a.List(ctx, &core.AgentListOptions{Division: division})
}

// Commanders lists level 2 agents.
func (a *API) Commanders(ctx context.Context) ([]core.Agent, error) {
	return a.List(ctx, &core.AgentListOptions{Level: 2})
}

// Managers lists level 3 agents.
func (a *API) Managers(ctx context.Context) ([]core.Agent, error) {
	return a.List(ctx, &core.AgentListOptions{Level: 3})
}

// Workers lists level 4 agents.
func (a *API) Workers(ctx context.Context) ([]core.Agent, error) {
	return a.List(ctx, &core.AgentListOptions{Level: 4})
}
