// Package blackroad provides the official Go client for the BlackRoad
// API: a typed surface over the agent registry, task queue, and
// hash-chained memory ledger. Most applications interact with this
// package by:
//  1. Creating a Client via New() (API key from Options or the environment)
//  2. Reaching a resource group through Agents(), Tasks(), or Memory()
//  3. Calling typed operations that return domain structs or typed errors
//
// The façade delegates all wire concerns (auth headers, retry with
// backoff, error classification) to the transport pipeline while keeping
// setup and usage ergonomics concise. Defaults are production-ready;
// tests typically supply a custom *http.Client and logger.
package blackroad

import (
	"context"
	"net/http"
	"time"

	"github.com/blackroad/blackroad-go/agents"
	"github.com/blackroad/blackroad-go/core"
	"github.com/blackroad/blackroad-go/logging"
	"github.com/blackroad/blackroad-go/memory"
	"github.com/blackroad/blackroad-go/tasks"
	"github.com/blackroad/blackroad-go/transport"
)

// Options configures the Client instance.
type Options struct {
	// APIKey authenticates every request. Falls back to the
	// BLACKROAD_API_KEY environment variable when empty; resolution
	// fails if neither is set.
	APIKey string

	// BaseURL overrides the API root. Falls back to BLACKROAD_API_URL,
	// then to the production endpoint. Trailing slashes are stripped.
	BaseURL string

	// Timeout bounds each HTTP attempt. Defaults to 30 seconds.
	Timeout time.Duration

	// MaxRetries is the total number of send attempts per call.
	// Defaults to 3. Only transport-level failures are retried.
	MaxRetries int

	// HTTPClient replaces the default underlying client, e.g. for
	// custom proxies or test transports. Its own timeout then applies.
	HTTPClient *http.Client

	// Logger receives request and retry events. Defaults to a no-op
	// logger.
	Logger logging.Logger
}

// Client is the high-level façade aggregating the resource groups over
// one shared pipeline. A single Client is safe for concurrent use.
type Client struct {
	pipeline *transport.Pipeline

	agents *agents.API
	tasks  *tasks.API
	memory *memory.API
}

// New creates a Client with optional overrides. Configuration is
// resolved once: explicit options win over the environment, which wins
// over the defaults. A missing API key fails here, before any request
// is made.
func New(optFns ...func(o *Options)) (*Client, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cfg, err := transport.ResolveConfig(transport.Config{
		APIKey:     opts.APIKey,
		BaseURL:    opts.BaseURL,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
	})
	if err != nil {
		return nil, err
	}

	pipeline := transport.New(cfg, func(o *transport.Options) {
		o.HTTPClient = opts.HTTPClient
		o.Logger = opts.Logger
	})

	return &Client{
		pipeline: pipeline,
		agents: agents.New(pipeline, func(o *agents.Options) {
			o.Logger = opts.Logger
		}),
		tasks: tasks.New(pipeline, func(o *tasks.Options) {
			o.Logger = opts.Logger
		}),
		memory: memory.New(pipeline, func(o *memory.Options) {
			o.Logger = opts.Logger
		}),
	}, nil
}

// Agents returns the agent registry API.
func (c *Client) Agents() *agents.API { return c.agents }

// Tasks returns the task queue API.
func (c *Client) Tasks() *tasks.API { return c.tasks }

// Memory returns the memory ledger API.
func (c *Client) Memory() *memory.API { return c.memory }

// Health reports service liveness and per-service detail.
func (c *Client) Health(ctx context.Context) (*core.HealthStatus, error) {
	var status core.HealthStatus
	err := c.pipeline.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/health",
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Version returns the service version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var envelope struct {
		Version string `json:"version"`
	}
	err := c.pipeline.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   "/version",
	}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.Version, nil
}

// Get issues a raw GET for endpoints the typed surface does not cover
// yet, decoding the response into out. A nil out discards the body.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.pipeline.Call(ctx, core.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	}, out)
}

// Post issues a raw POST with a JSON body, decoding the response into
// out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.pipeline.Call(ctx, core.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	}, out)
}

// Put issues a raw PUT with a JSON body, decoding the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.pipeline.Call(ctx, core.Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	}, out)
}

// Delete issues a raw DELETE, decoding the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.pipeline.Call(ctx, core.Request{
		Method: http.MethodDelete,
		Path:   path,
	}, out)
}
