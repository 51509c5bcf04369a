package testutil

import (
	"context"
	"sync"

	"github.com/blackroad/blackroad-go/core"
	"github.com/blackroad/blackroad-go/internal/json"
)

// CallerFunc adapts a plain function to the core.Caller interface, for
// tests that want ad hoc behavior without declaring a type.
type CallerFunc func(ctx context.Context, req core.Request, out any) error

// Call implements core.Caller.
func (f CallerFunc) Call(ctx context.Context, req core.Request, out any) error {
	return f(ctx, req, out)
}

// RecordingCaller is a core.Caller stub that captures every request and
// answers each call by decoding Payload into the output value, or by
// returning Err when set. Example:
//
//	rec := &RecordingCaller{Payload: `{"agents":[]}`}
//	api := agents.New(rec)
type RecordingCaller struct {
	Payload string
	Err     error

	mu       sync.Mutex
	requests []core.Request
}

// Call implements core.Caller.
func (c *RecordingCaller) Call(_ context.Context, req core.Request, out any) error {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	if out == nil || c.Payload == "" {
		return nil
	}
	return json.Unmarshal([]byte(c.Payload), out)
}

// Calls reports how many requests were made.
func (c *RecordingCaller) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// Last returns the most recent request. It panics when no call was made,
// which in a test is the failure you want to see.
func (c *RecordingCaller) Last() core.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests[len(c.requests)-1]
}
