package testutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// ScriptStep describes the outcome of a single HTTP attempt: either a
// transport-level failure (Err set) or a served response.
type ScriptStep struct {
	Err    error
	Status int
	Body   string
	Header http.Header
}

// Fail builds a step that fails at the transport level, before any
// response is received.
func Fail(err error) ScriptStep { return ScriptStep{Err: err} }

// Respond builds a step that serves the given status and body.
func Respond(status int, body string) ScriptStep {
	return ScriptStep{Status: status, Body: body}
}

// ScriptedTransport is an http.RoundTripper that replays a fixed
// sequence of attempt outcomes and records every request it sees,
// including the request body. Attempts beyond the script fail.
// Example:
//
//	tr := NewScriptedTransport(
//		Fail(errors.New("connection refused")),
//		Respond(200, `{"status":"ok"}`),
//	)
//
// Safe for concurrent use, though scripted sequences are inherently
// order dependent.
type ScriptedTransport struct {
	mu       sync.Mutex
	steps    []ScriptStep
	requests []*http.Request
	bodies   [][]byte
}

// NewScriptedTransport creates a transport that plays back the given
// steps in order.
func NewScriptedTransport(steps ...ScriptStep) *ScriptedTransport {
	return &ScriptedTransport{steps: steps}
}

// RoundTrip implements http.RoundTripper.
func (t *ScriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	t.requests = append(t.requests, req.Clone(req.Context()))
	t.bodies = append(t.bodies, body)

	idx := len(t.requests) - 1
	if idx >= len(t.steps) {
		return nil, fmt.Errorf("testutil: unscripted attempt %d", idx+1)
	}

	step := t.steps[idx]
	if step.Err != nil {
		return nil, step.Err
	}

	header := step.Header
	if header == nil {
		header = http.Header{}
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	return &http.Response{
		StatusCode:    step.Status,
		Status:        fmt.Sprintf("%d %s", step.Status, http.StatusText(step.Status)),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(step.Body)),
		ContentLength: int64(len(step.Body)),
		Request:       req,
	}, nil
}

// Attempts reports how many requests reached the transport.
func (t *ScriptedTransport) Attempts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// Request returns the i-th recorded request.
func (t *ScriptedTransport) Request(i int) *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests[i]
}

// RequestBody returns the body bytes sent on the i-th attempt.
func (t *ScriptedTransport) RequestBody(i int) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bodies[i]
}
