package core

import "context"

// Request describes one API call: method, endpoint path, optional structured
// body and optional query parameters. Requests are ephemeral, built per call
// by a façade and consumed by the transport pipeline.
//
// Body, when non-nil, is serialized to JSON exactly once per call; absent
// optional fields of the value must not appear in the serialized form. Query
// values are attached percent-encoded; iteration order is unspecified.
type Request struct {
	// Method is the HTTP method (http.MethodGet and friends).
	Method string

	// Path is the endpoint path relative to the configured base URL, with or
	// without a leading slash.
	Path string

	// Body is the structured request payload, or nil for bodyless calls.
	Body any

	// Query holds query parameters; nil or empty means none.
	Query map[string]string
}

// Caller executes API requests against the BlackRoad service.
//
// Call sends the described request and decodes a successful response body
// into out; passing a nil out discards the body. Every failure surfaces as a
// typed error from the client's closed taxonomy. Implementations must be safe
// for concurrent use: façades share one Caller across arbitrarily many
// goroutines.
type Caller interface {
	Call(ctx context.Context, req Request, out any) error
}
