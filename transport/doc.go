// Package transport implements the shared request pipeline of the BlackRoad
// client: configuration resolution, URL composition, header and body
// handling, transport-level retry with exponential backoff, and the mapping
// of HTTP status codes onto the typed error taxonomy.
//
// The pipeline retries only transport-level send failures (DNS, connect,
// timeout). A received HTTP response is always classified immediately, even
// a 5xx or 429; retrying those is the caller's decision, not the pipeline's.
package transport
