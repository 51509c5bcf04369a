// Package testutil contains helper fakes used across tests to reduce
// boilerplate when exercising the request pipeline and the typed API
// facades: a scripted http.RoundTripper that replays canned attempt
// outcomes, and caller stubs that record requests and answer with fixed
// payloads. These helpers are intentionally minimal and avoid adding
// third‑party dependencies. They are not intended for production usage.
package testutil
