// Package logging provides a minimal logging interface and adapters for the
// BlackRoad client.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the transport pipeline uses for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	client, err := blackroad.New(func(o *blackroad.Options) {
//	    o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
