// Package agents provides typed access to the agent registry endpoints:
// registration, discovery with filters, liveness heartbeats, status
// transitions, and the level-based hierarchy shortcuts (commanders,
// managers, workers).
package agents
