// Package core provides the foundational domain types and contracts shared by
// the BlackRoad client. It defines:
//
//   - Domain entities (Agent, Task, MemoryEntry, Stats, HealthStatus)
//   - Option structs for create/list/query operations
//   - The Request descriptor and Caller contract consumed by the transport
//
// The package intentionally keeps implementation concerns (HTTP execution,
// retry policy, resource façades) out of scope, exposing small types so the
// transport and the façade packages can depend on it without depending on each
// other. All exported identifiers include concise documentation to aid
// discoverability and external consumption.
package core
