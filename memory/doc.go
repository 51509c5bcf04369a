// Package memory provides typed access to the hash-chained memory
// ledger: logging entries, querying and fetching them, per-agent state
// sync, broadcasts, and chain verification.
//
// Entries form an append-only chain in which each entry records the
// hash of its predecessor; VerifyChain walks that linkage server-side.
package memory
