package core

import "time"

// RegisterAgentOptions describes a new agent. Name is required; Type defaults
// to "ai" and Level to 4 (worker) when left zero. Optional fields absent from
// the struct stay absent from the serialized body.
type RegisterAgentOptions struct {
	Name     string                 `json:"name"`
	Type     string                 `json:"type,omitempty"`
	Division string                 `json:"division,omitempty"`
	Level    int                    `json:"level,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AgentListOptions filters an agent listing. Zero values mean "no filter" and
// produce no query parameter.
type AgentListOptions struct {
	Type     string
	Division string
	Level    int
	Status   string
	Limit    int
	Offset   int
}

// DispatchTaskOptions describes a new task. Title is required; Priority
// defaults to "medium" when left empty.
type DispatchTaskOptions struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Priority    string                 `json:"priority,omitempty"`
	Division    string                 `json:"division,omitempty"`
	TargetLevel int                    `json:"target_level,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// TaskListOptions filters a task listing. Zero values mean "no filter".
type TaskListOptions struct {
	Status   string
	Priority string
	Division string
	Limit    int
	Offset   int
}

// LogMemoryOptions describes a new ledger entry. Action and Entity are
// required.
type LogMemoryOptions struct {
	Action   string                 `json:"action"`
	Entity   string                 `json:"entity"`
	Details  string                 `json:"details,omitempty"`
	Tags     []string               `json:"tags,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// MemoryQueryOptions filters a ledger query. Search maps to the q parameter,
// Tags are comma-joined, Since/Until are sent as RFC 3339 timestamps. A zero
// Limit falls back to the server-visible default of 100.
type MemoryQueryOptions struct {
	Search string
	Action string
	Entity string
	Tags   []string
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}
