package core

import "time"

// Agent represents a registered BlackRoad agent.
type Agent struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Division  string                 `json:"division"`
	Level     int                    `json:"level"`
	Status    string                 `json:"status"`
	Load      float64                `json:"load"`
	Hash      string                 `json:"hash"`
	CreatedAt time.Time              `json:"created_at"`
	LastSeen  time.Time              `json:"last_seen"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Task represents a dispatched BlackRoad task.
type Task struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Status        string                 `json:"status"`
	Priority      string                 `json:"priority"`
	Division      string                 `json:"division,omitempty"`
	TargetLevel   int                    `json:"target_level,omitempty"`
	AssignedAgent string                 `json:"assigned_agent,omitempty"`
	Result        string                 `json:"result,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// MemoryEntry represents one entry in the hash-chained memory ledger.
// PrevHash links each entry to its predecessor; the chain can be checked
// server-side via the verify endpoint.
type MemoryEntry struct {
	Hash      string                 `json:"hash"`
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Entity    string                 `json:"entity"`
	Details   string                 `json:"details,omitempty"`
	Agent     string                 `json:"agent,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
	PrevHash  string                 `json:"prev_hash,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Stats carries aggregate counters returned by the per-resource stats
// endpoints. Only the fields relevant to the queried resource are populated.
type Stats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status,omitempty"`
	ByType    map[string]int `json:"by_type,omitempty"`
	ByLevel   map[string]int `json:"by_level,omitempty"`
	Active    int            `json:"active,omitempty"`
	Pending   int            `json:"pending,omitempty"`
	Completed int            `json:"completed,omitempty"`
}

// HealthStatus represents the service health report.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// VerifyChainResult reports the outcome of a ledger chain verification.
type VerifyChainResult struct {
	Valid   bool `json:"valid"`
	Checked int  `json:"checked"`
}
