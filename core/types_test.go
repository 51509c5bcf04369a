package core

import (
	"strings"
	"testing"
	"time"

	"github.com/blackroad/blackroad-go/internal/json"
)

func TestTask_DecodeWirePayload(t *testing.T) {
	payload := `{
		"id": "task-42",
		"title": "Rebuild index",
		"status": "in_progress",
		"priority": "high",
		"division": "infra",
		"assigned_agent": "agent-7",
		"created_at": "2025-06-01T10:00:00Z",
		"updated_at": "2025-06-01T10:05:00Z"
	}`

	var task Task
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.ID != "task-42" || task.Priority != "high" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.CompletedAt != nil {
		t.Error("absent completed_at should decode as nil")
	}
	if task.Metadata != nil {
		t.Error("absent metadata should decode as nil")
	}
}

func TestTask_CompletedAtOmittedWhenNil(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Title:     "T",
		Status:    "pending",
		Priority:  "medium",
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "completed_at") {
		t.Errorf("nil completed_at must not be serialized, got %s", data)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("no field may serialize as null, got %s", data)
	}
}

func TestMemoryEntry_DecodeChainFields(t *testing.T) {
	payload := `{
		"hash": "abc123",
		"timestamp": "2025-06-01T10:00:00Z",
		"action": "deploy",
		"entity": "api-server",
		"prev_hash": "def456",
		"tags": ["deploy", "infra"]
	}`

	var entry MemoryEntry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.PrevHash != "def456" {
		t.Errorf("PrevHash = %q, want def456", entry.PrevHash)
	}
	if len(entry.Tags) != 2 {
		t.Errorf("Tags = %v, want two entries", entry.Tags)
	}
}
