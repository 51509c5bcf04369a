package core

import (
	"testing"

	"github.com/blackroad/blackroad-go/internal/json"
)

// Absent optional fields must not appear in serialized bodies at all, not
// even as null. The server treats key presence as meaningful.

func TestRegisterAgentOptions_AbsentFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(RegisterAgentOptions{Name: "builder-1", Type: "ai", Level: 4})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 3 {
		t.Fatalf("expected exactly name, type, level; got %v", body)
	}
	for _, key := range []string{"division", "metadata"} {
		if _, present := body[key]; present {
			t.Errorf("absent field %q must not be serialized", key)
		}
	}
}

func TestDispatchTaskOptions_OnlyPresentFieldsSerialized(t *testing.T) {
	data, err := json.Marshal(DispatchTaskOptions{Title: "T", Priority: "medium"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected exactly title and priority, got %v", body)
	}
	if body["title"] != "T" || body["priority"] != "medium" {
		t.Errorf("unexpected body content: %v", body)
	}
}

func TestLogMemoryOptions_TagsOmittedWhenNil(t *testing.T) {
	data, err := json.Marshal(LogMemoryOptions{Action: "deploy", Entity: "api"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := body["tags"]; present {
		t.Error("nil tags must not be serialized")
	}
	if _, present := body["details"]; present {
		t.Error("empty details must not be serialized")
	}
}
