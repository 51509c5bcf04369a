package agents

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/blackroad-go/core"
	apiErrors "github.com/blackroad/blackroad-go/errors"
	"github.com/blackroad/blackroad-go/internal/testutil"
)

const agentPayload = `{"id":"a-1","name":"atlas","type":"ai","level":4,"status":"online"}`

func TestRegister_AppliesDefaults(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: agentPayload}
	api := New(rec)

	opts := &core.RegisterAgentOptions{Name: "atlas"}
	agent, err := api.Register(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "a-1", agent.ID)

	req := rec.Last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/agents", req.Path)

	body, ok := req.Body.(core.RegisterAgentOptions)
	require.True(t, ok)
	assert.Equal(t, "atlas", body.Name)
	assert.Equal(t, "ai", body.Type)
	assert.Equal(t, 4, body.Level)

	// The caller's struct must remain untouched.
	assert.Equal(t, "", opts.Type)
	assert.Equal(t, 0, opts.Level)
}

func TestRegister_KeepsExplicitValues(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: agentPayload}
	api := New(rec)

	_, err := api.Register(context.Background(), &core.RegisterAgentOptions{
		Name:  "orchestrator",
		Type:  "human",
		Level: 2,
	})
	require.NoError(t, err)

	body := rec.Last().Body.(core.RegisterAgentOptions)
	assert.Equal(t, "human", body.Type)
	assert.Equal(t, 2, body.Level)
}

func TestList_QueryFromPresentFieldsOnly(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: `{"agents":[` + agentPayload + `]}`}
	api := New(rec)

	agents, err := api.List(context.Background(), &core.AgentListOptions{
		Level:  2,
		Status: "online",
	})
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "atlas", agents[0].Name)

	req := rec.Last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/agents", req.Path)
	assert.Equal(t, map[string]string{"level": "2", "status": "online"}, req.Query)
}

func TestList_NilOptions(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: `{"agents":[]}`}
	api := New(rec)

	agents, err := api.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, agents)
	assert.Empty(t, rec.Last().Query)
}

func TestHierarchyShortcuts(t *testing.T) {
	tests := []struct {
		name  string
		call  func(ctx context.Context, api *API) error
		query map[string]string
	}{
		{
			name: "commanders",
			call: func(ctx context.Context, api *API) error {
				_, err := api.Commanders(ctx)
				return err
			},
			query: map[string]string{"level": "2"},
		},
		{
			name: "managers",
			call: func(ctx context.Context, api *API) error {
				_, err := api.Managers(ctx)
				return err
			},
			query: map[string]string{"level": "3"},
		},
		{
			name: "workers",
			call: func(ctx context.Context, api *API) error {
				_, err := api.Workers(ctx)
				return err
			},
			query: map[string]string{"level": "4"},
		},
		{
			name: "by division",
			call: func(ctx context.Context, api *API) error {
				_, err := api.ByDivision(ctx, "infra")
				return err
			},
			query: map[string]string{"division": "infra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.RecordingCaller{Payload: `{"agents":[]}`}
			api := New(rec)

			require.NoError(t, tt.call(context.Background(), api))
			req := rec.Last()
			assert.Equal(t, "/agents", req.Path)
			assert.Equal(t, tt.query, req.Query)
		})
	}
}

func TestGet(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: agentPayload}
	api := New(rec)

	agent, err := api.Get(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "atlas", agent.Name)
	assert.Equal(t, "/agents/a-1", rec.Last().Path)
}

func TestHeartbeat(t *testing.T) {
	t.Run("without load", func(t *testing.T) {
		rec := &testutil.RecordingCaller{}
		api := New(rec)

		require.NoError(t, api.Heartbeat(context.Background(), "a-1", 0))
		req := rec.Last()
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/agents/a-1/heartbeat", req.Path)
		assert.Empty(t, req.Body.(map[string]any))
	})

	t.Run("with load", func(t *testing.T) {
		rec := &testutil.RecordingCaller{}
		api := New(rec)

		require.NoError(t, api.Heartbeat(context.Background(), "a-1", 0.75))
		body := rec.Last().Body.(map[string]any)
		assert.Equal(t, map[string]any{"load": 0.75}, body)
	})
}

func TestUpdateStatus(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: `{"id":"a-1","status":"offline"}`}
	api := New(rec)

	agent, err := api.UpdateStatus(context.Background(), "a-1", "offline")
	require.NoError(t, err)
	assert.Equal(t, "offline", agent.Status)

	req := rec.Last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/agents/a-1", req.Path)
	assert.Equal(t, map[string]string{"status": "offline"}, req.Body)
}

func TestDelete(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: `{"deleted":true}`}
	api := New(rec)

	require.NoError(t, api.Delete(context.Background(), "a-1"))
	req := rec.Last()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/agents/a-1", req.Path)
}

func TestStats(t *testing.T) {
	rec := &testutil.RecordingCaller{Payload: `{"total":12,"by_level":{"2":1,"3":3,"4":8}}`}
	api := New(rec)

	stats, err := api.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 8, stats.ByLevel["4"])
	assert.Equal(t, "/agents/stats", rec.Last().Path)
}

func TestErrorsPassThroughUnchanged(t *testing.T) {
	want := apiErrors.NewNotFoundError("agent not found")
	rec := &testutil.RecordingCaller{Err: want}
	api := New(rec)

	_, err := api.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiErrors.ErrNotFound))
	assert.True(t, apiErrors.IsNotFound(err))
	assert.Same(t, want, err)
}
