package blackroad

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/blackroad/blackroad-go/errors"
	"github.com/blackroad/blackroad-go/internal/testutil"
	"github.com/blackroad/blackroad-go/transport"
)

func TestNew_MissingAPIKeyFailsBeforeAnyRequest(t *testing.T) {
	t.Setenv(transport.EnvAPIKey, "")

	tr := testutil.NewScriptedTransport()
	_, err := New(func(o *Options) {
		o.HTTPClient = &http.Client{Transport: tr}
	})
	require.Error(t, err)
	assert.True(t, apiErrors.IsAuthentication(err))
	assert.Equal(t, 0, tr.Attempts(), "construction must not touch the network")
}

func TestNew_TrailingSlashStripped(t *testing.T) {
	tr := testutil.NewScriptedTransport(testutil.Respond(200, `{"status":"healthy"}`))
	client, err := New(func(o *Options) {
		o.APIKey = "sk-test"
		o.BaseURL = "https://api.test.local/v1/"
		o.HTTPClient = &http.Client{Transport: tr}
	})
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://api.test.local/v1/health", tr.Request(0).URL.String())
}

func TestClient_HealthDecodesDirectly(t *testing.T) {
	tr := testutil.NewScriptedTransport(testutil.Respond(200,
		`{"status":"healthy","version":"2.3.1","timestamp":"2025-11-02T10:00:00Z","services":{"ledger":"ok"}}`))
	client := newTestClient(t, tr)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "2.3.1", status.Version)
	assert.Equal(t, "ok", status.Services["ledger"])
}

func TestClient_VersionUnwrapsEnvelope(t *testing.T) {
	tr := testutil.NewScriptedTransport(testutil.Respond(200, `{"version":"2.3.1"}`))
	client := newTestClient(t, tr)

	version, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.3.1", version)
	assert.Equal(t, "/v1/version", tr.Request(0).URL.Path)
}

func TestClient_RawHelpers(t *testing.T) {
	tr := testutil.NewScriptedTransport(
		testutil.Respond(200, `{"entries":[]}`),
		testutil.Respond(200, `{"ok":true}`),
	)
	client := newTestClient(t, tr)

	var entries struct {
		Entries []any `json:"entries"`
	}
	err := client.Get(context.Background(), "/memory", map[string]string{"limit": "5"}, &entries)
	require.NoError(t, err)
	assert.Equal(t, "5", tr.Request(0).URL.Query().Get("limit"))

	var ok map[string]any
	err = client.Post(context.Background(), "/memory/broadcast", map[string]string{"type": "ping"}, &ok)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, tr.Request(1).Method)
	assert.JSONEq(t, `{"type":"ping"}`, string(tr.RequestBody(1)))
}

func TestClient_RequestIDsDifferBetweenCalls(t *testing.T) {
	tr := testutil.NewScriptedTransport(
		testutil.Respond(200, `{"agents":[]}`),
		testutil.Respond(200, `{"tasks":[]}`),
	)
	client := newTestClient(t, tr)

	_, err := client.Agents().List(context.Background(), nil)
	require.NoError(t, err)
	_, err = client.Tasks().List(context.Background(), nil)
	require.NoError(t, err)

	first := tr.Request(0).Header.Get("X-Request-ID")
	second := tr.Request(1).Header.Get("X-Request-ID")
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestClient_AgainstLiveServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-live" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy","version":"2.3.1","timestamp":"2025-11-02T10:00:00Z"}`)
	})
	mux.HandleFunc("/agents/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "agent not found")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := New(func(o *Options) {
		o.APIKey = "sk-live"
		o.BaseURL = srv.URL
	})
	require.NoError(t, err)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)

	_, err = client.Agents().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apiErrors.IsNotFound(err))
	var apiErr *apiErrors.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "agent not found", apiErr.Message)
}

func newTestClient(t *testing.T, tr http.RoundTripper) *Client {
	t.Helper()
	client, err := New(func(o *Options) {
		o.APIKey = "sk-test"
		o.BaseURL = "https://api.test.local/v1"
		o.HTTPClient = &http.Client{Transport: tr}
	})
	require.NoError(t, err)
	return client
}
