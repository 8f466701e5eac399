package executor_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/executor"
	"github.com/openconvo/httptools-mcp/internal/secrets"
	secrets_mocks "github.com/openconvo/httptools-mcp/internal/secrets/mocks"
	"github.com/openconvo/httptools-mcp/internal/ui"
	ui_mocks "github.com/openconvo/httptools-mcp/internal/ui/mocks"
)

func statusDescriptor() *descriptor.Descriptor {
	return &descriptor.Descriptor{
		Name:        "check-status",
		Description: "Check a status code.",
		HTTP: descriptor.HTTPSpec{
			Method:      "GET",
			URLTemplate: "/status/{args.code}",
		},
	}
}

func TestExecuteRelativeURLAgainstBaseOrigin(t *testing.T) {
	var gotPath, gotTrace, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTrace = r.Header.Get(executor.TraceHeader)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		if !strings.HasPrefix(r.URL.Path, "/status/2") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": 200}`))
	}))
	defer srv.Close()

	e := executor.New(executor.Config{BaseURL: srv.URL, Resolver: secrets.EnvResolver{}})

	res := e.Execute(context.Background(), statusDescriptor(), map[string]any{"code": 200})

	require.Equal(t, 200, res.Status)
	body, ok := res.Body.(map[string]any)
	require.True(t, ok, "body should parse as JSON object, got %T", res.Body)
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, "/status/200", gotPath)
	assert.NotEmpty(t, gotTrace, "outbound call must carry a trace id")
	assert.Empty(t, gotBody, "GET must not carry a body")
	assert.Empty(t, gotContentType, "GET must not carry a default content-type")
}

// A sparse argument set renders the missing segment empty; the resulting
// broken URL fails with the upstream 404, returned as an envelope rather
// than an error.
func TestExecuteMissingArgumentDegradesToUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/status/" {
			http.Error(w, "no such route", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	e := executor.New(executor.Config{BaseURL: srv.URL})

	res := e.Execute(context.Background(), statusDescriptor(), map[string]any{})

	assert.Equal(t, http.StatusNotFound, res.Status)
	raw, ok := res.Body.(string)
	require.True(t, ok, "non-JSON body stays raw text, got %T", res.Body)
	assert.Contains(t, raw, "no such route")
}

func TestExecuteTimeoutAbortsInFlightCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := statusDescriptor()
	d.HTTP.TimeoutMs = 50

	e := executor.New(executor.Config{BaseURL: srv.URL})

	start := time.Now()
	res := e.Execute(context.Background(), d, map[string]any{"code": 200})
	elapsed := time.Since(start)

	assert.Equal(t, 0, res.Status)
	raw, ok := res.Body.(string)
	require.True(t, ok)
	assert.Contains(t, raw, "timed out")
	assert.Less(t, elapsed, 300*time.Millisecond, "timeout must abort the call, not wait it out")
}

func TestExecutePostTemplatesBodyAndSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := secrets_mocks.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), "payments.api_key", "acme").
		Return("sk-live-1", nil)

	var gotAuth, gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"refund": {"ok": true, "token": "rf_1"}}`))
	}))
	defer srv.Close()

	d := &descriptor.Descriptor{
		Name:     "create-refund",
		TenantID: "acme",
		HTTP: descriptor.HTTPSpec{
			Method:      "POST",
			URLTemplate: srv.URL + "/refunds",
			Headers: map[string]string{
				"Authorization": "Bearer {{secrets.payments.api_key}}",
			},
			JSONBodyTemplate: map[string]any{
				"amount": "{args.amount}",
				"reason": "{args.reason}",
				"count":  0,
			},
			PruneEmptyBody: true,
			OKField:        "refund.ok",
		},
	}

	e := executor.New(executor.Config{Resolver: resolver})
	res := e.Execute(context.Background(), d, map[string]any{"amount": 25})

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Bearer sk-live-1", gotAuth)
	assert.Equal(t, "application/json", gotContentType, "templated body gets a default content-type")
	assert.Equal(t, "25", gotBody["amount"])
	assert.Equal(t, float64(0), gotBody["count"], "zero survives pruning")
	_, hasReason := gotBody["reason"]
	assert.False(t, hasReason, "empty substitution is pruned from the body")

	assert.True(t, executor.Succeeded(d, res))
}

func TestSucceeded(t *testing.T) {
	plain := statusDescriptor()
	withOK := statusDescriptor()
	withOK.HTTP.OKField = "result.ok"

	tests := []struct {
		name string
		d    *descriptor.Descriptor
		res  executor.Result
		want bool
	}{
		{"2xx without okField", plain, executor.Result{Status: 204, Body: ""}, true},
		{"4xx without okField", plain, executor.Result{Status: 404, Body: "nope"}, false},
		{"okField true overrides status", withOK, executor.Result{Status: 500, Body: map[string]any{"result": map[string]any{"ok": true}}}, true},
		{"okField false overrides status", withOK, executor.Result{Status: 200, Body: map[string]any{"result": map[string]any{"ok": false}}}, false},
		{"okField zero is false", withOK, executor.Result{Status: 200, Body: map[string]any{"result": map[string]any{"ok": float64(0)}}}, false},
		{"okField missing is false", withOK, executor.Result{Status: 200, Body: map[string]any{"result": map[string]any{}}}, false},
		{"okField on raw body falls back to status", withOK, executor.Result{Status: 200, Body: "plain text"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, executor.Succeeded(tt.d, tt.res))
		})
	}
}

func TestExecuteDispatchesOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	stage := ui_mocks.NewMockStage(ctrl)

	var shown *descriptor.OpenInstruction
	stage.EXPECT().
		Show(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, open *descriptor.OpenInstruction) error {
			shown = open
			return nil
		})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticket": {"id": "T-77"}}`))
	}))
	defer srv.Close()

	d := &descriptor.Descriptor{
		Name: "submit-ticket",
		HTTP: descriptor.HTTPSpec{Method: "GET", URLTemplate: srv.URL + "/tickets"},
		UI: &descriptor.UISpec{
			OnSuccess: &descriptor.UIBranch{
				Open: &descriptor.OpenInstruction{
					ComponentName: "confirmation_panel",
					Props:         map[string]any{"message": "Created {response.ticket.id} (status {status})"},
				},
			},
		},
	}

	e := executor.New(executor.Config{Dispatcher: ui.NewDispatcher(stage)})
	res := e.Execute(context.Background(), d, map[string]any{})

	require.Equal(t, 200, res.Status)
	require.NotNil(t, shown)
	assert.Equal(t, "Created T-77 (status 200)", shown.Props["message"])
}
