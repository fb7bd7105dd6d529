package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kawakarlyndo/Campomagnetico/internal/field"
	"github.com/Kawakarlyndo/Campomagnetico/internal/observability"
	"github.com/Kawakarlyndo/Campomagnetico/internal/testutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	observability.Logger = zap.NewNop()
	if err := field.InitMetrics(); err != nil {
		t.Fatalf("initializing field metrics: %v", err)
	}
	return NewRouter()
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestRouterComputeSetsRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"current":2,"distances":[0.5,1]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/compute", bytes.NewReader(body))
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload field.ComputeResponse
	testutil.DecodeJSONBody(t, w.Result().Body, &payload)

	if len(payload.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(payload.Results))
	}
	if payload.Results[0].Distance != 0.5 {
		t.Fatalf("expected first result at d=0.5, got %g", payload.Results[0].Distance)
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Result().Body, &body)
	if body["error"] != "route not found" {
		t.Fatalf("expected error %q, got %q", "route not found", body["error"])
	}
}

func TestRouterWrongMethodReturnsJSON405(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/compute", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusMethodNotAllowed, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Result().Body, &body)
	if body["error"] != "method not allowed" {
		t.Fatalf("expected error %q, got %q", "method not allowed", body["error"])
	}
}

func TestRouterServesVisualizerShell(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if !strings.Contains(w.Body.String(), "Magnetic Field") {
		t.Fatal("expected index.html content at /")
	}
}
