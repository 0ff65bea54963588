package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergentai/taskify/apps/website/internal/config"
)

func newTestRouter(t *testing.T, metricsEnabled bool) (http.Handler, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	r := NewRouter(RouterParams{
		Config: &config.Config{MetricsEnabled: metricsEnabled},
		Log:    log,
		Assets: Assets{FS: fstest.MapFS{
			"styles.css": {Data: []byte(".carousel-track{}")},
		}},
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	return r, &logs
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRouter_NotFound(t *testing.T) {
	r, _ := newTestRouter(t, false)

	rec := serve(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter(t, false)

	rec := serve(r, http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", decodeError(t, rec).Error.Code)
}

func TestRouter_StaticFiles(t *testing.T) {
	r, _ := newTestRouter(t, false)

	rec := serve(r, http.MethodGet, "/static/styles.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".carousel-track{}", rec.Body.String())

	rec = serve(r, http.MethodGet, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{"enabled", true, http.StatusOK},
		{"disabled", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, tt.enabled)
			rec := serve(r, http.MethodGet, "/metrics")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	r, logs := newTestRouter(t, false)

	rec := serve(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec).Error.Code)

	assert.Contains(t, logs.String(), "panic recovered")
	assert.Contains(t, logs.String(), "kaboom")
}

func TestRouter_RequestLogging(t *testing.T) {
	r, logs := newTestRouter(t, false)

	serve(r, http.MethodGet, "/health")
	assert.Empty(t, logs.String())

	serve(r, http.MethodGet, "/nope?x=1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/nope?x=1", entry["uri"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "http", entry["scope"])
	assert.NotEmpty(t, entry["request_id"])
}
