package http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	tweeterhttp "github.com/sagarc03/tweeter/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})
	wrapped := tweeterhttp.RequestLogger(newBufferLogger(&buf))(handler)

	req := httptest.NewRequest("GET", "/nope?x=1", nil)
	req.Header.Set("User-Agent", "tweeter-test")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 2)

	received, served := lines[0], lines[1]
	assert.Equal(t, "request received", received["msg"])
	assert.Equal(t, "GET", received["method"])
	assert.Equal(t, "/nope?x=1", received["url"])
	assert.Contains(t, received["headers"], "User-Agent")

	assert.Equal(t, "request served", served["msg"])
	assert.Equal(t, float64(http.StatusNotFound), served["status"])
	assert.Equal(t, float64(len("missing")), served["bytes"])
	assert.Equal(t, received["request_id"], served["request_id"])

	_, err := uuid.Parse(served["request_id"].(string))
	assert.NoError(t, err)
}

func TestRequestLogger_RequestIDInContext(t *testing.T) {
	var seen string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = tweeterhttp.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	wrapped := tweeterhttp.RequestLogger(slog.New(slog.DiscardHandler))(handler)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestRequestLogger_UniqueIDs(t *testing.T) {
	ids := make(map[string]struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[tweeterhttp.RequestIDFromContext(r.Context())] = struct{}{}
	})
	wrapped := tweeterhttp.RequestLogger(slog.New(slog.DiscardHandler))(handler)

	for range 5 {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	assert.Len(t, ids, 5)
}

func TestRequestLogger_NilLogger(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	wrapped := tweeterhttp.RequestLogger(nil)(handler)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	assert.Empty(t, tweeterhttp.RequestIDFromContext(req.Context()))
}
