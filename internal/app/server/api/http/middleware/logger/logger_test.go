package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func run(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := New(slog.New(slog.NewJSONHandler(&buf, nil))).Middleware()

	rec := httptest.NewRecorder()
	op := &huma.Operation{Method: req.Method, Path: req.URL.Path}
	called := false
	mw(humatest.NewContext(op, req, rec), func(huma.Context) { called = true })
	require.True(t, called, "next handler must run")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	rec, entry := run(t, httptest.NewRequest(http.MethodGet, "/employees", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.Equal(t, "HTTP request", entry["msg"])
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/employees", entry["path"])
	assert.Equal(t, "http_logger", entry["component"])
}

func TestMiddleware_KeepsClientRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	rec, entry := run(t, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", entry["request_id"])
}
