package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedRequest runs next through withLogging with a request-scoped logger
// writing into a buffer and returns the decoded access log entry.
func loggedRequest(t *testing.T, method, target string, next http.Handler) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l := zerolog.New(&buf)

	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(l.WithContext(req.Context()))

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	return entry
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	entry := loggedRequest(t, http.MethodPost, "/projects/?x=1", next)

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/projects/?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	entry := loggedRequest(t, http.MethodGet, "/", next)

	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_ServerErrorLevel(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	entry := loggedRequest(t, http.MethodGet, "/", next)

	assert.Equal(t, "error", entry["level"])
}
