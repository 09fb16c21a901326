package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/mock"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a bare Handler for middleware tests.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// mockedServices holds the gomock doubles behind a Handler.
type mockedServices struct {
	auth     *mock.MockAuthService
	projects *mock.MockProjectService
	appInfo  *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are gomock doubles and
// which has no database sessions.
func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := mockedServices{
		auth:     mock.NewMockAuthService(ctrl),
		projects: mock.NewMockProjectService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		ProjectService: mocks.projects,
		AppInfoService: mocks.appInfo,
	}, nil, config.StructuredConfig{}, logger.Nop())

	return h, mocks
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// jsonBody marshals v into a request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// decodeError reads an ErrorResponse body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// bufferedLogger returns a Logger writing JSON lines into buf.
func bufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := config.StructuredConfig{
		CORS: config.CORS{FrontendOrigin: "https://app.example.com"},
	}
	cfg.Server.RequestTimeout = 5 * time.Second

	h := NewHandler(svcs, nil, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Contains(t, h.corsOrigins, "https://app.example.com")
	assert.Contains(t, h.corsOrigins, "http://localhost:5173")
	assert.Contains(t, h.corsOrigins, config.DeployedFrontendOrigin)
	assert.Equal(t, cfg.Server.RequestTimeout, h.requestTimeout)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())

	assert.NotSame(t, h1.registry, h2.registry)
}

func TestRegisterCollector(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "test"})
	require.NoError(t, h.RegisterCollector(gauge))

	// same collector twice is rejected by the registry
	assert.Error(t, h.RegisterCollector(gauge))
}
