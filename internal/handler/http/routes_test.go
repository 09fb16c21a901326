package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-projects-api/models"
)

func TestInit_ReturnsRouter(t *testing.T) {
	h, _ := newMockedHandler(t)

	require.NotNil(t, h.Init())
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/version"},
	{http.MethodGet, "/metrics"},
	{http.MethodPost, "/auth/register"},
	{http.MethodPost, "/auth/login"},
	{http.MethodGet, "/auth/me"},
	{http.MethodGet, "/projects/"},
	{http.MethodPost, "/projects/"},
	{http.MethodGet, "/projects/1"},
	{http.MethodPatch, "/projects/1"},
}

func TestInit_RoutesRegistered(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, rc := range expectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			assert.True(t, router.Match(chi.NewRouteContext(), rc.method, rc.path), "route must be registered")
		})
	}
}

func TestInit_UnknownPathIsJSON404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, detailNotFound, decodeError(t, rec).Detail)
}

func TestInit_NoDeleteForProjects(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/projects/1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PATCH", rec.Header().Get("Allow"))
	assert.Equal(t, detailMethodNotAllowed, decodeError(t, rec).Detail)
}

func TestInit_ProjectsWithoutTrailingSlash(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.projects.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/projects", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInit_MeRequiresToken(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newMockedHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	rec := serve(h, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_CORSUnknownOrigin(t *testing.T) {
	h, _ := newMockedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `projects_api_http_requests_total{method="GET",route="/",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestInit_RequestTimeoutCancelsContext(t *testing.T) {
	h, mocks := newMockedHandler(t)
	h.requestTimeout = 1

	mocks.projects.EXPECT().ListProjects(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]models.Project, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/projects/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
