package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/internal/usecases/mapping"
	"github.com/vfg2006/visit-map-api/internal/usecases/mapping/mocks"
	"github.com/vfg2006/visit-map-api/pkg/log"
	"github.com/vfg2006/visit-map-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type noopMaintainer struct{}

func (noopMaintainer) TriggerManualRun()          {}
func (noopMaintainer) GetStatus() map[string]any { return map[string]any{} }

func newTestServer(t *testing.T, service mapping.MapService) *Server {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Upload: config.Upload{MaxSizeMB: 16},
	}

	srv, err := New(cfg, service, noopMaintainer{})
	require.NoError(t, err)
	return srv
}

func TestServer_MiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockMapService(ctrl)
	service.EXPECT().Current(gomock.Any()).Return(nil, mapping.ErrNoData)

	srv := newTestServer(t, service)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/map/current", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Healthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(t, mocks.NewMockMapService(ctrl))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(t, mocks.NewMockMapService(ctrl))

	// Gera ao menos uma série de requisição antes da coleta
	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "visit_map_api_requests_total")
}
