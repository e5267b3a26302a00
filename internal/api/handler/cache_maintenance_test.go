package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/visit-map-api/internal/api/handler/router"
)

type fakeMaintainer struct {
	triggered int
}

func (f *fakeMaintainer) TriggerManualRun() {
	f.triggered++
}

func (f *fakeMaintainer) GetStatus() map[string]any {
	return map[string]any{"enabled": true, "cron": "0 */6 * * *"}
}

func TestCacheMaintenanceRoutes(t *testing.T) {
	maintainer := &fakeMaintainer{}
	rt := router.New(router.WithRoutes(CacheMaintenance(maintainer)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cache/gc", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, maintainer.triggered)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cache/gc/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "0 */6 * * *", body["cron"])
}
