package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/visit-map-api/internal/api/handler/router"
	"github.com/vfg2006/visit-map-api/internal/usecases/mapping"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// VisitMap retorna as rotas do mapa de visitas. uploadMaxBytes limita o corpo do upload.
func VisitMap(service mapping.MapService, uploadMaxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/map/data",
			Method:  http.MethodGet,
			Handler: GetMapData(service),
		},
		{
			Path:    "/v1/map/upload",
			Method:  http.MethodPost,
			Handler: UploadVisits(service, uploadMaxBytes),
		},
		{
			Path:    "/v1/map/current",
			Method:  http.MethodGet,
			Handler: GetCurrentDataset(service),
		},
		{
			Path:    "/v1/map/clear",
			Method:  http.MethodPost,
			Handler: ClearMapData(service),
		},
		{
			Path:    "/v1/map/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func CacheMaintenance(maintainer CacheMaintainer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/gc",
			Method:  http.MethodPost,
			Handler: RunCacheMaintenance(maintainer),
		},
		{
			Path:    "/v1/cache/gc/status",
			Method:  http.MethodGet,
			Handler: GetCacheMaintenanceStatus(maintainer),
		},
	}
}
