package handler

import (
	"net/http"

	"github.com/vfg2006/visit-map-api/internal/domain"
	"github.com/vfg2006/visit-map-api/pkg/log"
)

// CacheMaintainer é o agendador de manutenção do cache visto pelos handlers
type CacheMaintainer interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// RunCacheMaintenance dispara a manutenção do cache em background
func RunCacheMaintenance(maintainer CacheMaintainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCacheMaintenance")

		maintainer.TriggerManualRun()

		writeJSON(w, r, http.StatusAccepted, domain.MessageResult{
			Success: true,
			Message: "cache maintenance started",
		})
	}
}

// GetCacheMaintenanceStatus retorna o status do agendador de manutenção
func GetCacheMaintenanceStatus(maintainer CacheMaintainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, maintainer.GetStatus())
	}
}
