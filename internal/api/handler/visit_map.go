package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/visit-map-api/infrastructure/upload"
	"github.com/vfg2006/visit-map-api/internal/domain"
	"github.com/vfg2006/visit-map-api/internal/usecases/mapping"
	"github.com/vfg2006/visit-map-api/internal/usecases/processing"
	"github.com/vfg2006/visit-map-api/pkg/apiErrors"
	"github.com/vfg2006/visit-map-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const uploadFormField = "file"

// GetMapData devolve o dataset processado para o período e filtros informados
func GetMapData(service mapping.MapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		sig, err := mapping.ParseSignature(
			query.Get("start_date"),
			query.Get("end_date"),
			query.Get("area_id"),
			query.Get("account_id"),
		)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		dataset, err := service.Resolve(r.Context(), sig)
		if err != nil && !isCacheWriteOnly(dataset, err) {
			writeServiceError(w, r, err)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Dataset devolvido sem ser gravado no cache")
		}

		writeJSON(w, r, http.StatusOK, dataset)
	}
}

// UploadVisits processa um CSV de visitas e o torna o dataset atual
func UploadVisits(service mapping.MapService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxBytesErr):
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "uploaded file exceeds the size limit", nil)
			case errors.Is(err, http.ErrMissingFile):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "no file uploaded", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid multipart request", nil)
			}
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "only .csv files are supported", nil)
			return
		}

		rows, err := upload.ReadCSV(file)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.Infof("Arquivo %s recebido com %d linhas", header.Filename, len(rows.Rows))

		dataset, err := service.ProcessUpload(r.Context(), rows)
		if err != nil && !isCacheWriteOnly(dataset, err) {
			writeServiceError(w, r, err)
			return
		}
		if err != nil {
			logger.WithError(err).Warn("Dataset do upload não foi persistido")
		}

		writeJSON(w, r, http.StatusOK, dataset)
	}
}

// GetCurrentDataset devolve o dataset do último upload
func GetCurrentDataset(service mapping.MapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, err := service.Current(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dataset)
	}
}

// ClearMapData remove o cache de consultas e o dataset atual
func ClearMapData(service mapping.MapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.ClearCache(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao limpar cache")
			apiErrors.WriteError(w, apiErrors.ErrCacheOperation, "failed to clear data: "+err.Error(), nil)
			return
		}

		if err := service.ClearCurrent(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao remover dataset atual")
			apiErrors.WriteError(w, apiErrors.ErrCacheOperation, "failed to clear data: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.MessageResult{
			Success: true,
			Message: "all data cleared",
		})
	}
}

// GetFilterOptions lista áreas e contas disponíveis
func GetFilterOptions(service mapping.MapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.Filters(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}

// isCacheWriteOnly indica que o dataset foi calculado e só a gravação falhou
func isCacheWriteOnly(dataset *domain.ProcessedDataset, err error) bool {
	return dataset != nil && errors.Is(err, mapping.ErrCacheWrite)
}

// errorCode traduz erros do domínio para o código da API
func errorCode(err error) string {
	switch {
	case errors.Is(err, mapping.ErrInvalidSignature):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, processing.ErrMissingColumn):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, processing.ErrInvalidDate),
		errors.Is(err, upload.ErrEmptyFile),
		errors.Is(err, upload.ErrMalformedCSV):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, mapping.ErrNoData):
		return apiErrors.ErrNoData
	case errors.Is(err, mapping.ErrSourceUnavailable):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	if code == apiErrors.ErrInternalServer {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao atender requisição")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
