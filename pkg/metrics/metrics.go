// Package metrics expõe as métricas Prometheus do serviço em /metrics
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Resultados de leitura do cache
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Origem de um dataset processado
const (
	OriginQuery  = "query"
	OriginUpload = "upload"
)

var (
	DatasetCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_map_cache_lookups_total",
			Help: "Total de leituras do cache de datasets por resultado",
		},
		[]string{"result"}, // hit, miss, error
	)

	DatasetComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_map_dataset_computations_total",
			Help: "Total de datasets processados por origem e status",
		},
		[]string{"origin", "status"},
	)

	DatasetComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visit_map_dataset_compute_duration_seconds",
			Help:    "Tempo para processar um dataset",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"origin"},
	)

	DroppedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_map_dropped_rows_total",
			Help: "Linhas descartadas por coordenadas inválidas",
		},
		[]string{"origin"},
	)

	SharedComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visit_map_shared_computations_total",
			Help: "Requisições atendidas pelo cálculo em andamento de outra requisição",
		},
	)

	CacheGCRewrittenFiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visit_map_cache_gc_rewritten_files_total",
			Help: "Arquivos do value log reescritos pela manutenção do cache",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "visit_map_circuit_breaker_state",
			Help: "Estado do circuit breaker (0=fechado, 1=meio-aberto, 2=aberto)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_map_circuit_breaker_requests_total",
			Help: "Chamadas passando pelo circuit breaker por resultado",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_map_api_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visit_map_api_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// RecordCacheLookup registra o resultado de uma leitura do cache
func RecordCacheLookup(result string) {
	DatasetCacheLookups.WithLabelValues(result).Inc()
}

// RecordComputation registra um dataset processado
func RecordComputation(origin string, duration time.Duration, dropped int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	DatasetComputations.WithLabelValues(origin, status).Inc()
	DatasetComputeDuration.WithLabelValues(origin).Observe(duration.Seconds())

	if dropped > 0 {
		DroppedRows.WithLabelValues(origin).Add(float64(dropped))
	}
}

// RecordAPIRequest registra uma requisição HTTP finalizada
func RecordAPIRequest(method, path string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// BreakerStateValue converte o estado do circuit breaker para o valor do gauge
func BreakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
