package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/internal/domain"
	"github.com/vfg2006/visit-map-api/pkg/metrics"
)

const visitSourceBreakerName = "visit-source"

type breakerVisitRepository struct {
	next VisitRepository
	cb   *gobreaker.CircuitBreaker[*domain.RowSet]
}

// NewBreakerVisitRepository protege a origem de visitas com um circuit breaker. Depois de
// MaxFailures falhas consecutivas as consultas falham imediatamente durante Timeout.
// Cancelamentos do cliente não contam como falha do banco.
func NewBreakerVisitRepository(next VisitRepository, cfg config.SourceBreaker) VisitRepository {
	metrics.CircuitBreakerState.WithLabelValues(visitSourceBreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*domain.RowSet](gobreaker.Settings{
		Name:        visitSourceBreakerName,
		MaxRequests: 1, // Uma consulta de teste no estado meio-aberto
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker da origem de visitas mudou de estado")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &breakerVisitRepository{next: next, cb: cb}
}

func (r *breakerVisitRepository) FetchVisits(ctx context.Context, filters domain.VisitFilters) (*domain.RowSet, error) {
	rows, err := r.cb.Execute(func() (*domain.RowSet, error) {
		return r.next.FetchVisits(ctx, filters)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(visitSourceBreakerName, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(visitSourceBreakerName, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(visitSourceBreakerName, "failure").Inc()
	}

	return rows, err
}
