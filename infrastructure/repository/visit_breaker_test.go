package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

type fakeVisitRepository struct {
	calls int
	err   error
}

func (f *fakeVisitRepository) FetchVisits(ctx context.Context, filters domain.VisitFilters) (*domain.RowSet, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RowSet{Columns: []string{domain.ColumnStoreID}, Rows: []domain.RawRow{}}, nil
}

func TestBreakerVisitRepository_OpensAfterConsecutiveFailures(t *testing.T) {
	source := &fakeVisitRepository{err: errors.New("connection refused")}
	repo := NewBreakerVisitRepository(source, config.SourceBreaker{MaxFailures: 3, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := repo.FetchVisits(context.Background(), domain.VisitFilters{})
		assert.EqualError(t, err, "connection refused")
	}

	_, err := repo.FetchVisits(context.Background(), domain.VisitFilters{})

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, source.calls)
}

func TestBreakerVisitRepository_CanceledRequestsDoNotTrip(t *testing.T) {
	source := &fakeVisitRepository{err: context.Canceled}
	repo := NewBreakerVisitRepository(source, config.SourceBreaker{MaxFailures: 1, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := repo.FetchVisits(context.Background(), domain.VisitFilters{})
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, 3, source.calls)
}

func TestBreakerVisitRepository_Success(t *testing.T) {
	source := &fakeVisitRepository{}
	repo := NewBreakerVisitRepository(source, config.SourceBreaker{MaxFailures: 1, Timeout: time.Minute})

	rows, err := repo.FetchVisits(context.Background(), domain.VisitFilters{})

	require.NoError(t, err)
	assert.Equal(t, []string{domain.ColumnStoreID}, rows.Columns)
}
