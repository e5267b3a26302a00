package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		CacheMaintenance: config.CacheMaintenance{
			CronSchedule: cron,
			Enabled:      enabled,
			DiscardRatio: 0.5,
		},
	}
}

func TestCacheMaintenanceService_RunMaintenance(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(collector *mocks.MockGarbageCollector)
		wantErr       bool
		wantRewritten int
		wantLastError string
	}{
		{
			name: "Coleta concluída",
			setup: func(collector *mocks.MockGarbageCollector) {
				collector.EXPECT().CollectGarbage().Return(3, nil)
			},
			wantRewritten: 3,
		},
		{
			name: "Nada para reescrever",
			setup: func(collector *mocks.MockGarbageCollector) {
				collector.EXPECT().CollectGarbage().Return(0, nil)
			},
		},
		{
			name: "Erro na coleta",
			setup: func(collector *mocks.MockGarbageCollector) {
				collector.EXPECT().CollectGarbage().Return(1, errors.New("value log corrupted"))
			},
			wantErr:       true,
			wantRewritten: 1,
			wantLastError: "value log corrupted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			collector := mocks.NewMockGarbageCollector(ctrl)
			tt.setup(collector)

			service := NewCacheMaintenanceService(collector, newTestConfig(true, "0 */6 * * *"))

			err := service.RunMaintenance()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.wantRewritten, status["last_rewritten_files"])
			assert.Equal(t, tt.wantLastError, status["last_error"])
		})
	}
}

func TestCacheMaintenanceService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewCacheMaintenanceService(mocks.NewMockGarbageCollector(ctrl), newTestConfig(false, "invalid"))

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, 0, len(service.scheduler.Jobs()))
	})

	t.Run("Cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewCacheMaintenanceService(mocks.NewMockGarbageCollector(ctrl), newTestConfig(true, "not a cron"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewCacheMaintenanceService(mocks.NewMockGarbageCollector(ctrl), newTestConfig(true, "0 */6 * * *"))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, len(service.scheduler.Jobs()))

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
