// Package scheduler contém os serviços agendados de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/pkg/metrics"
)

//go:generate mockgen -source=cache_maintenance.go -destination=mocks/mock_cache_maintenance.go -package=mocks

// GarbageCollector compacta o armazenamento do cache e devolve quantos arquivos foram reescritos
type GarbageCollector interface {
	CollectGarbage() (int, error)
}

type CacheMaintenanceConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheMaintenanceService roda periodicamente a coleta de lixo do cache de datasets.
// Não remove entradas: a expiração é controlada por CACHE_TTL e pelo endpoint de limpeza.
type CacheMaintenanceService struct {
	scheduler          *gocron.Scheduler
	collector          GarbageCollector
	config             CacheMaintenanceConfig
	running            bool
	mutex              sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRewritten      int
	lastError          string
}

func NewCacheMaintenanceService(collector GarbageCollector, cfg *config.Config) *CacheMaintenanceService {
	maintenanceConfig := CacheMaintenanceConfig{
		CronSchedule: cfg.CacheMaintenance.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.CacheMaintenance.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": maintenanceConfig.CronSchedule,
		"enabled":       maintenanceConfig.Enabled,
	}).Info("Configuração do agendador de manutenção do cache carregada")

	return &CacheMaintenanceService{
		scheduler: gocron.NewScheduler(time.Local),
		collector: collector,
		config:    maintenanceConfig,
	}
}

func (s *CacheMaintenanceService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de manutenção do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de manutenção do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunMaintenance(); err != nil {
			logrus.WithError(err).Error("Erro na manutenção do cache")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar manutenção do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de manutenção do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunMaintenance executa a coleta de lixo. Se já houver uma execução em andamento, retorna sem fazer nada.
func (s *CacheMaintenanceService) RunMaintenance() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Manutenção do cache já está em execução")
		return nil
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	rewritten, err := s.collector.CollectGarbage()
	metrics.CacheGCRewrittenFiles.Add(float64(rewritten))

	s.mutex.Lock()
	s.running = false
	s.lastRunCompletedAt = time.Now()
	s.lastRewritten = rewritten
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("rewritten_files", rewritten).Info("Manutenção do cache concluída")
	return nil
}

// TriggerManualRun dispara a manutenção em background
func (s *CacheMaintenanceService) TriggerManualRun() {
	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()

	if running {
		logrus.Info("Manutenção do cache já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando manutenção manual do cache")
	go func() {
		if err := s.RunMaintenance(); err != nil {
			logrus.WithError(err).Error("Erro na manutenção manual do cache")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CacheMaintenanceService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_rewritten_files":  s.lastRewritten,
		"last_error":            s.lastError,
	}
}
