// Package mapping orquestra a ingestão de visitas: cache, origem dos dados e processamento.
package mapping

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/visit-map-api/internal/domain"
	"github.com/vfg2006/visit-map-api/internal/usecases/processing"
	"github.com/vfg2006/visit-map-api/pkg/log"
	"github.com/vfg2006/visit-map-api/pkg/metrics"
	"github.com/vfg2006/visit-map-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

// Service implementa MapService. É criado uma única vez no main e compartilhado pelos handlers.
type Service struct {
	visitSource  VisitSource
	filterSource FilterSource
	cache        DatasetCache
	currentStore CurrentDatasetStore

	// Chamadas concorrentes com a mesma chave compartilham um único cálculo
	fills singleflight.Group

	// current é o dataset do último upload. nil até o primeiro upload ou leitura do disco,
	// e volta a nil em ClearCurrent.
	currentMu sync.RWMutex
	current   *domain.CurrentDataset
}

// NewService cria uma nova instância do serviço do mapa
func NewService(
	visitSource VisitSource,
	filterSource FilterSource,
	cache DatasetCache,
	currentStore CurrentDatasetStore,
) MapService {
	return &Service{
		visitSource:  visitSource,
		filterSource: filterSource,
		cache:        cache,
		currentStore: currentStore,
	}
}

// Resolve devolve o dataset da consulta. Em caso de falha ao gravar no cache o dataset
// calculado é devolvido junto com um erro ErrCacheWrite.
func (s *Service) Resolve(ctx context.Context, sig domain.QuerySignature) (*domain.ProcessedDataset, error) {
	if err := ValidateSignature(sig); err != nil {
		return nil, err
	}

	key := DeriveKey(sig)
	logger := log.ForContext(ctx).WithField("cache_key", key)

	if dataset, ok := s.lookup(ctx, key, logger); ok {
		return dataset, nil
	}

	// O cálculo não deve ser interrompido pelo cancelamento de quem chegou primeiro
	fillCtx := context.WithoutCancel(ctx)

	value, err, shared := s.fills.Do(key, func() (any, error) {
		// Outra chamada pode ter preenchido o cache enquanto esta aguardava
		if dataset, ok := s.lookup(fillCtx, key, logger); ok {
			return dataset, nil
		}
		return s.compute(fillCtx, key, sig, logger)
	})
	if shared {
		metrics.SharedComputations.Inc()
		logger.Debug("Resultado compartilhado com outra requisição para a mesma consulta")
	}

	dataset, _ := value.(*domain.ProcessedDataset)
	return dataset, err
}

func (s *Service) lookup(ctx context.Context, key string, logger log.Logger) (*domain.ProcessedDataset, bool) {
	dataset, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.RecordCacheLookup(metrics.CacheHit)
		logger.Debug("Dataset servido pelo cache")
		return dataset, true
	case errors.Is(err, domain.ErrCacheMiss):
		metrics.RecordCacheLookup(metrics.CacheMiss)
		logger.Debug("Dataset não encontrado no cache")
	default:
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.WithError(err).Warn("Erro ao ler o cache, o dataset será recalculado")
	}
	return nil, false
}

func (s *Service) compute(
	ctx context.Context,
	key string,
	sig domain.QuerySignature,
	logger log.Logger,
) (*domain.ProcessedDataset, error) {
	startTime := time.Now()

	rows, err := s.visitSource.FetchVisits(ctx, sig.Filters())
	if err != nil {
		metrics.RecordComputation(metrics.OriginQuery, time.Since(startTime), 0, err)
		logger.WithError(err).Error("Erro ao buscar visitas na origem")
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	result, err := processing.Process(rows)
	if err != nil {
		metrics.RecordComputation(metrics.OriginQuery, time.Since(startTime), 0, err)
		logger.WithError(err).Error("Erro ao processar visitas")
		return nil, err
	}

	metrics.RecordComputation(metrics.OriginQuery, time.Since(startTime), result.Dropped, nil)

	logger.Infof(
		"Dataset calculado em %s: %d pontos, %d linhas descartadas",
		time.Since(startTime), result.Dataset.Stats.TotalPoints, result.Dropped,
	)

	if err := s.cache.Put(ctx, key, result.Dataset); err != nil {
		logger.WithError(err).Error("Erro ao gravar dataset no cache")
		return result.Dataset, fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	return result.Dataset, nil
}

// ProcessUpload processa as linhas de um arquivo enviado e substitui o dataset atual
func (s *Service) ProcessUpload(ctx context.Context, rows *domain.RowSet) (*domain.ProcessedDataset, error) {
	logger := log.ForContext(ctx)
	startTime := time.Now()

	result, err := processing.Process(rows)
	if err != nil {
		metrics.RecordComputation(metrics.OriginUpload, time.Since(startTime), 0, err)
		logger.WithError(err).Warn("Arquivo rejeitado")
		return nil, err
	}

	metrics.RecordComputation(metrics.OriginUpload, time.Since(startTime), result.Dropped, nil)

	uploadID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("Erro ao gerar ID do upload")
	}

	current := &domain.CurrentDataset{
		UploadID:   uploadID,
		UploadedAt: time.Now().UTC(),
		Dataset:    result.Dataset,
	}

	s.currentMu.Lock()
	defer s.currentMu.Unlock()

	s.current = current

	logger.Infof("Upload %s processado: %d pontos, %d linhas descartadas",
		uploadID, result.Dataset.Stats.TotalPoints, result.Dropped)

	if err := s.currentStore.Save(ctx, current); err != nil {
		logger.WithError(err).Error("Erro ao persistir o dataset atual")
		return result.Dataset, fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	return result.Dataset, nil
}

// Current devolve o dataset atual, carregando do armazenamento na primeira leitura
func (s *Service) Current(ctx context.Context) (*domain.ProcessedDataset, error) {
	s.currentMu.RLock()
	current := s.current
	s.currentMu.RUnlock()

	if current != nil {
		return current.Dataset, nil
	}

	s.currentMu.Lock()
	defer s.currentMu.Unlock()

	if s.current != nil {
		return s.current.Dataset, nil
	}

	stored, err := s.currentStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar dataset atual: %w", err)
	}

	if stored == nil || stored.Dataset == nil {
		return nil, ErrNoData
	}

	s.current = stored
	return stored.Dataset, nil
}

// ClearCurrent descarta o dataset atual. Não mexe no cache de consultas.
func (s *Service) ClearCurrent(ctx context.Context) error {
	s.currentMu.Lock()
	defer s.currentMu.Unlock()

	s.current = nil

	if err := s.currentStore.Clear(ctx); err != nil {
		return fmt.Errorf("erro ao remover dataset atual: %w", err)
	}

	log.ForContext(ctx).Info("Dataset atual removido")
	return nil
}

// ClearCache remove todas as entradas do cache de consultas. Não mexe no dataset atual.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("erro ao limpar cache: %w", err)
	}

	log.ForContext(ctx).Info("Cache de consultas removido")
	return nil
}

// Filters lista as áreas e contas disponíveis para filtrar o mapa
func (s *Service) Filters(ctx context.Context) (*domain.FilterOptions, error) {
	areas, err := s.filterSource.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	accounts, err := s.filterSource.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return &domain.FilterOptions{
		Success:  true,
		Areas:    areas,
		Accounts: accounts,
	}, nil
}
