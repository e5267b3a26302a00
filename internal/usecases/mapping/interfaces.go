package mapping

import (
	"context"

	"github.com/vfg2006/visit-map-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// VisitSource define a origem das visitas filtradas no servidor
type VisitSource interface {
	// FetchVisits busca as linhas cruas de visitas que atendem aos filtros
	FetchVisits(ctx context.Context, filters domain.VisitFilters) (*domain.RowSet, error)
}

// FilterSource lista as opções disponíveis para os filtros do mapa
type FilterSource interface {
	ListAreas(ctx context.Context) ([]domain.AreaOption, error)
	ListAccounts(ctx context.Context) ([]domain.AccountOption, error)
}

// DatasetCache guarda datasets já calculados pela chave derivada da assinatura
type DatasetCache interface {
	// Get retorna domain.ErrCacheMiss quando a chave não existe ou o conteúdo está corrompido
	Get(ctx context.Context, key string) (*domain.ProcessedDataset, error)
	Put(ctx context.Context, key string, dataset *domain.ProcessedDataset) error
	Clear(ctx context.Context) error
}

// CurrentDatasetStore guarda o dataset do último upload de arquivo
type CurrentDatasetStore interface {
	// Load retorna nil, nil quando não há dataset gravado
	Load(ctx context.Context) (*domain.CurrentDataset, error)
	Save(ctx context.Context, current *domain.CurrentDataset) error
	Clear(ctx context.Context) error
}

// MapService é a interface completa do motor de ingestão do mapa
type MapService interface {
	// Resolve devolve o dataset da consulta, usando o cache quando possível
	Resolve(ctx context.Context, sig domain.QuerySignature) (*domain.ProcessedDataset, error)

	// ProcessUpload processa as linhas de um arquivo e as define como dataset atual
	ProcessUpload(ctx context.Context, rows *domain.RowSet) (*domain.ProcessedDataset, error)

	// Current devolve o dataset atual (último upload)
	Current(ctx context.Context) (*domain.ProcessedDataset, error)

	// ClearCurrent descarta o dataset atual, em memória e persistido
	ClearCurrent(ctx context.Context) error

	// ClearCache remove todas as entradas do cache de consultas
	ClearCache(ctx context.Context) error

	// Filters lista as áreas e contas disponíveis para filtro
	Filters(ctx context.Context) (*domain.FilterOptions, error)
}
