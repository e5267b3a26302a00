package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

// DatasetCache guarda um dataset por chave de consulta, uma entrada por chave
type DatasetCache struct {
	db  *badger.DB
	ttl time.Duration
}

// NewDatasetCache cria o cache. ttl <= 0 mantém as entradas até a limpeza explícita.
func NewDatasetCache(db *badger.DB, ttl time.Duration) *DatasetCache {
	return &DatasetCache{db: db, ttl: ttl}
}

func (c *DatasetCache) Get(ctx context.Context, key string) (*domain.ProcessedDataset, error) {
	var data []byte

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(datasetKeyPrefix + key))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	var dataset domain.ProcessedDataset
	if err := json.Unmarshal(data, &dataset); err != nil || !dataset.Success {
		logrus.WithError(err).WithField("cache_key", key).Warn("Entrada do cache inválida, tratada como ausente")
		return nil, domain.ErrCacheMiss
	}

	return &dataset, nil
}

// Put grava o dataset numa única transação, sem escrita parcial visível
func (c *DatasetCache) Put(ctx context.Context, key string, dataset *domain.ProcessedDataset) error {
	data, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(datasetKeyPrefix+key), data)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Clear remove todas as entradas do cache de consultas
func (c *DatasetCache) Clear(ctx context.Context) error {
	if err := c.db.DropPrefix([]byte(datasetKeyPrefix)); err != nil {
		return fmt.Errorf("drop datasets: %w", err)
	}
	return nil
}
