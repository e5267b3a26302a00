package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

// CurrentDatasetStore guarda o dataset do último upload numa chave fixa
type CurrentDatasetStore struct {
	db *badger.DB
}

func NewCurrentDatasetStore(db *badger.DB) *CurrentDatasetStore {
	return &CurrentDatasetStore{db: db}
}

// Load devolve nil, nil quando não há dataset gravado ou quando o conteúdo está corrompido
func (s *CurrentDatasetStore) Load(ctx context.Context) (*domain.CurrentDataset, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(currentDatasetKey))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load current dataset: %w", err)
	}

	var current domain.CurrentDataset
	if err := json.Unmarshal(data, &current); err != nil || current.Dataset == nil {
		logrus.WithError(err).Warn("Dataset atual gravado está inválido, ignorando")
		return nil, nil
	}

	return &current, nil
}

func (s *CurrentDatasetStore) Save(ctx context.Context, current *domain.CurrentDataset) error {
	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal current dataset: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(currentDatasetKey), data)
	})
}

func (s *CurrentDatasetStore) Clear(ctx context.Context) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(currentDatasetKey))
	})
	if err != nil {
		return fmt.Errorf("delete current dataset: %w", err)
	}

	logrus.Debug("Dataset atual removido do armazenamento")
	return nil
}
