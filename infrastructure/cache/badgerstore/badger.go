// Package badgerstore contém os armazenamentos de datasets sobre BadgerDB
package badgerstore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visit-map-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Prefixos das chaves. Cada camada é limpa de forma independente.
const (
	datasetKeyPrefix  = "dataset:"
	currentDatasetKey = "current_dataset"
)

// Open abre o BadgerDB conforme a configuração do cache
func Open(cfg config.Cache) (*badger.DB, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}

	opts = opts.WithLogger(logrus.WithField("component", "badger"))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return db, nil
}

// Maintainer executa a coleta de lixo do value log
type Maintainer struct {
	db           *badger.DB
	discardRatio float64
}

func NewMaintainer(db *badger.DB, discardRatio float64) *Maintainer {
	return &Maintainer{db: db, discardRatio: discardRatio}
}

// CollectGarbage roda o GC até não haver mais arquivos para reescrever e devolve
// quantos arquivos foram reescritos
func (m *Maintainer) CollectGarbage() (int, error) {
	rewritten := 0
	for {
		err := m.db.RunValueLogGC(m.discardRatio)
		switch {
		case err == nil:
			rewritten++
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return rewritten, nil
		default:
			return rewritten, fmt.Errorf("value log gc: %w", err)
		}
	}
}
