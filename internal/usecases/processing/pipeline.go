package processing

import "github.com/vfg2006/visit-map-api/internal/domain"

// Result agrupa o dataset montado e a quantidade de linhas descartadas
type Result struct {
	Dataset *domain.ProcessedDataset
	Dropped int
}

// Process executa Normalize -> RankTopStores -> Assemble
func Process(rs *domain.RowSet) (*Result, error) {
	normalized, err := Normalize(rs)
	if err != nil {
		return nil, err
	}

	ranking := RankTopStores(normalized.Records)

	return &Result{
		Dataset: Assemble(normalized.Records, ranking),
		Dropped: normalized.Dropped,
	}, nil
}
