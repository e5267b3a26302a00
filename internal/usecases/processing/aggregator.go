package processing

import (
	"sort"

	"github.com/vfg2006/visit-map-api/internal/domain"
)

// Ranking é o top de lojas por quantidade de visitas
type Ranking struct {
	Stores []domain.StoreRank
	top    map[string]struct{}
}

// IsTop indica se a loja está no ranking
func (r Ranking) IsTop(storeID string) bool {
	_, ok := r.top[storeID]
	return ok
}

// RankTopStores conta as visitas por loja e seleciona as TopStoresLimit mais visitadas.
// Empates mantêm a ordem da primeira aparição da loja na entrada. Registros sem
// store_id não concorrem ao ranking.
func RankTopStores(records []domain.VisitRecord) Ranking {
	counts := make(map[string]int)
	firstIndex := make(map[string]int)
	order := make([]string, 0)

	for i, record := range records {
		if record.StoreID == "" {
			continue
		}
		if _, seen := counts[record.StoreID]; !seen {
			firstIndex[record.StoreID] = i
			order = append(order, record.StoreID)
		}
		counts[record.StoreID]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	limit := min(domain.TopStoresLimit, len(order))

	ranking := Ranking{
		Stores: make([]domain.StoreRank, 0, limit),
		top:    make(map[string]struct{}, limit),
	}

	for position, storeID := range order[:limit] {
		// Os dados de exibição vêm do primeiro registro da loja
		first := records[firstIndex[storeID]]

		ranking.Stores = append(ranking.Stores, domain.StoreRank{
			StoreID:    storeID,
			StoreName:  first.StoreName,
			VisitCount: counts[storeID],
			ColorIndex: position,
			Color:      domain.TopStoreColors[position],
			Latitude:   first.Latitude,
			Longitude:  first.Longitude,
			AreaName:   first.AreaName,
			AreaID:     first.AreaID,
		})
		ranking.top[storeID] = struct{}{}
	}

	return ranking
}
