package processing

import (
	"github.com/golang/geo/s2"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

// Assemble monta o dataset final a partir dos registros normalizados e do ranking
func Assemble(records []domain.VisitRecord, ranking Ranking) *domain.ProcessedDataset {
	dataset := &domain.ProcessedDataset{
		Success:     true,
		Coordinates: make([]domain.Coordinate, 0, len(records)),
		TopStores:   make([]domain.StoreRank, 0, len(ranking.Stores)),
		Areas:       make([]domain.AreaSummary, 0),
	}

	dataset.TopStores = append(dataset.TopStores, ranking.Stores...)

	stores := make(map[string]struct{})
	seenAreas := make(map[string]struct{})

	for _, record := range records {
		dataset.Coordinates = append(dataset.Coordinates, domain.Coordinate{
			Longitude:   record.Longitude,
			Latitude:    record.Latitude,
			StoreName:   record.StoreName,
			StoreID:     record.StoreID,
			FullName:    record.SurveyorFullName,
			VisitDate:   record.VisitDate.Format(domain.DateLayout),
			AreaName:    record.AreaName,
			AreaID:      record.AreaID,
			AccountName: record.AccountName,
			IsTop5:      ranking.IsTop(record.StoreID),
		})

		if record.StoreID != "" {
			stores[record.StoreID] = struct{}{}
		}

		// Área sem id não entra na lista de filtros
		if record.AreaID == "" {
			continue
		}
		if _, ok := seenAreas[record.AreaID]; !ok {
			seenAreas[record.AreaID] = struct{}{}
			dataset.Areas = append(dataset.Areas, domain.AreaSummary{
				AreaID:   record.AreaID,
				AreaName: record.AreaName,
			})
		}
	}

	dataset.Stats = domain.DatasetStats{
		TotalPoints: len(dataset.Coordinates),
		TotalStores: len(stores),
		TotalAreas:  len(dataset.Areas),
		DateRange:   dateRange(records),
		Bounds:      bounds(records),
	}

	return dataset
}

// dateRange compara as datas já convertidas, nunca as strings originais
func dateRange(records []domain.VisitRecord) domain.DateRange {
	if len(records) == 0 {
		return domain.DateRange{Start: domain.DateRangeUnavailable, End: domain.DateRangeUnavailable}
	}

	start, end := records[0].VisitDate, records[0].VisitDate
	for _, record := range records[1:] {
		if record.VisitDate.Before(start) {
			start = record.VisitDate
		}
		if record.VisitDate.After(end) {
			end = record.VisitDate
		}
	}

	return domain.DateRange{
		Start: start.Format(domain.DateLayout),
		End:   end.Format(domain.DateLayout),
	}
}

// bounds assume coordenadas já validadas pelo Normalize
func bounds(records []domain.VisitRecord) *domain.Bounds {
	rect := s2.EmptyRect()
	for _, record := range records {
		rect = rect.AddPoint(s2.LatLngFromDegrees(record.Latitude, record.Longitude))
	}

	if rect.IsEmpty() {
		return nil
	}

	center := rect.Center()

	return &domain.Bounds{
		North:     rect.Hi().Lat.Degrees(),
		South:     rect.Lo().Lat.Degrees(),
		East:      rect.Hi().Lng.Degrees(),
		West:      rect.Lo().Lng.Degrees(),
		CenterLat: center.Lat.Degrees(),
		CenterLng: center.Lng.Degrees(),
	}
}
