// Package processing transforma linhas cruas de visitas no dataset servido ao mapa.
// Todas as funções são puras: não guardam estado e não fazem I/O.
package processing

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

// Normalized é o resultado da normalização. Dropped conta as linhas descartadas
// por coordenadas inválidas.
type Normalized struct {
	Records []domain.VisitRecord
	Dropped int
}

// Normalize valida o esquema e converte as linhas em VisitRecord.
//
// Linhas com longitude ou latitude não numéricas ou fora do globo são descartadas
// em silêncio e contabilizadas em Dropped. Uma data de visita inválida aborta toda a ingestão.
func Normalize(rs *domain.RowSet) (*Normalized, error) {
	if rs == nil {
		rs = &domain.RowSet{}
	}

	var missing []string
	for _, column := range domain.RequiredColumns {
		if !rs.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	result := &Normalized{
		Records: make([]domain.VisitRecord, 0, len(rs.Rows)),
	}

	for i, row := range rs.Rows {
		longitude, okLng := toCoordinate(row[domain.ColumnLongitude], maxLongitude)
		latitude, okLat := toCoordinate(row[domain.ColumnLatitude], maxLatitude)
		if !okLng || !okLat {
			result.Dropped++
			continue
		}

		visitDate, err := toVisitDate(row[domain.ColumnVisitDate])
		if err != nil {
			return nil, &DateParseError{Row: i, Value: row[domain.ColumnVisitDate], Err: err}
		}

		result.Records = append(result.Records, domain.VisitRecord{
			Longitude:        longitude,
			Latitude:         latitude,
			StoreID:          toText(row[domain.ColumnStoreID]),
			StoreName:        toText(row[domain.ColumnStoreName]),
			SurveyorFullName: toText(row[domain.ColumnFullName]),
			VisitDate:        visitDate,
			AreaID:           toText(row[domain.ColumnAreaID]),
			AreaName:         toText(row[domain.ColumnAreaName]),
			AccountName:      toText(row[domain.ColumnAccountName]),
		})
	}

	return result, nil
}

// O driver do Postgres entrega NUMERIC e TEXT como []byte
func unwrap(value any) any {
	switch v := value.(type) {
	case []byte:
		return strings.TrimSpace(string(v))
	case string:
		return strings.TrimSpace(v)
	default:
		return v
	}
}

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// toCoordinate aceita apenas valores finitos dentro de [-limit, limit]
func toCoordinate(value any, limit float64) (float64, bool) {
	value = unwrap(value)
	if value == nil || value == "" {
		return 0, false
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.Abs(f) > limit {
		return 0, false
	}

	return f, true
}

// toText converte ids numéricos ou textuais para string, mantendo o agrupamento estável
func toText(value any) string {
	value = unwrap(value)
	if value == nil {
		return ""
	}

	return cast.ToString(value)
}

// spreadsheetDateLayouts cobre as datas exportadas por planilhas, que o cast não reconhece.
// Datas com barra seguem a ordem mês/dia.
var spreadsheetDateLayouts = []string{
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04",
}

func toVisitDate(value any) (time.Time, error) {
	value = unwrap(value)

	t, err := cast.ToTimeInDefaultLocationE(value, time.UTC)
	if err != nil {
		text, ok := value.(string)
		if !ok {
			return time.Time{}, err
		}

		var parsed bool
		for _, layout := range spreadsheetDateLayouts {
			if candidate, layoutErr := time.ParseInLocation(layout, text, time.UTC); layoutErr == nil {
				t, parsed = candidate, true
				break
			}
		}
		if !parsed {
			return time.Time{}, err
		}
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
