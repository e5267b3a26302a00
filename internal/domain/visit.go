// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Colunas reconhecidas na origem dos dados (CSV ou banco)
const (
	ColumnLongitude   = "longitude"
	ColumnLatitude    = "latitude"
	ColumnStoreID     = "store_id"
	ColumnStoreName   = "store_name"
	ColumnFullName    = "full_name"
	ColumnVisitDate   = "tanggal"
	ColumnAreaID      = "area_id"
	ColumnAreaName    = "area_name"
	ColumnAccountName = "account_name"
)

// RequiredColumns são as colunas sem as quais a ingestão não acontece
var RequiredColumns = []string{
	ColumnLongitude,
	ColumnLatitude,
	ColumnStoreID,
	ColumnStoreName,
	ColumnFullName,
	ColumnVisitDate,
}

// DateLayout é o formato das datas expostas na API (yyyy-mm-dd)
const DateLayout = "2006-01-02"

// RawRow é uma linha crua: nome da coluna -> valor original
type RawRow map[string]any

// RowSet agrupa o esquema (colunas) e as linhas de uma origem
type RowSet struct {
	Columns []string
	Rows    []RawRow
}

// HasColumn indica se a coluna faz parte do esquema
func (rs *RowSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// VisitRecord representa uma visita já normalizada
type VisitRecord struct {
	Longitude        float64
	Latitude         float64
	StoreID          string
	StoreName        string
	SurveyorFullName string
	VisitDate        time.Time
	AreaID           string
	AreaName         string
	AccountName      string
}
