package domain

import "time"

// QuerySignature identifica uma consulta ao mapa. Filtros nulos significam "sem filtro".
type QuerySignature struct {
	StartDate time.Time
	EndDate   time.Time
	AreaID    *string
	AccountID *string
}

// VisitFilters são os filtros aplicados na consulta de visitas no banco
type VisitFilters struct {
	StartDate time.Time
	EndDate   time.Time
	AreaID    *string
	AccountID *string
}

func (s QuerySignature) Filters() VisitFilters {
	return VisitFilters{
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		AreaID:    s.AreaID,
		AccountID: s.AccountID,
	}
}

type AreaOption struct {
	AreaID   string `json:"area_id"`
	AreaName string `json:"area_name"`
}

type AccountOption struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

type FilterOptions struct {
	Success  bool            `json:"success"`
	Areas    []AreaOption    `json:"areas"`
	Accounts []AccountOption `json:"accounts"`
}
