// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/visit-map-api/infrastructure/database/postgres"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

const (
	storeVisitTable = "store_visit sv"
)

type VisitRepository interface {
	FetchVisits(ctx context.Context, filters domain.VisitFilters) (*domain.RowSet, error)
}

type visitRepository struct {
	conn postgres.Queryer
}

func NewVisitRepository(conn postgres.Queryer) VisitRepository {
	return &visitRepository{
		conn: conn,
	}
}

// buildVisitQuery monta a consulta de visitas. As colunas usam os mesmos nomes do CSV de upload.
func buildVisitQuery(filters domain.VisitFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(
			"sv.longitude",
			"sv.latitude",
			"s.store_id",
			"s.store_name",
			"u.full_name",
			"sv.visit_date AS tanggal",
			"sa.area_id",
			"sa.area_name",
			"sac.account_name",
		).
		From(storeVisitTable).
		Join("store s ON s.store_id = sv.store_id").
		Join("surveyor u ON u.surveyor_id = sv.surveyor_id").
		LeftJoin("store_area sa ON sa.area_id = s.area_id").
		LeftJoin("store_account sac ON sac.account_id = s.account_id").
		Where(squirrel.Expr(
			"sv.visit_date BETWEEN ? AND ?",
			filters.StartDate.Format(domain.DateLayout),
			filters.EndDate.Format(domain.DateLayout),
		))

	if filters.AreaID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.area_id": *filters.AreaID})
	}

	if filters.AccountID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.account_id": *filters.AccountID})
	}

	return queryBuilder.
		OrderBy("sv.visit_date ASC", "sv.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *visitRepository) FetchVisits(ctx context.Context, filters domain.VisitFilters) (*domain.RowSet, error) {
	sqlQuery, args, err := buildVisitQuery(filters).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de visitas")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de visitas")
	}
	defer rows.Close()

	rowSet, err := scanRowSet(rows)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear visitas")
	}

	return rowSet, nil
}

// scanRowSet lê as linhas mantendo os valores como o driver entrega
func scanRowSet(rows *sql.Rows) (*domain.RowSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rowSet := &domain.RowSet{
		Columns: columns,
		Rows:    make([]domain.RawRow, 0),
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(domain.RawRow, len(columns))
		for i, column := range columns {
			row[column] = values[i]
		}
		rowSet.Rows = append(rowSet.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rowSet, nil
}
