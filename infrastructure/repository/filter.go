package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/visit-map-api/infrastructure/database/postgres"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

// Registros com id 1 são os placeholders "sem área" e "sem conta" do cadastro
const placeholderID = 1

type FilterRepository interface {
	ListAreas(ctx context.Context) ([]domain.AreaOption, error)
	ListAccounts(ctx context.Context) ([]domain.AccountOption, error)
}

type filterRepository struct {
	conn postgres.Queryer
}

func NewFilterRepository(conn postgres.Queryer) FilterRepository {
	return &filterRepository{
		conn: conn,
	}
}

func (r *filterRepository) ListAreas(ctx context.Context) ([]domain.AreaOption, error) {
	query, args, err := squirrel.
		Select("sa.area_id", "sa.area_name").
		From("store_area sa").
		Where(squirrel.NotEq{"sa.area_id": placeholderID}).
		OrderBy("sa.area_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de áreas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de áreas")
	}
	defer rows.Close()

	areas := make([]domain.AreaOption, 0)
	for rows.Next() {
		var area domain.AreaOption
		if err := rows.Scan(&area.AreaID, &area.AreaName); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear área")
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de áreas")
	}

	return areas, nil
}

func (r *filterRepository) ListAccounts(ctx context.Context) ([]domain.AccountOption, error) {
	query, args, err := squirrel.
		Select("sac.account_id", "sac.account_name").
		From("store_account sac").
		Where(squirrel.NotEq{"sac.account_id": placeholderID}).
		Where(squirrel.Eq{"sac.is_active": true}).
		OrderBy("sac.account_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de contas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de contas")
	}
	defer rows.Close()

	accounts := make([]domain.AccountOption, 0)
	for rows.Next() {
		var account domain.AccountOption
		if err := rows.Scan(&account.AccountID, &account.AccountName); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear conta")
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de contas")
	}

	return accounts, nil
}
