package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

const yearsAgg = `coalesce(array_agg(distinct s.year order by s.year desc) filter (where s.year is not null), '{}')`

func (s *store) ListEnabledModules(ctx context.Context) ([]*domain.ModuleWithYears, error) {
	query := builder().Select(
		"m.id", "m.name", "m.description", "m.icon", "m.color", "m.enabled",
		"m.created_at", "m.updated_at",
		yearsAgg+" as years_available").
		From(tableModules + " m").
		LeftJoin(tableSurveys + " s on m.id = s.module_id").
		Where(sq.Eq{"m.enabled": true}).
		GroupBy("m.id").
		OrderBy("m.id")

	selected, err := xpgx.Selectx[domain.ModuleWithYears](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SetModuleEnabled(ctx context.Context, moduleID string, enabled bool) error {
	query := builder().Update(tableModules).
		Set("enabled", enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": moduleID})

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

func (s *store) UpdateModuleDetails(ctx context.Context, moduleID, name, description string) error {
	query := builder().Update(tableModules).
		Set("name", name).
		Set("description", description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": moduleID})

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

func (s *store) ListModuleStatuses(ctx context.Context) ([]*domain.ModuleStatusRow, error) {
	query := builder().Select(
		"m.id", "m.name", "m.description", "m.enabled",
		"count(distinct s.id)::int as survey_count",
		yearsAgg+" as years").
		From(tableModules + " m").
		LeftJoin(tableSurveys + " s on m.id = s.module_id").
		GroupBy("m.id").
		OrderBy("m.id")

	selected, err := xpgx.Selectx[domain.ModuleStatusRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountModuleIndicators(ctx context.Context, moduleID string) (int, error) {
	query := builder().Select("count(distinct i.id)::int as count").
		From(tableModules + " m").
		LeftJoin(tableSurveys + " s on m.id = s.module_id").
		LeftJoin(tableCategories + " c on s.id = c.survey_id").
		LeftJoin(tableIndicators + " i on c.id = i.category_id").
		Where(sq.Eq{"m.id": moduleID})

	type countRow struct {
		Count int `db:"count"`
	}

	row, err := xpgx.Getx[countRow](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return row.Count, nil
}
