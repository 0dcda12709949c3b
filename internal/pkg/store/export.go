package store

import (
	"context"
	"fmt"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

var countableTables = map[string]bool{
	tableModules:    true,
	tableSurveys:    true,
	tableCategories: true,
	tableIndicators: true,
	tableTrendData:  true,
	tableZonalData:  true,
	tableStateData:  true,
}

func (s *store) Count(ctx context.Context, table string) (int64, error) {
	if !countableTables[table] {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	query := builder().Select("count(*) as count").From(table)
	if table == tableModules {
		query = query.Where("enabled = true")
	}

	type countRow struct {
		Count int64 `db:"count"`
	}

	row, err := xpgx.Getx[countRow](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return row.Count, nil
}

func (s *store) ListIndicatorExportRows(ctx context.Context) ([]*domain.IndicatorExportRow, error) {
	query := builder().Select(
		"i.id",
		"i.title as indicator",
		"c.title as category",
		"s.label as survey",
		"s.year",
		"m.name as module").
		From(tableIndicators + " i").
		Join(tableCategories + " c on i.category_id = c.id").
		Join(tableSurveys + " s on c.survey_id = s.id").
		Join(tableModules + " m on s.module_id = m.id").
		OrderBy("m.name", "s.year desc", "c.title", "i.title")

	selected, err := xpgx.Selectx[domain.IndicatorExportRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListTrendExportRows(ctx context.Context) ([]*domain.TrendExportRow, error) {
	query := builder().Select(
		"m.name as module",
		"s.label as survey",
		"s.year as survey_year",
		"c.title as category",
		"i.title as indicator",
		"td.year as data_year",
		"td.value",
		"coalesce(nullif(td.location, ''), 'National') as location").
		From(tableTrendData + " td").
		Join(tableIndicators + " i on td.indicator_id = i.id").
		Join(tableCategories + " c on i.category_id = c.id").
		Join(tableSurveys + " s on c.survey_id = s.id").
		Join(tableModules + " m on s.module_id = m.id").
		OrderBy("m.name", "s.year desc", "c.title", "i.title", "td.year")

	selected, err := xpgx.Selectx[domain.TrendExportRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
