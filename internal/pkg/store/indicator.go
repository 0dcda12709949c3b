package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

func (s *store) ListSurveyIndicators(ctx context.Context, surveyID string) ([]*domain.IndicatorCategoryRow, error) {
	query := builder().Select(
		"c.key as category_key",
		"c.title as category_title",
		"c.description as category_description",
		"i.id as indicator_id",
		"i.key as indicator_key",
		"i.title as indicator_title",
		"i.unit",
		"i.national_value",
		"i.color",
		"i.context",
		"i.analysis",
		"i.is_trend",
		"i.is_rate",
		"i.is_tfr",
		"i.display_order").
		From(tableCategories + " c").
		Join(tableIndicators + " i on c.id = i.category_id").
		Where(sq.Eq{"c.survey_id": surveyID}).
		OrderBy("c.display_order", "i.display_order")

	selected, err := xpgx.Selectx[domain.IndicatorCategoryRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) IndicatorExists(ctx context.Context, indicatorID string) (bool, error) {
	query := builder().Select("count(*)::int as count").
		From(tableIndicators).
		Where(sq.Eq{"id": indicatorID})

	type countRow struct {
		Count int `db:"count"`
	}

	row, err := xpgx.Getx[countRow](ctx, s.pool, query)
	if err != nil {
		return false, wrapErr(err)
	}

	return row.Count > 0, nil
}

func (s *store) GetIndicatorID(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error) {
	query := builder().Select("i.id").
		From(tableIndicators + " i").
		Join(tableCategories + " c on i.category_id = c.id").
		Join(tableSurveys + " s on c.survey_id = s.id").
		Where(sq.And{
			sq.Eq{"s.module_id": moduleID},
			sq.Eq{"s.year": year},
			sq.Eq{"c.key": categoryKey},
			sq.Eq{"i.key": indicatorKey},
		})

	type idRow struct {
		ID string `db:"id"`
	}

	row, err := xpgx.Getx[idRow](ctx, s.pool, query)
	if err != nil {
		return "", wrapErr(err)
	}

	return row.ID, nil
}
