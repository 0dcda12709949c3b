package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

func (s *store) ListEmptyCategories(ctx context.Context) ([]*domain.EmptyCategoryRow, error) {
	query := builder().Select("c.id", "c.title", "s.label as survey").
		From(tableCategories + " c").
		Join(tableSurveys + " s on c.survey_id = s.id").
		LeftJoin(tableIndicators + " i on c.id = i.category_id").
		Where("i.id is null")

	selected, err := xpgx.Selectx[domain.EmptyCategoryRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListSurveysWithoutIndicators(ctx context.Context) ([]*domain.SurveyWithoutIndicatorsRow, error) {
	query := builder().Select(
		"s.id",
		"s.label as name",
		"s.year",
		"count(distinct c.id)::int as category_count").
		From(tableSurveys + " s").
		LeftJoin(tableCategories + " c on s.id = c.survey_id").
		LeftJoin(tableIndicators + " i on c.id = i.category_id").
		GroupBy("s.id", "s.label", "s.year").
		Having("count(i.id) = 0")

	selected, err := xpgx.Selectx[domain.SurveyWithoutIndicatorsRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DeleteEmptyCategories(ctx context.Context) (int64, error) {
	query := builder().Delete(tableCategories).
		Where(sq.Expr(`id in (
			select c.id from ` + tableCategories + ` c
			left join ` + tableIndicators + ` i on c.id = i.category_id
			where i.id is null
		)`))

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return tag.RowsAffected(), nil
}
