package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

var surveysColumns = []string{
	"id", "module_id", "year", "label", "description",
	"response_rate", "women_sample_size", "men_sample_size",
	"created_at", "updated_at",
}

func (s *store) GetSurvey(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error) {
	query := builder().Select(surveysColumns...).
		From(tableSurveys).
		Where(sq.And{
			sq.Eq{"module_id": moduleID},
			sq.Eq{"year": year},
		})

	selected, err := xpgx.Getx[domain.SurveyRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
