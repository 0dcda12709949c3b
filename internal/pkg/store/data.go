package store

import (
	"context"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

// zoneOrder pins zonal rows to the fixed geopolitical zone ordering
// regardless of insertion order.
const zoneOrder = `case zone
	when 'North Central' then 1
	when 'North East' then 2
	when 'North West' then 3
	when 'South East' then 4
	when 'South South' then 5
	when 'South West' then 6
end`

func (s *store) ListZonalValues(ctx context.Context, indicatorID string) ([]*domain.ZonalValueRow, error) {
	query := builder().Select("indicator_id", "zone", "value").
		From(tableZonalData).
		Where(sq.Eq{"indicator_id": indicatorID}).
		OrderBy(zoneOrder)

	selected, err := xpgx.Selectx[domain.ZonalValueRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListStateValues(ctx context.Context, indicatorID string) ([]*domain.StateValueRow, error) {
	query := builder().Select("indicator_id", "state", "value").
		From(tableStateData).
		Where(sq.Eq{"indicator_id": indicatorID}).
		OrderBy("state")

	selected, err := xpgx.Selectx[domain.StateValueRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListTrendPoints(ctx context.Context, indicatorID string) ([]*domain.TrendPointRow, error) {
	query := builder().Select("id", "indicator_id", "year", "series_name", "value", "color", "display_order").
		From(tableTrendData).
		Where(sq.Eq{"indicator_id": indicatorID}).
		OrderBy("display_order asc", "year asc", "series_name")

	selected, err := xpgx.Selectx[domain.TrendPointRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) StateDataForIndicator(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) ([]*domain.StateValue, error) {
	query := builder().Select(`sd.state as "State"`, `sd.value as "Value"`).
		From(tableStateData + " sd").
		Join(tableIndicators + " i on sd.indicator_id = i.id").
		Join(tableCategories + " c on i.category_id = c.id").
		Join(tableSurveys + " s on c.survey_id = s.id").
		Where(sq.And{
			sq.Eq{"s.module_id": moduleID},
			sq.Eq{"s.year": year},
			sq.Eq{"c.key": categoryKey},
			sq.Eq{"i.key": indicatorKey},
		}).
		OrderBy("sd.state")

	selected, err := xpgx.Selectx[domain.StateValue](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertTrendValue(ctx context.Context, indicatorID string, year int, value float64) error {
	query := builder().Insert(tableTrendData).
		Columns("indicator_id", "year", "value").
		Values(indicatorID, strconv.Itoa(year), value).
		Suffix(`on conflict (indicator_id, year) do update set value = excluded.value`)

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

func (s *store) UpdateTrendValue(ctx context.Context, dataID string, value float64) error {
	query := builder().Update(tableTrendData).
		Set("value", value).
		Where(sq.Eq{"id": dataID})

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

func (s *store) UpsertZonalValue(ctx context.Context, indicatorID, zone string, value float64) error {
	query := builder().Insert(tableZonalData).
		Columns("indicator_id", "zone", "value").
		Values(indicatorID, zone, value).
		Suffix(`on conflict (indicator_id, zone) do update set value = excluded.value`)

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

func (s *store) UpsertStateValue(ctx context.Context, indicatorID, state string, value float64) error {
	query := builder().Insert(tableStateData).
		Columns("indicator_id", "state", "value").
		Values(indicatorID, state, value).
		Suffix(`on conflict (indicator_id, state) do update set value = excluded.value`)

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}
