package survey

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/store/storetest"
)

func TestListModules(t *testing.T) {
	fake := &storetest.Fake{
		ListEnabledModulesFn: func(ctx context.Context) ([]*domain.ModuleWithYears, error) {
			return []*domain.ModuleWithYears{
				{
					ModuleRow:      domain.ModuleRow{ID: "m1", Name: "Fertility", Icon: "chart"},
					YearsAvailable: []string{"2018", "2013"},
				},
				{
					ModuleRow: domain.ModuleRow{ID: "m2", Name: "Nutrition"},
				},
			}, nil
		},
	}

	modules, err := NewService(fake).ListModules(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 2)

	assert.Equal(t, []string{"2018", "2013"}, modules[0].YearsAvailable)

	// A module with no surveys still serializes yearsAvailable as [].
	require.NotNil(t, modules[1].YearsAvailable)
	assert.Empty(t, modules[1].YearsAvailable)
}

func TestGetModuleYearDataNoSurvey(t *testing.T) {
	fake := &storetest.Fake{
		GetSurveyFn: func(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error) {
			return nil, constants.ErrDBNotFound
		},
	}

	data, err := NewService(fake).GetModuleYearData(context.Background(), "m1", "2018")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGetModuleYearDataStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	fake := &storetest.Fake{
		GetSurveyFn: func(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error) {
			return nil, boom
		},
	}

	_, err := NewService(fake).GetModuleYearData(context.Background(), "m1", "2018")
	require.ErrorIs(t, err, boom)
}

func TestGetModuleYearData(t *testing.T) {
	national := 5.3
	fake := &storetest.Fake{
		GetSurveyFn: func(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error) {
			require.Equal(t, "m1", moduleID)
			require.Equal(t, "2018", year)
			return &domain.SurveyRow{
				ID:              "s1",
				Label:           "NDHS 2018",
				Description:     "2018 demographic and health survey",
				ResponseRate:    99.1,
				WomenSampleSize: 41821,
				MenSampleSize:   13311,
			}, nil
		},
		ListSurveyIndicatorsFn: func(ctx context.Context, surveyID string) ([]*domain.IndicatorCategoryRow, error) {
			require.Equal(t, "s1", surveyID)
			return []*domain.IndicatorCategoryRow{
				{
					CategoryKey:    "fertility",
					CategoryTitle:  "Fertility",
					IndicatorID:    "i1",
					IndicatorKey:   "tfr",
					IndicatorTitle: "Total Fertility Rate",
					NationalValue:  &national,
					Context:        "Births per woman",
					IsTrend:        true,
					IsTFR:          true,
				},
				{
					CategoryKey:    "fertility",
					CategoryTitle:  "Fertility",
					IndicatorID:    "i2",
					IndicatorKey:   "teenage_pregnancy",
					IndicatorTitle: "Teenage Pregnancy",
				},
				{
					CategoryKey:    "nutrition",
					CategoryTitle:  "Nutrition",
					IndicatorID:    "i3",
					IndicatorKey:   "stunting",
					IndicatorTitle: "Stunting",
				},
			}, nil
		},
		ListZonalValuesFn: func(ctx context.Context, indicatorID string) ([]*domain.ZonalValueRow, error) {
			if indicatorID != "i3" {
				return nil, nil
			}
			rows := make([]*domain.ZonalValueRow, 0, 6)
			for _, v := range []float64{22.3, 41.1, 45.7, 18.2, 19.9, 16.8} {
				rows = append(rows, &domain.ZonalValueRow{IndicatorID: "i3", Value: v})
			}
			return rows, nil
		},
		ListStateValuesFn: func(ctx context.Context, indicatorID string) ([]*domain.StateValueRow, error) {
			if indicatorID != "i3" {
				return nil, nil
			}
			return []*domain.StateValueRow{
				{IndicatorID: "i3", State: "Lagos", Value: 16.1},
				{IndicatorID: "i3", State: "Kano", Value: 48.9},
			}, nil
		},
		ListTrendPointsFn: func(ctx context.Context, indicatorID string) ([]*domain.TrendPointRow, error) {
			require.Equal(t, "i1", indicatorID, "only trend indicators fetch points")
			return []*domain.TrendPointRow{
				{Year: "2013", SeriesName: "National", Value: 5.5},
				{Year: "2018", SeriesName: "National", Value: 5.3},
			}, nil
		},
	}

	data, err := NewService(fake).GetModuleYearData(context.Background(), "m1", "2018")
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "NDHS 2018", data.Label)
	assert.Equal(t, 99.1, data.Stats.Response)
	assert.Equal(t, 41821, data.Stats.Women)

	require.Len(t, data.Indicators, 2)
	fertility := data.Indicators["fertility"]
	require.NotNil(t, fertility)
	require.Len(t, fertility.Items, 2)

	tfr := fertility.Items["tfr"]
	require.NotNil(t, tfr)
	assert.True(t, tfr.IsTFR)
	require.NotNil(t, tfr.Val)
	assert.Equal(t, 5.3, *tfr.Val)
	assert.Equal(t, []string{"2013", "2018"}, tfr.Labels)
	require.Len(t, tfr.Datasets, 1)
	assert.Equal(t, "Births per woman", tfr.Desc)
	assert.Nil(t, tfr.Zonal)
	assert.Nil(t, tfr.State)

	// Indicator with no regional rows carries no optional fields.
	teen := fertility.Items["teenage_pregnancy"]
	require.NotNil(t, teen)
	assert.Nil(t, teen.Zonal)
	assert.Nil(t, teen.State)
	assert.Nil(t, teen.Labels)
	assert.Nil(t, teen.Datasets)

	stunting := data.Indicators["nutrition"].Items["stunting"]
	require.NotNil(t, stunting)
	assert.Len(t, stunting.Zonal, 6)
	assert.Equal(t, map[string]float64{"Lagos": 16.1, "Kano": 48.9}, stunting.State)
}

func TestPlatformStats(t *testing.T) {
	counts := map[string]int64{
		"modules":    4,
		"surveys":    8,
		"categories": 30,
		"indicators": 120,
		"trend_data": 900,
		"state_data": 400,
		"zonal_data": 60,
	}

	var mu sync.Mutex
	seen := make(map[string]int)

	fake := &storetest.Fake{
		CountFn: func(ctx context.Context, table string) (int64, error) {
			mu.Lock()
			seen[table]++
			mu.Unlock()

			n, ok := counts[table]
			if !ok {
				return 0, errors.New("unknown table " + table)
			}
			return n, nil
		},
	}

	stats, err := NewService(fake).PlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Modules)
	assert.Equal(t, int64(8), stats.Surveys)
	assert.Equal(t, int64(30), stats.Categories)
	assert.Equal(t, int64(120), stats.Indicators)
	assert.Equal(t, int64(900), stats.DataPoints)
	assert.Equal(t, int64(400), stats.StateData)
	assert.Equal(t, int64(60), stats.ZonalData)

	assert.Len(t, seen, 7, "every table counted exactly once")
}

func TestPlatformStatsError(t *testing.T) {
	fake := &storetest.Fake{
		CountFn: func(ctx context.Context, table string) (int64, error) {
			return 0, errors.New("count failed")
		},
	}

	_, err := NewService(fake).PlatformStats(context.Background())
	require.Error(t, err)
}
