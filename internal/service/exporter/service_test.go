package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/storetest"
)

func parseCSV(t *testing.T, body []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportIndicators(t *testing.T) {
	fake := &storetest.Fake{
		ListIndicatorExportRowsFn: func(ctx context.Context) ([]*domain.IndicatorExportRow, error) {
			return []*domain.IndicatorExportRow{
				{ID: "i1", Indicator: "Total Fertility Rate", Category: "Fertility", Survey: "NDHS 2018", Year: "2018", Module: "Fertility & Family Planning"},
				{ID: "i2", Indicator: "Stunting", Category: "Nutrition", Survey: "NDHS 2018", Year: "2018", Module: "Child Health"},
			}, nil
		},
	}

	export, err := NewService(fake).ExportIndicators(context.Background())
	require.NoError(t, err)

	wantName := fmt.Sprintf("indicators-export-%s.csv", time.Now().UTC().Format("2006-01-02"))
	assert.Equal(t, wantName, export.Filename)

	records := parseCSV(t, export.Body)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Indicator", "Category", "Survey", "Year", "Module"}, records[0])
	assert.Equal(t, []string{"i1", "Total Fertility Rate", "Fertility", "NDHS 2018", "2018", "Fertility & Family Planning"}, records[1])
}

func TestExportIndicatorsEmpty(t *testing.T) {
	fake := &storetest.Fake{
		ListIndicatorExportRowsFn: func(ctx context.Context) ([]*domain.IndicatorExportRow, error) {
			return nil, nil
		},
	}

	export, err := NewService(fake).ExportIndicators(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, export.Body)
	require.Len(t, records, 1, "header only")
}

func TestExportTrendData(t *testing.T) {
	fake := &storetest.Fake{
		ListTrendExportRowsFn: func(ctx context.Context) ([]*domain.TrendExportRow, error) {
			return []*domain.TrendExportRow{
				{
					Module: "Fertility & Family Planning", Survey: "NDHS 2018", SurveyYear: "2018",
					Category: "Fertility", Indicator: "Total Fertility Rate",
					DataYear: "2013", Value: 5.5, Location: "National",
				},
				{
					Module: "Fertility & Family Planning", Survey: "NDHS 2018", SurveyYear: "2018",
					Category: "Fertility", Indicator: "Total Fertility Rate",
					DataYear: "2018", Value: 5.3, Location: "Lagos",
				},
			}, nil
		},
	}

	export, err := NewService(fake).ExportTrendData(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(export.Filename, "trend-data-export-"))
	assert.True(t, strings.HasSuffix(export.Filename, ".csv"))

	records := parseCSV(t, export.Body)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Module", "Survey", "Survey Year", "Category", "Indicator", "Data Year", "Value", "Location"}, records[0])
	assert.Equal(t, "5.5", records[1][6])
	assert.Equal(t, "Lagos", records[2][7])
}
