package store

import (
	"context"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ApplySchema(ctx context.Context) error

	// Modules.
	ListEnabledModules(ctx context.Context) ([]*domain.ModuleWithYears, error)
	SetModuleEnabled(ctx context.Context, moduleID string, enabled bool) error
	UpdateModuleDetails(ctx context.Context, moduleID, name, description string) error
	ListModuleStatuses(ctx context.Context) ([]*domain.ModuleStatusRow, error)
	CountModuleIndicators(ctx context.Context, moduleID string) (int, error)

	// Surveys and indicators.
	GetSurvey(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error)
	ListSurveyIndicators(ctx context.Context, surveyID string) ([]*domain.IndicatorCategoryRow, error)
	IndicatorExists(ctx context.Context, indicatorID string) (bool, error)
	GetIndicatorID(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error)

	// Data rows.
	ListZonalValues(ctx context.Context, indicatorID string) ([]*domain.ZonalValueRow, error)
	ListStateValues(ctx context.Context, indicatorID string) ([]*domain.StateValueRow, error)
	ListTrendPoints(ctx context.Context, indicatorID string) ([]*domain.TrendPointRow, error)
	StateDataForIndicator(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) ([]*domain.StateValue, error)
	UpsertTrendValue(ctx context.Context, indicatorID string, year int, value float64) error
	UpdateTrendValue(ctx context.Context, dataID string, value float64) error
	UpsertZonalValue(ctx context.Context, indicatorID, zone string, value float64) error
	UpsertStateValue(ctx context.Context, indicatorID, state string, value float64) error

	// Counts, exports, audit.
	Count(ctx context.Context, table string) (int64, error)
	ListIndicatorExportRows(ctx context.Context) ([]*domain.IndicatorExportRow, error)
	ListTrendExportRows(ctx context.Context) ([]*domain.TrendExportRow, error)
	ListEmptyCategories(ctx context.Context) ([]*domain.EmptyCategoryRow, error)
	ListSurveysWithoutIndicators(ctx context.Context) ([]*domain.SurveyWithoutIndicatorsRow, error)
	DeleteEmptyCategories(ctx context.Context) (int64, error)
}

// Table name accessors for callers that count rows.
const (
	TableModules    = tableModules
	TableSurveys    = tableSurveys
	TableCategories = tableCategories
	TableIndicators = tableIndicators
	TableTrendData  = tableTrendData
	TableZonalData  = tableZonalData
	TableStateData  = tableStateData
)

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
