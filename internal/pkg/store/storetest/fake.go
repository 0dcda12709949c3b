// Package storetest provides a function-field fake of store.Store for
// service and handler tests. Unset methods fail loudly.
package storetest

import (
	"context"
	"fmt"

	"github.com/niepng/niep-backend/internal/domain"
)

type Fake struct {
	ApplySchemaFn                  func(ctx context.Context) error
	ListEnabledModulesFn           func(ctx context.Context) ([]*domain.ModuleWithYears, error)
	SetModuleEnabledFn             func(ctx context.Context, moduleID string, enabled bool) error
	UpdateModuleDetailsFn          func(ctx context.Context, moduleID, name, description string) error
	ListModuleStatusesFn           func(ctx context.Context) ([]*domain.ModuleStatusRow, error)
	CountModuleIndicatorsFn        func(ctx context.Context, moduleID string) (int, error)
	GetSurveyFn                    func(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error)
	ListSurveyIndicatorsFn         func(ctx context.Context, surveyID string) ([]*domain.IndicatorCategoryRow, error)
	IndicatorExistsFn              func(ctx context.Context, indicatorID string) (bool, error)
	GetIndicatorIDFn               func(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error)
	ListZonalValuesFn              func(ctx context.Context, indicatorID string) ([]*domain.ZonalValueRow, error)
	ListStateValuesFn              func(ctx context.Context, indicatorID string) ([]*domain.StateValueRow, error)
	ListTrendPointsFn              func(ctx context.Context, indicatorID string) ([]*domain.TrendPointRow, error)
	StateDataForIndicatorFn        func(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) ([]*domain.StateValue, error)
	UpsertTrendValueFn             func(ctx context.Context, indicatorID string, year int, value float64) error
	UpdateTrendValueFn             func(ctx context.Context, dataID string, value float64) error
	UpsertZonalValueFn             func(ctx context.Context, indicatorID, zone string, value float64) error
	UpsertStateValueFn             func(ctx context.Context, indicatorID, state string, value float64) error
	CountFn                        func(ctx context.Context, table string) (int64, error)
	ListIndicatorExportRowsFn      func(ctx context.Context) ([]*domain.IndicatorExportRow, error)
	ListTrendExportRowsFn          func(ctx context.Context) ([]*domain.TrendExportRow, error)
	ListEmptyCategoriesFn          func(ctx context.Context) ([]*domain.EmptyCategoryRow, error)
	ListSurveysWithoutIndicatorsFn func(ctx context.Context) ([]*domain.SurveyWithoutIndicatorsRow, error)
	DeleteEmptyCategoriesFn        func(ctx context.Context) (int64, error)
}

func (f *Fake) ApplySchema(ctx context.Context) error {
	if f.ApplySchemaFn == nil {
		return errUnset("ApplySchema")
	}
	return f.ApplySchemaFn(ctx)
}

func (f *Fake) ListEnabledModules(ctx context.Context) ([]*domain.ModuleWithYears, error) {
	if f.ListEnabledModulesFn == nil {
		return nil, errUnset("ListEnabledModules")
	}
	return f.ListEnabledModulesFn(ctx)
}

func (f *Fake) SetModuleEnabled(ctx context.Context, moduleID string, enabled bool) error {
	if f.SetModuleEnabledFn == nil {
		return errUnset("SetModuleEnabled")
	}
	return f.SetModuleEnabledFn(ctx, moduleID, enabled)
}

func (f *Fake) UpdateModuleDetails(ctx context.Context, moduleID, name, description string) error {
	if f.UpdateModuleDetailsFn == nil {
		return errUnset("UpdateModuleDetails")
	}
	return f.UpdateModuleDetailsFn(ctx, moduleID, name, description)
}

func (f *Fake) ListModuleStatuses(ctx context.Context) ([]*domain.ModuleStatusRow, error) {
	if f.ListModuleStatusesFn == nil {
		return nil, errUnset("ListModuleStatuses")
	}
	return f.ListModuleStatusesFn(ctx)
}

func (f *Fake) CountModuleIndicators(ctx context.Context, moduleID string) (int, error) {
	if f.CountModuleIndicatorsFn == nil {
		return 0, errUnset("CountModuleIndicators")
	}
	return f.CountModuleIndicatorsFn(ctx, moduleID)
}

func (f *Fake) GetSurvey(ctx context.Context, moduleID, year string) (*domain.SurveyRow, error) {
	if f.GetSurveyFn == nil {
		return nil, errUnset("GetSurvey")
	}
	return f.GetSurveyFn(ctx, moduleID, year)
}

func (f *Fake) ListSurveyIndicators(ctx context.Context, surveyID string) ([]*domain.IndicatorCategoryRow, error) {
	if f.ListSurveyIndicatorsFn == nil {
		return nil, errUnset("ListSurveyIndicators")
	}
	return f.ListSurveyIndicatorsFn(ctx, surveyID)
}

func (f *Fake) IndicatorExists(ctx context.Context, indicatorID string) (bool, error) {
	if f.IndicatorExistsFn == nil {
		return false, errUnset("IndicatorExists")
	}
	return f.IndicatorExistsFn(ctx, indicatorID)
}

func (f *Fake) GetIndicatorID(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error) {
	if f.GetIndicatorIDFn == nil {
		return "", errUnset("GetIndicatorID")
	}
	return f.GetIndicatorIDFn(ctx, moduleID, year, categoryKey, indicatorKey)
}

func (f *Fake) ListZonalValues(ctx context.Context, indicatorID string) ([]*domain.ZonalValueRow, error) {
	if f.ListZonalValuesFn == nil {
		return nil, errUnset("ListZonalValues")
	}
	return f.ListZonalValuesFn(ctx, indicatorID)
}

func (f *Fake) ListStateValues(ctx context.Context, indicatorID string) ([]*domain.StateValueRow, error) {
	if f.ListStateValuesFn == nil {
		return nil, errUnset("ListStateValues")
	}
	return f.ListStateValuesFn(ctx, indicatorID)
}

func (f *Fake) ListTrendPoints(ctx context.Context, indicatorID string) ([]*domain.TrendPointRow, error) {
	if f.ListTrendPointsFn == nil {
		return nil, errUnset("ListTrendPoints")
	}
	return f.ListTrendPointsFn(ctx, indicatorID)
}

func (f *Fake) StateDataForIndicator(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) ([]*domain.StateValue, error) {
	if f.StateDataForIndicatorFn == nil {
		return nil, errUnset("StateDataForIndicator")
	}
	return f.StateDataForIndicatorFn(ctx, moduleID, year, categoryKey, indicatorKey)
}

func (f *Fake) UpsertTrendValue(ctx context.Context, indicatorID string, year int, value float64) error {
	if f.UpsertTrendValueFn == nil {
		return errUnset("UpsertTrendValue")
	}
	return f.UpsertTrendValueFn(ctx, indicatorID, year, value)
}

func (f *Fake) UpdateTrendValue(ctx context.Context, dataID string, value float64) error {
	if f.UpdateTrendValueFn == nil {
		return errUnset("UpdateTrendValue")
	}
	return f.UpdateTrendValueFn(ctx, dataID, value)
}

func (f *Fake) UpsertZonalValue(ctx context.Context, indicatorID, zone string, value float64) error {
	if f.UpsertZonalValueFn == nil {
		return errUnset("UpsertZonalValue")
	}
	return f.UpsertZonalValueFn(ctx, indicatorID, zone, value)
}

func (f *Fake) UpsertStateValue(ctx context.Context, indicatorID, state string, value float64) error {
	if f.UpsertStateValueFn == nil {
		return errUnset("UpsertStateValue")
	}
	return f.UpsertStateValueFn(ctx, indicatorID, state, value)
}

func (f *Fake) Count(ctx context.Context, table string) (int64, error) {
	if f.CountFn == nil {
		return 0, errUnset("Count")
	}
	return f.CountFn(ctx, table)
}

func (f *Fake) ListIndicatorExportRows(ctx context.Context) ([]*domain.IndicatorExportRow, error) {
	if f.ListIndicatorExportRowsFn == nil {
		return nil, errUnset("ListIndicatorExportRows")
	}
	return f.ListIndicatorExportRowsFn(ctx)
}

func (f *Fake) ListTrendExportRows(ctx context.Context) ([]*domain.TrendExportRow, error) {
	if f.ListTrendExportRowsFn == nil {
		return nil, errUnset("ListTrendExportRows")
	}
	return f.ListTrendExportRowsFn(ctx)
}

func (f *Fake) ListEmptyCategories(ctx context.Context) ([]*domain.EmptyCategoryRow, error) {
	if f.ListEmptyCategoriesFn == nil {
		return nil, errUnset("ListEmptyCategories")
	}
	return f.ListEmptyCategoriesFn(ctx)
}

func (f *Fake) ListSurveysWithoutIndicators(ctx context.Context) ([]*domain.SurveyWithoutIndicatorsRow, error) {
	if f.ListSurveysWithoutIndicatorsFn == nil {
		return nil, errUnset("ListSurveysWithoutIndicators")
	}
	return f.ListSurveysWithoutIndicatorsFn(ctx)
}

func (f *Fake) DeleteEmptyCategories(ctx context.Context) (int64, error) {
	if f.DeleteEmptyCategoriesFn == nil {
		return 0, errUnset("DeleteEmptyCategories")
	}
	return f.DeleteEmptyCategoriesFn(ctx)
}

func errUnset(name string) error {
	return fmt.Errorf("storetest: %s not configured", name)
}
