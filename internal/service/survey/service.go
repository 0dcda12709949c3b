// Package survey assembles the nested view models the explorer frontend
// consumes: module listings, the per-survey indicator tree and the
// per-indicator regional breakdowns.
package survey

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListModules(ctx context.Context) ([]*domain.ModuleView, error) {
	rows, err := s.store.ListEnabledModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListEnabledModules: %w", err)
	}

	modules := make([]*domain.ModuleView, 0, len(rows))
	for _, row := range rows {
		years := row.YearsAvailable
		if years == nil {
			years = []string{}
		}
		modules = append(modules, &domain.ModuleView{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			Icon:           row.Icon,
			Color:          row.Color,
			YearsAvailable: years,
		})
	}

	return modules, nil
}

// GetModuleYearData builds the complete survey view model for one
// (module, year) pair. Returns nil when no survey exists; callers map
// that to 404. Any query error aborts the whole aggregation.
func (s *Service) GetModuleYearData(ctx context.Context, moduleID, year string) (*domain.SurveyData, error) {
	survey, err := s.store.GetSurvey(ctx, moduleID, year)
	if errors.Is(err, constants.ErrDBNotFound) {
		logger.Debugf(ctx, "no survey for module-%s year-%s", moduleID, year)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetSurvey: %w", err)
	}

	rows, err := s.store.ListSurveyIndicators(ctx, survey.ID)
	if err != nil {
		return nil, fmt.Errorf("ListSurveyIndicators: %w", err)
	}

	indicators := make(map[string]*domain.CategoryView, len(rows))
	for _, row := range rows {
		category, ok := indicators[row.CategoryKey]
		if !ok {
			category = &domain.CategoryView{
				Title:       row.CategoryTitle,
				Description: row.CategoryDescription,
				Items:       make(map[string]*domain.IndicatorView),
			}
			indicators[row.CategoryKey] = category
		}

		view, err := s.buildIndicatorView(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("indicator %s: %w", row.IndicatorKey, err)
		}

		category.Items[row.IndicatorKey] = view
	}

	return &domain.SurveyData{
		Label: survey.Label,
		Desc:  survey.Description,
		Stats: domain.SurveyStats{
			Response: survey.ResponseRate,
			Women:    survey.WomenSampleSize,
			Men:      survey.MenSampleSize,
		},
		Indicators: indicators,
	}, nil
}

// buildIndicatorView fetches the regional breakdowns for one indicator.
// Zonal and state rows are always checked; some trend indicators carry
// regional snapshots too. The optional fields stay nil when no rows
// exist: absent means "not applicable", not zero.
func (s *Service) buildIndicatorView(ctx context.Context, row *domain.IndicatorCategoryRow) (*domain.IndicatorView, error) {
	view := &domain.IndicatorView{
		Title:    row.IndicatorTitle,
		Unit:     row.Unit,
		Val:      row.NationalValue,
		Color:    row.Color,
		Context:  row.Context,
		Analysis: row.Analysis,
		IsTrend:  row.IsTrend,
		IsRate:   row.IsRate,
		IsTFR:    row.IsTFR,
	}

	zonalRows, err := s.store.ListZonalValues(ctx, row.IndicatorID)
	if err != nil {
		return nil, fmt.Errorf("ListZonalValues: %w", err)
	}
	if len(zonalRows) > 0 {
		view.Zonal = make([]float64, 0, len(zonalRows))
		for _, z := range zonalRows {
			view.Zonal = append(view.Zonal, z.Value)
		}
	}

	stateRows, err := s.store.ListStateValues(ctx, row.IndicatorID)
	if err != nil {
		return nil, fmt.Errorf("ListStateValues: %w", err)
	}
	if len(stateRows) > 0 {
		view.State = make(map[string]float64, len(stateRows))
		for _, st := range stateRows {
			view.State[st.State] = st.Value
		}
	}

	if row.IsTrend {
		points, err := s.store.ListTrendPoints(ctx, row.IndicatorID)
		if err != nil {
			return nil, fmt.Errorf("ListTrendPoints: %w", err)
		}
		if len(points) > 0 {
			view.Labels, view.Datasets = buildTrendGrid(points)
			view.Desc = row.Context
		}
	}

	return view, nil
}

func (s *Service) StateDataForIndicator(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) ([]*domain.StateValue, error) {
	return s.store.StateDataForIndicator(ctx, moduleID, year, categoryKey, indicatorKey)
}

// PlatformStats counts every table in parallel.
func (s *Service) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats := &domain.PlatformStats{}

	targets := []struct {
		table string
		dst   *int64
	}{
		{store.TableModules, &stats.Modules},
		{store.TableSurveys, &stats.Surveys},
		{store.TableCategories, &stats.Categories},
		{store.TableIndicators, &stats.Indicators},
		{store.TableTrendData, &stats.DataPoints},
		{store.TableStateData, &stats.StateData},
		{store.TableZonalData, &stats.ZonalData},
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, t := range targets {
		t := t
		eg.Go(func() error {
			count, err := s.store.Count(egCtx, t.table)
			if err != nil {
				return fmt.Errorf("count %s: %w", t.table, err)
			}
			*t.dst = count
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
