// Package admin implements the back-office operations: credential login,
// module toggling, inline data edits and audit tooling.
package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/sanitize"
	"github.com/niepng/niep-backend/internal/pkg/store"
	"github.com/niepng/niep-backend/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Login checks the configured admin credential pair and issues a session
// token. A single admin account; no user table.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	adminEmail := viper.GetString(constants.ViperAdminEmail)
	adminPassword := viper.GetString(constants.ViperAdminPassword)

	if adminEmail == "" || adminPassword == "" || email != adminEmail || password != adminPassword {
		logger.Warnf(ctx, "failed login attempt for %q", email)
		return "", constants.ErrUnauthorized
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		Email:  email,
		Secret: viper.GetString(constants.ViperSecretKey),
	})
	if err != nil {
		return "", fmt.Errorf("GenerateAuthToken: %w", err)
	}

	return token, nil
}

func (s *Service) ToggleModule(ctx context.Context, moduleID string, enabled bool) error {
	if moduleID == "" {
		return constants.ErrBadRequest
	}
	return s.store.SetModuleEnabled(ctx, moduleID, enabled)
}

func (s *Service) UpdateModuleDetails(ctx context.Context, moduleID, name, description string) error {
	if moduleID == "" || name == "" {
		return constants.ErrBadRequest
	}
	return s.store.UpdateModuleDetails(ctx, moduleID, name, description)
}

// UpdateTrendValue edits a single trend data point. Last writer wins;
// there is no version check on the row.
func (s *Service) UpdateTrendValue(ctx context.Context, dataID, indicatorID string, value float64) error {
	if !sanitize.IsValidUUID(dataID) || !sanitize.IsValidUUID(indicatorID) {
		return constants.NewCodedError("invalid id format", 400)
	}

	sanitized, ok := sanitize.Number(strconv.FormatFloat(value, 'f', -1, 64))
	if !ok {
		return constants.NewCodedError("invalid value", 400)
	}

	exists, err := s.store.IndicatorExists(ctx, indicatorID)
	if err != nil {
		return fmt.Errorf("IndicatorExists: %w", err)
	}
	if !exists {
		return constants.ErrDBNotFound
	}

	return s.store.UpdateTrendValue(ctx, dataID, sanitized)
}

func (s *Service) CleanupEmptyCategories(ctx context.Context) (int64, error) {
	count, err := s.store.DeleteEmptyCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("DeleteEmptyCategories: %w", err)
	}

	logger.Infof(ctx, "cleanup removed %d empty categories", count)
	return count, nil
}

func (s *Service) RunAudit(ctx context.Context) (*domain.AuditReport, error) {
	emptyCats, err := s.store.ListEmptyCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListEmptyCategories: %w", err)
	}

	orphanSurveys, err := s.store.ListSurveysWithoutIndicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListSurveysWithoutIndicators: %w", err)
	}

	report := &domain.AuditReport{
		EmptyCategories:          make([]domain.EmptyCategory, 0, len(emptyCats)),
		SurveysWithoutIndicators: make([]domain.SurveyWithoutIndicators, 0, len(orphanSurveys)),
	}

	for _, c := range emptyCats {
		report.EmptyCategories = append(report.EmptyCategories, domain.EmptyCategory{
			ID:     c.ID,
			Title:  c.Title,
			Survey: c.Survey,
		})
	}
	for _, s := range orphanSurveys {
		report.SurveysWithoutIndicators = append(report.SurveysWithoutIndicators, domain.SurveyWithoutIndicators{
			ID:            s.ID,
			Name:          s.Name,
			Year:          s.Year,
			CategoryCount: s.CategoryCount,
		})
	}

	for _, target := range []struct {
		table string
		dst   *int64
	}{
		{store.TableSurveys, &report.Summary.TotalSurveys},
		{store.TableCategories, &report.Summary.TotalCategories},
		{store.TableIndicators, &report.Summary.TotalIndicators},
	} {
		count, err := s.store.Count(ctx, target.table)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", target.table, err)
		}
		*target.dst = count
	}

	return report, nil
}

// ModuleStatus lists every module with survey and indicator counts,
// including disabled modules.
func (s *Service) ModuleStatus(ctx context.Context) ([]*domain.ModuleStatus, error) {
	rows, err := s.store.ListModuleStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListModuleStatuses: %w", err)
	}

	statuses := make([]*domain.ModuleStatus, 0, len(rows))
	for _, row := range rows {
		indicatorCount, err := s.store.CountModuleIndicators(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("CountModuleIndicators %s: %w", row.ID, err)
		}

		years := row.Years
		if years == nil {
			years = []string{}
		}

		statuses = append(statuses, &domain.ModuleStatus{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			Enabled:        row.Enabled,
			SurveyCount:    row.SurveyCount,
			Years:          years,
			IndicatorCount: indicatorCount,
		})
	}

	return statuses, nil
}
