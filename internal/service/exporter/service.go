// Package exporter renders the admin CSV downloads.
package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/niepng/niep-backend/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Export is a rendered CSV attachment.
type Export struct {
	Filename string
	Body     []byte
}

var indicatorHeader = []string{"ID", "Indicator", "Category", "Survey", "Year", "Module"}

func (s *Service) ExportIndicators(ctx context.Context) (*Export, error) {
	rows, err := s.store.ListIndicatorExportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListIndicatorExportRows: %w", err)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, indicatorHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.ID, row.Indicator, row.Category, row.Survey, row.Year, row.Module,
		})
	}

	body, err := render(records)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: datedFilename("indicators-export"),
		Body:     body,
	}, nil
}

var trendHeader = []string{"Module", "Survey", "Survey Year", "Category", "Indicator", "Data Year", "Value", "Location"}

func (s *Service) ExportTrendData(ctx context.Context) (*Export, error) {
	rows, err := s.store.ListTrendExportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListTrendExportRows: %w", err)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, trendHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.Module,
			row.Survey,
			row.SurveyYear,
			row.Category,
			row.Indicator,
			row.DataYear,
			strconv.FormatFloat(row.Value, 'f', -1, 64),
			row.Location,
		})
	}

	body, err := render(records)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: datedFilename("trend-data-export"),
		Body:     body,
	}, nil
}

func render(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func datedFilename(prefix string) string {
	return fmt.Sprintf("%s-%s.csv", prefix, time.Now().UTC().Format("2006-01-02"))
}
