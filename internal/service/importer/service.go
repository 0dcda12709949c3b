// Package importer implements the CSV bulk import of trend data points.
// The pipeline is partial-success: row failures are collected, valid
// rows are persisted regardless, and each row's upsert is idempotent on
// (indicator_id, year) so a re-run converges rather than duplicating.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/ratelimit"
	"github.com/niepng/niep-backend/internal/pkg/sanitize"
	"github.com/niepng/niep-backend/internal/pkg/store"
)

const (
	MaxFileBytes = 10 * 1024 * 1024
	MaxTextBytes = 5 * 1024 * 1024
	MaxRows      = 10000

	maxSurfacedErrors = 10

	rateLimitMax    = 10
	rateLimitWindow = time.Minute
)

var requiredColumns = []string{"indicator_id", "year", "value"}

type Service struct {
	store   store.Store
	limiter *ratelimit.Limiter
}

func NewService(store store.Store) *Service {
	return &Service{
		store:   store,
		limiter: ratelimit.New(rateLimitMax, rateLimitWindow),
	}
}

func failure(message string) *domain.ImportResult {
	return &domain.ImportResult{Success: false, Message: message}
}

// Import runs the whole pipeline for one uploaded file. identifier keys
// the rate limiter (the admin's email), declaredSize is the upload size
// reported by the multipart header.
func (s *Service) Import(ctx context.Context, identifier, filename string, declaredSize int64, r io.Reader) *domain.ImportResult {
	if !s.limiter.Allow("import-" + identifier) {
		return failure("Rate limit exceeded. Please wait before importing again.")
	}

	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return failure("File must be a CSV file")
	}
	if declaredSize > MaxFileBytes {
		return failure("File size must be less than 10MB")
	}

	text, err := io.ReadAll(io.LimitReader(r, MaxTextBytes+1))
	if err != nil {
		return failure("Failed to read file")
	}
	if len(text) > MaxTextBytes {
		return failure("File content too large")
	}

	reader := csv.NewReader(strings.NewReader(string(text)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return failure("Import failed. Please check file format and try again.")
	}

	records = dropBlank(records)
	if len(records) < 2 {
		return failure("CSV file is empty or invalid")
	}
	if len(records) > MaxRows {
		return failure("Too many rows. Maximum 10,000 rows allowed per import.")
	}

	colIdx, missing := parseHeader(records[0])
	if len(missing) > 0 {
		return failure("Missing required columns: " + strings.Join(missing, ", "))
	}

	imported := 0
	var errors []string
	addError := func(row int, msg string) {
		errors = append(errors, fmt.Sprintf("Row %d: %s", row, msg))
	}

	for i, record := range records[1:] {
		rowNum := i + 2

		indicatorID := sanitize.RepairUUID(cell(record, colIdx["indicator_id"]))
		yearStr := sanitize.RepairYear(cell(record, colIdx["year"]))
		valueStr := sanitize.RepairNumber(cell(record, colIdx["value"]))

		if !sanitize.IsValidUUID(indicatorID) {
			addError(rowNum, "Invalid indicator ID format")
			continue
		}

		year, okYear := sanitize.Year(yearStr)
		value, okValue := sanitize.Number(valueStr)
		if !okYear || !okValue {
			addError(rowNum, "Invalid year or value")
			continue
		}

		exists, err := s.store.IndicatorExists(ctx, indicatorID)
		if err != nil {
			logger.Errorf(ctx, "row %d: IndicatorExists: %s", rowNum, err.Error())
			addError(rowNum, "Database error")
			continue
		}
		if !exists {
			addError(rowNum, "Indicator not found")
			continue
		}

		if err := s.store.UpsertTrendValue(ctx, indicatorID, year, value); err != nil {
			logger.Errorf(ctx, "row %d: UpsertTrendValue: %s", rowNum, err.Error())
			addError(rowNum, "Database error")
			continue
		}

		imported++
	}

	if len(errors) > maxSurfacedErrors {
		errors = errors[:maxSurfacedErrors]
	}

	if imported == 0 {
		result := failure("No data was imported")
		result.Errors = errors
		return result
	}

	plural := "s"
	if imported == 1 {
		plural = ""
	}

	return &domain.ImportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully imported %d row%s", imported, plural),
		Imported: imported,
		Errors:   errors,
	}
}

func dropBlank(records [][]string) [][]string {
	out := records[:0]
	for _, record := range records {
		blank := true
		for _, c := range record {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, record)
		}
	}
	return out
}

// parseHeader lower-cases and strips header cells to [a-z_] before
// matching, so "Indicator_ID " and "indicator_id" both resolve.
func parseHeader(header []string) (map[string]int, []string) {
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		name := sanitize.RepairHeader(h)
		if _, ok := colIdx[name]; !ok {
			colIdx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}

	return colIdx, missing
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
