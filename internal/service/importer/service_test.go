package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/store/storetest"
)

const knownIndicator = "a1b2c3d4-e5f6-4789-8abc-def012345678"

func alwaysExists(ctx context.Context, indicatorID string) (bool, error) {
	return indicatorID == knownIndicator, nil
}

type upsertCall struct {
	indicatorID string
	year        int
	value       float64
}

func recordingFake(calls *[]upsertCall) *storetest.Fake {
	return &storetest.Fake{
		IndicatorExistsFn: alwaysExists,
		UpsertTrendValueFn: func(ctx context.Context, indicatorID string, year int, value float64) error {
			*calls = append(*calls, upsertCall{indicatorID, year, value})
			return nil
		},
	}
}

func runImport(t *testing.T, svc *Service, body string) *domain.ImportResult {
	t.Helper()
	return svc.Import(context.Background(), "admin@test", "data.csv", int64(len(body)), strings.NewReader(body))
}

func TestImportSuccess(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	body := "indicator_id,year,value\n" +
		knownIndicator + ",2018,5.3\n" +
		knownIndicator + ",2013,5.5\n"

	result := runImport(t, svc, body)

	require.True(t, result.Success, "message: %s", result.Message)
	assert.Equal(t, "Successfully imported 2 rows", result.Message)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	require.Len(t, calls, 2)
	assert.Equal(t, upsertCall{knownIndicator, 2018, 5.3}, calls[0])
	assert.Equal(t, upsertCall{knownIndicator, 2013, 5.5}, calls[1])
}

func TestImportSingularMessage(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	result := runImport(t, svc, "indicator_id,year,value\n"+knownIndicator+",2018,5.3\n")

	require.True(t, result.Success)
	assert.Equal(t, "Successfully imported 1 row", result.Message)
}

func TestImportPartialSuccess(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	body := "indicator_id,year,value\n" +
		knownIndicator + ",2018,5.3\n" +
		"not-a-uuid,2018,5.3\n" +
		knownIndicator + ",1850,5.3\n" +
		knownIndicator + ",2018,2000000\n" +
		"b1b2c3d4-e5f6-4789-8abc-def012345678,2018,5.3\n"

	result := runImport(t, svc, body)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, "Row 3: Invalid indicator ID format", result.Errors[0])
	assert.Equal(t, "Row 4: Invalid year or value", result.Errors[1])
	assert.Equal(t, "Row 5: Invalid year or value", result.Errors[2])
	assert.Equal(t, "Row 6: Indicator not found", result.Errors[3])

	require.Len(t, calls, 1)
}

func TestImportRepairsCells(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	// Stray quotes, whitespace and currency noise are stripped before
	// validation; the header tolerates casing and trailing spaces.
	body := "Indicator_ID ,YEAR,Value\n" +
		`"` + knownIndicator + `"` + ", year 2018 ,₦5.3\n"

	result := runImport(t, svc, body)

	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Len(t, calls, 1)
	assert.Equal(t, upsertCall{knownIndicator, 2018, 5.3}, calls[0])
}

func TestImportNothingImported(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	result := runImport(t, svc, "indicator_id,year,value\nbogus,2018,5.3\n")

	assert.False(t, result.Success)
	assert.Equal(t, "No data was imported", result.Message)
	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Empty(t, calls)
}

func TestImportErrorsCapped(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	var b strings.Builder
	b.WriteString("indicator_id,year,value\n")
	for i := 0; i < 25; i++ {
		b.WriteString("bogus,2018,5.3\n")
	}
	b.WriteString(knownIndicator + ",2018,5.3\n")

	result := runImport(t, svc, b.String())

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Imported)
	assert.Len(t, result.Errors, 10, "row errors are capped")
}

func TestImportRejectsNonCSV(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	result := svc.Import(context.Background(), "admin@test", "data.xlsx", 10, strings.NewReader("x"))

	assert.False(t, result.Success)
	assert.Equal(t, "File must be a CSV file", result.Message)
}

func TestImportRejectsOversizedFile(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	result := svc.Import(context.Background(), "admin@test", "data.csv", MaxFileBytes+1, strings.NewReader("x"))

	assert.False(t, result.Success)
	assert.Equal(t, "File size must be less than 10MB", result.Message)
}

func TestImportRejectsOversizedText(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	body := strings.Repeat("a", MaxTextBytes+1)
	result := svc.Import(context.Background(), "admin@test", "data.csv", 100, strings.NewReader(body))

	assert.False(t, result.Success)
	assert.Equal(t, "File content too large", result.Message)
}

func TestImportMissingColumns(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	result := runImport(t, svc, "indicator_id,value\n"+knownIndicator+",5.3\n")

	assert.False(t, result.Success)
	assert.Equal(t, "Missing required columns: year", result.Message)
}

func TestImportEmptyFile(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	for _, body := range []string{"", "indicator_id,year,value\n", "\n\n  ,,\n"} {
		result := runImport(t, svc, body)
		assert.False(t, result.Success)
		assert.Equal(t, "CSV file is empty or invalid", result.Message)
	}
}

func TestImportTooManyRows(t *testing.T) {
	svc := NewService(&storetest.Fake{})

	var b strings.Builder
	b.WriteString("indicator_id,year,value\n")
	for i := 0; i < MaxRows; i++ {
		fmt.Fprintf(&b, "%s,2018,%d\n", knownIndicator, i)
	}

	result := runImport(t, svc, b.String())

	assert.False(t, result.Success)
	assert.Equal(t, "Too many rows. Maximum 10,000 rows allowed per import.", result.Message)
}

func TestImportRateLimited(t *testing.T) {
	var calls []upsertCall
	svc := NewService(recordingFake(&calls))

	body := "indicator_id,year,value\n" + knownIndicator + ",2018,5.3\n"

	for i := 0; i < rateLimitMax; i++ {
		result := runImport(t, svc, body)
		require.True(t, result.Success, "call %d should pass", i+1)
	}

	result := runImport(t, svc, body)
	assert.False(t, result.Success)
	assert.Equal(t, "Rate limit exceeded. Please wait before importing again.", result.Message)

	// Other identifiers are unaffected.
	other := svc.Import(context.Background(), "other@test", "data.csv", int64(len(body)), strings.NewReader(body))
	assert.True(t, other.Success)
}
