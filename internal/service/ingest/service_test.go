package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niepng/niep-backend/internal/pkg/store/storetest"
)

const sourcePage = `<html><body>
<table class="indicator-table">
  <caption>fertility/tfr</caption>
  <tbody>
    <tr><th>Abia</th><td class="value">10</td></tr>
    <tr><th>Anambra</th><td class="value">20</td></tr>
    <tr><th>Lagos State</th><td class="value">12,5</td></tr>
    <tr><th>Atlantis</th><td class="value">99</td></tr>
    <tr><th>Ebonyi</th><td class="value">n/a</td></tr>
  </tbody>
</table>
<table class="indicator-table">
  <caption>broken caption</caption>
  <tbody><tr><th>Kano</th><td class="value">1</td></tr></tbody>
</table>
<table class="indicator-table">
  <caption>nutrition/stunting</caption>
  <tbody><tr><th>Kano</th><td class="value">48.9</td></tr></tbody>
</table>
</body></html>`

type recorded struct {
	mu     sync.Mutex
	states map[string]map[string]float64
	zones  map[string]map[string]float64
}

func newRecordingFake(t *testing.T) (*storetest.Fake, *recorded) {
	rec := &recorded{
		states: make(map[string]map[string]float64),
		zones:  make(map[string]map[string]float64),
	}

	fake := &storetest.Fake{
		GetIndicatorIDFn: func(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error) {
			assert.Equal(t, "m1", moduleID)
			assert.Equal(t, "2018", year)
			return categoryKey + ":" + indicatorKey, nil
		},
		UpsertStateValueFn: func(ctx context.Context, indicatorID, state string, value float64) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			if rec.states[indicatorID] == nil {
				rec.states[indicatorID] = make(map[string]float64)
			}
			rec.states[indicatorID][state] = value
			return nil
		},
		UpsertZonalValueFn: func(ctx context.Context, indicatorID, zone string, value float64) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			if rec.zones[indicatorID] == nil {
				rec.zones[indicatorID] = make(map[string]float64)
			}
			rec.zones[indicatorID][zone] = value
			return nil
		},
	}

	return fake, rec
}

func TestBackfill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sourcePage))
	}))
	defer srv.Close()

	fake, rec := newRecordingFake(t)
	result, err := NewService(fake).Backfill(context.Background(), srv.URL, "m1", "2018")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Tables)
	assert.Equal(t, 4, result.StateValues)
	assert.Equal(t, 3, result.ZonalValues)

	// The malformed caption, unknown state and unparseable value are
	// skipped without failing the run.
	assert.Len(t, result.Skipped, 3)

	tfr := rec.states["fertility:tfr"]
	require.NotNil(t, tfr)
	assert.Equal(t, 10.0, tfr["Abia"])
	assert.Equal(t, 20.0, tfr["Anambra"])
	assert.Equal(t, 12.5, tfr["Lagos"], "comma decimal separator accepted")

	tfrZones := rec.zones["fertility:tfr"]
	require.NotNil(t, tfrZones)
	assert.Equal(t, 15.0, tfrZones["South East"], "zone mean over parsed states")
	assert.Equal(t, 12.5, tfrZones["South West"])

	stunting := rec.zones["nutrition:stunting"]
	require.NotNil(t, stunting)
	assert.Equal(t, 48.9, stunting["North West"])
}

func TestBackfillUnresolvedIndicator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<table class="indicator-table"><caption>a/b</caption>
			<tbody><tr><th>Kano</th><td class="value">1</td></tr></tbody></table>`))
	}))
	defer srv.Close()

	fake := &storetest.Fake{
		GetIndicatorIDFn: func(ctx context.Context, moduleID, year, categoryKey, indicatorKey string) (string, error) {
			return "", context.Canceled
		},
	}

	result, err := NewService(fake).Backfill(context.Background(), srv.URL, "m1", "2018")
	require.NoError(t, err)

	assert.Zero(t, result.Tables)
	assert.Len(t, result.Skipped, 1)
}

func TestBackfillSourceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewService(&storetest.Fake{}).Backfill(context.Background(), srv.URL, "m1", "2018")
	require.Error(t, err)
}

func TestSplitCaption(t *testing.T) {
	cat, ind, ok := splitCaption("fertility/tfr")
	require.True(t, ok)
	assert.Equal(t, "fertility", cat)
	assert.Equal(t, "tfr", ind)

	cat, ind, ok = splitCaption(" fertility / tfr ")
	require.True(t, ok)
	assert.Equal(t, "fertility", cat)
	assert.Equal(t, "tfr", ind)

	for _, bad := range []string{"", "fertility", "a/b/c", "/tfr", "fertility/"} {
		_, _, ok := splitCaption(bad)
		assert.False(t, ok, "caption %q", bad)
	}
}
