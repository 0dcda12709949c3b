// Package ingest backfills regional indicator data from published HTML
// survey tables. Each table on the source page carries an indicator path
// in its caption and one row per state; state values are upserted
// directly and zone aggregates are recomputed from the parsed states.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/niepng/niep-backend/internal/domain/geo"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/store"
)

type Service struct {
	store  store.Store
	client *http.Client
}

func NewService(store store.Store) *Service {
	return &Service{
		store:  store,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Result tallies one backfill run.
type Result struct {
	Tables      int      `json:"tables"`
	StateValues int      `json:"stateValues"`
	ZonalValues int      `json:"zonalValues"`
	Skipped     []string `json:"skipped,omitempty"`
}

// Backfill fetches the source page and upserts every state table it can
// resolve against the given module/year survey. Tables whose caption
// doesn't resolve to an indicator are skipped, not fatal.
func (s *Service) Backfill(ctx context.Context, sourceURL, moduleID, year string) (*Result, error) {
	doc, err := s.fetchDocument(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch source page: %w", err)
	}

	tally := newTally()
	eg, egCtx := errgroup.WithContext(ctx)

	doc.Find("table.indicator-table").Each(func(_ int, table *goquery.Selection) {
		caption := strings.TrimSpace(table.Find("caption").Text())

		eg.Go(func() error {
			categoryKey, indicatorKey, ok := splitCaption(caption)
			if !ok {
				tally.skip(fmt.Sprintf("table %q: malformed caption", caption))
				return nil
			}

			indicatorID, err := s.store.GetIndicatorID(egCtx, moduleID, year, categoryKey, indicatorKey)
			if err != nil {
				tally.skip(fmt.Sprintf("table %q: no matching indicator", caption))
				return nil
			}

			if err := s.ingestTable(egCtx, table, indicatorID, tally); err != nil {
				return fmt.Errorf("table %q: %w", caption, err)
			}

			tally.table()
			logger.Infof(egCtx, "backfilled table %q", caption)
			return nil
		})
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return tally.result(), nil
}

func (s *Service) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	var resp *http.Response

	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return doc, nil
}

// ingestTable parses every state row of one table, upserts per-state
// values and recomputes the six zone means from what was parsed.
func (s *Service) ingestTable(ctx context.Context, table *goquery.Selection, indicatorID string, tally *tally) error {
	zoneSums := make(map[string]decimal.Decimal)
	zoneCounts := make(map[string]int)

	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		rawName := strings.TrimSpace(tr.Find("th").Text())
		rawValue := strings.TrimSpace(tr.Find("td.value").First().Text())
		if rawName == "" || rawValue == "" {
			return true
		}

		state, zone, ok := geo.MatchState(rawName)
		if !ok {
			tally.skip(fmt.Sprintf("unknown state %q", rawName))
			return true
		}

		val, parseErr := decimal.NewFromString(strings.ReplaceAll(rawValue, ",", "."))
		if parseErr != nil {
			tally.skip(fmt.Sprintf("state %q: unparseable value %q", rawName, rawValue))
			return true
		}

		if err := s.store.UpsertStateValue(ctx, indicatorID, state, val.InexactFloat64()); err != nil {
			rowErr = fmt.Errorf("UpsertStateValue, state-%s: %w", state, err)
			return false
		}

		tally.state()
		zoneSums[zone] = zoneSums[zone].Add(val)
		zoneCounts[zone]++
		return true
	})
	if rowErr != nil {
		return rowErr
	}

	for _, zone := range geo.Zones {
		count := zoneCounts[zone]
		if count == 0 {
			continue
		}

		mean := zoneSums[zone].Div(decimal.NewFromInt(int64(count))).Round(3)
		if err := s.store.UpsertZonalValue(ctx, indicatorID, zone, mean.InexactFloat64()); err != nil {
			return fmt.Errorf("UpsertZonalValue, zone-%s: %w", zone, err)
		}

		tally.zonal()
	}

	return nil
}

// splitCaption parses "categoryKey/indicatorKey".
func splitCaption(caption string) (string, string, bool) {
	parts := strings.Split(caption, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
