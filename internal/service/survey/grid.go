package survey

import "github.com/niepng/niep-backend/internal/domain"

const defaultSeriesColor = "#000000"

// buildTrendGrid reshapes trend rows into the dense {labels, datasets}
// grid chart renderers consume: labels is the union of observed years,
// datasets one per series, and every dataset's data slice has exactly
// len(labels) entries with nil marking a (year, series) pair absent from
// the table. First-seen order is preserved on both axes, which follows
// the rows' display_order/year/series ordering.
func buildTrendGrid(points []*domain.TrendPointRow) ([]string, []domain.TrendDataset) {
	var years []string
	seenYears := make(map[string]int)
	var series []string
	seenSeries := make(map[string]bool)

	for _, p := range points {
		if _, ok := seenYears[p.Year]; !ok {
			seenYears[p.Year] = len(years)
			years = append(years, p.Year)
		}
		if !seenSeries[p.SeriesName] {
			seenSeries[p.SeriesName] = true
			series = append(series, p.SeriesName)
		}
	}

	datasets := make([]domain.TrendDataset, 0, len(series))
	for _, name := range series {
		ds := domain.TrendDataset{
			Label: name,
			Data:  make([]*float64, len(years)),
		}

		for _, p := range points {
			if p.SeriesName != name {
				continue
			}
			if ds.BorderColor == "" && p.Color != "" {
				ds.BorderColor = p.Color
			}
			v := p.Value
			ds.Data[seenYears[p.Year]] = &v
		}

		if ds.BorderColor == "" {
			ds.BorderColor = defaultSeriesColor
		}
		ds.BackgroundColor = ds.BorderColor

		datasets = append(datasets, ds)
	}

	return years, datasets
}
