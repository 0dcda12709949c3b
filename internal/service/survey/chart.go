package survey

import (
	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/domain/geo"
)

// ChartData is the closed set of renderable chart shapes for an
// indicator. Exactly one variant applies; consumers switch on the
// concrete type instead of probing optional fields.
type ChartData interface {
	chartData()
}

// TrendChart is a multi-year, multi-series line/bar chart.
type TrendChart struct {
	Labels   []string              `json:"labels"`
	Datasets []domain.TrendDataset `json:"datasets"`
}

// ZonalChart is a single dataset over the six fixed zone labels.
type ZonalChart struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// NationalChart is a single national value rendered as one bar.
type NationalChart struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

func (TrendChart) chartData()    {}
func (ZonalChart) chartData()    {}
func (NationalChart) chartData() {}

// ChartDataFor picks the chart shape for an indicator: trend when the
// dense grid is present, else zonal when the breakdown is non-empty,
// else the national value. Nil when no source applies; the caller
// renders no chart.
func ChartDataFor(ind *domain.IndicatorView) ChartData {
	if ind == nil {
		return nil
	}

	if ind.IsTrend && len(ind.Labels) > 0 && len(ind.Datasets) > 0 {
		return TrendChart{Labels: ind.Labels, Datasets: ind.Datasets}
	}

	if len(ind.Zonal) > 0 {
		return ZonalChart{
			Title:  ind.Title,
			Labels: append([]string(nil), geo.Zones...),
			Values: ind.Zonal,
		}
	}

	if ind.Val != nil {
		return NationalChart{Title: ind.Title, Value: *ind.Val}
	}

	return nil
}

// ZoneDrilldown expands a zone's aggregate into its member states, in
// mapping order, skipping states with no data. Nil when the zone is
// unknown or nothing matched.
func ZoneDrilldown(zone string, stateData map[string]float64) []domain.StateValue {
	states := geo.StatesForZone(zone)
	if states == nil {
		return nil
	}

	var out []domain.StateValue
	for _, state := range states {
		if v, ok := stateData[state]; ok {
			out = append(out, domain.StateValue{State: state, Value: v})
		}
	}

	return out
}

// Summarize derives min/max/avg display statistics over a regional
// breakdown. Labels and values align by index.
func Summarize(labels []string, values []float64) *domain.RegionalSummary {
	if len(values) == 0 {
		return nil
	}

	summary := &domain.RegionalSummary{Min: values[0], Max: values[0]}
	sum := 0.0
	for i, v := range values {
		sum += v
		if v < summary.Min {
			summary.Min = v
			if i < len(labels) {
				summary.MinLabel = labels[i]
			}
		}
		if v > summary.Max {
			summary.Max = v
			if i < len(labels) {
				summary.MaxLabel = labels[i]
			}
		}
	}
	summary.Avg = sum / float64(len(values))

	if summary.MinLabel == "" && len(labels) > 0 {
		summary.MinLabel = labels[0]
	}
	if summary.MaxLabel == "" && len(labels) > 0 {
		summary.MaxLabel = labels[0]
	}

	return summary
}
