package domain

// View models serialized to the frontend. Field names and the
// present-only-when-non-empty behaviour of zonal/stateData/labels/datasets
// are part of the wire contract.

type ModuleView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon,omitempty"`
	Color          string   `json:"color,omitempty"`
	YearsAvailable []string `json:"yearsAvailable"`
}

type TrendDataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
}

type IndicatorView struct {
	Title    string         `json:"title"`
	Unit     string         `json:"unit,omitempty"`
	Val      *float64       `json:"val"`
	Color    string         `json:"color,omitempty"`
	Context  string         `json:"context,omitempty"`
	Analysis string         `json:"analysis,omitempty"`
	IsTrend  bool           `json:"isTrend"`
	IsRate   bool           `json:"isRate"`
	IsTFR    bool           `json:"isTFR"`
	Zonal    []float64      `json:"zonal,omitempty"`
	State    map[string]float64 `json:"stateData,omitempty"`
	Labels   []string       `json:"labels,omitempty"`
	Datasets []TrendDataset `json:"datasets,omitempty"`
	Desc     string         `json:"desc,omitempty"`
}

type CategoryView struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Items       map[string]*IndicatorView `json:"items"`
}

type SurveyStats struct {
	Response float64 `json:"response"`
	Women    int     `json:"women"`
	Men      int     `json:"men"`
}

type SurveyData struct {
	Label      string                   `json:"label"`
	Desc       string                   `json:"desc"`
	Stats      SurveyStats              `json:"stats"`
	Indicators map[string]*CategoryView `json:"indicators"`
}

type StateValue struct {
	State string  `json:"State"`
	Value float64 `json:"Value"`
}

type PlatformStats struct {
	Modules    int64 `json:"modules"`
	Surveys    int64 `json:"surveys"`
	Categories int64 `json:"categories"`
	Indicators int64 `json:"indicators"`
	DataPoints int64 `json:"dataPoints"`
	StateData  int64 `json:"stateData"`
	ZonalData  int64 `json:"zonalData"`
}

type ModuleStatus struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Enabled        bool     `json:"enabled"`
	SurveyCount    int      `json:"surveyCount"`
	Years          []string `json:"years"`
	IndicatorCount int      `json:"indicatorCount"`
}

type AuditSummary struct {
	TotalSurveys    int64 `json:"totalSurveys"`
	TotalCategories int64 `json:"totalCategories"`
	TotalIndicators int64 `json:"totalIndicators"`
}

type EmptyCategory struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Survey string `json:"survey"`
}

type SurveyWithoutIndicators struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Year          string `json:"year"`
	CategoryCount int    `json:"categoryCount"`
}

type AuditReport struct {
	EmptyCategories          []EmptyCategory           `json:"emptyCategories"`
	SurveysWithoutIndicators []SurveyWithoutIndicators `json:"surveysWithoutIndicators"`
	Summary                  AuditSummary              `json:"summary"`
}

// RegionalSummary holds derived statistics over one indicator's
// regional breakdown.
type RegionalSummary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Avg      float64 `json:"avg"`
	MinLabel string  `json:"minLabel"`
	MaxLabel string  `json:"maxLabel"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ImportResult reports a partial-success CSV import: Imported counts rows
// persisted; Errors carries at most 10 row-level messages.
type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}
