package domain

import "time"

type ModuleRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	Color       string    `db:"color"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type SurveyRow struct {
	ID              string    `db:"id"`
	ModuleID        string    `db:"module_id"`
	Year            string    `db:"year"`
	Label           string    `db:"label"`
	Description     string    `db:"description"`
	ResponseRate    float64   `db:"response_rate"`
	WomenSampleSize int       `db:"women_sample_size"`
	MenSampleSize   int       `db:"men_sample_size"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type CategoryRow struct {
	ID           string    `db:"id"`
	SurveyID     string    `db:"survey_id"`
	Key          string    `db:"key"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type IndicatorRow struct {
	ID            string    `db:"id"`
	CategoryID    string    `db:"category_id"`
	Key           string    `db:"key"`
	Title         string    `db:"title"`
	Unit          string    `db:"unit"`
	NationalValue *float64  `db:"national_value"`
	Color         string    `db:"color"`
	Context       string    `db:"context"`
	Analysis      string    `db:"analysis"`
	IsTrend       bool      `db:"is_trend"`
	IsRate        bool      `db:"is_rate"`
	IsTFR         bool      `db:"is_tfr"`
	DisplayOrder  int       `db:"display_order"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// IndicatorCategoryRow is an indicator joined to its parent category,
// one row per indicator of a survey.
type IndicatorCategoryRow struct {
	CategoryKey         string   `db:"category_key"`
	CategoryTitle       string   `db:"category_title"`
	CategoryDescription string   `db:"category_description"`
	IndicatorID         string   `db:"indicator_id"`
	IndicatorKey        string   `db:"indicator_key"`
	IndicatorTitle      string   `db:"indicator_title"`
	Unit                string   `db:"unit"`
	NationalValue       *float64 `db:"national_value"`
	Color               string   `db:"color"`
	Context             string   `db:"context"`
	Analysis            string   `db:"analysis"`
	IsTrend             bool     `db:"is_trend"`
	IsRate              bool     `db:"is_rate"`
	IsTFR               bool     `db:"is_tfr"`
	DisplayOrder        int      `db:"display_order"`
}

type TrendPointRow struct {
	ID           string  `db:"id"`
	IndicatorID  string  `db:"indicator_id"`
	Year         string  `db:"year"`
	SeriesName   string  `db:"series_name"`
	Value        float64 `db:"value"`
	Color        string  `db:"color"`
	DisplayOrder int     `db:"display_order"`
}

type ZonalValueRow struct {
	IndicatorID string  `db:"indicator_id"`
	Zone        string  `db:"zone"`
	Value       float64 `db:"value"`
}

type StateValueRow struct {
	IndicatorID string  `db:"indicator_id"`
	State       string  `db:"state"`
	Value       float64 `db:"value"`
}

// ModuleWithYears is a module row plus the distinct survey years
// aggregated in the same query, newest first.
type ModuleWithYears struct {
	ModuleRow
	YearsAvailable []string `db:"years_available"`
}

// ModuleStatusRow backs the admin module-status listing.
type ModuleStatusRow struct {
	ID          string   `db:"id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Enabled     bool     `db:"enabled"`
	SurveyCount int      `db:"survey_count"`
	Years       []string `db:"years"`
}

// Export row shapes, one per CSV export endpoint.
type IndicatorExportRow struct {
	ID        string `db:"id"`
	Indicator string `db:"indicator"`
	Category  string `db:"category"`
	Survey    string `db:"survey"`
	Year      string `db:"year"`
	Module    string `db:"module"`
}

type TrendExportRow struct {
	Module     string  `db:"module"`
	Survey     string  `db:"survey"`
	SurveyYear string  `db:"survey_year"`
	Category   string  `db:"category"`
	Indicator  string  `db:"indicator"`
	DataYear   string  `db:"data_year"`
	Value      float64 `db:"value"`
	Location   string  `db:"location"`
}

// Audit row shapes.
type EmptyCategoryRow struct {
	ID     string `db:"id"`
	Title  string `db:"title"`
	Survey string `db:"survey"`
}

type SurveyWithoutIndicatorsRow struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Year          string `db:"year"`
	CategoryCount int    `db:"category_count"`
}
