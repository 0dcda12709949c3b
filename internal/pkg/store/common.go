package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

const (
	tableModules    = "modules"
	tableSurveys    = "surveys"
	tableCategories = "categories"
	tableIndicators = "indicators"
	tableTrendData  = "trend_data"
	tableZonalData  = "zonal_data"
	tableStateData  = "state_data"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
