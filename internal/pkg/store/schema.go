package store

import (
	"context"
	"fmt"
)

// ApplySchema creates all tables. Idempotent; safe to run at every start.
func (s *store) ApplySchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS modules (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    icon        TEXT NOT NULL DEFAULT '',
    color       TEXT NOT NULL DEFAULT '',
    enabled     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS surveys (
    id                TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    module_id         TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
    year              TEXT NOT NULL,
    label             TEXT NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    response_rate     DOUBLE PRECISION NOT NULL DEFAULT 0,
    women_sample_size INTEGER NOT NULL DEFAULT 0,
    men_sample_size   INTEGER NOT NULL DEFAULT 0,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (module_id, year)
);

CREATE TABLE IF NOT EXISTS categories (
    id            TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    survey_id     TEXT NOT NULL REFERENCES surveys(id) ON DELETE CASCADE,
    key           TEXT NOT NULL,
    title         TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (survey_id, key)
);

CREATE TABLE IF NOT EXISTS indicators (
    id             TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    category_id    TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    key            TEXT NOT NULL,
    title          TEXT NOT NULL,
    unit           TEXT NOT NULL DEFAULT '',
    national_value DOUBLE PRECISION,
    color          TEXT NOT NULL DEFAULT '',
    context        TEXT NOT NULL DEFAULT '',
    analysis       TEXT NOT NULL DEFAULT '',
    is_trend       BOOLEAN NOT NULL DEFAULT FALSE,
    is_rate        BOOLEAN NOT NULL DEFAULT FALSE,
    is_tfr         BOOLEAN NOT NULL DEFAULT FALSE,
    display_order  INTEGER NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (category_id, key)
);

CREATE TABLE IF NOT EXISTS trend_data (
    id            TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    indicator_id  TEXT NOT NULL REFERENCES indicators(id) ON DELETE CASCADE,
    year          TEXT NOT NULL,
    series_name   TEXT NOT NULL DEFAULT 'National',
    value         DOUBLE PRECISION NOT NULL,
    color         TEXT NOT NULL DEFAULT '',
    location      TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0,
    UNIQUE (indicator_id, year)
);

CREATE TABLE IF NOT EXISTS zonal_data (
    id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    indicator_id TEXT NOT NULL REFERENCES indicators(id) ON DELETE CASCADE,
    zone         TEXT NOT NULL,
    value        DOUBLE PRECISION NOT NULL,
    UNIQUE (indicator_id, zone)
);

CREATE TABLE IF NOT EXISTS state_data (
    id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    indicator_id TEXT NOT NULL REFERENCES indicators(id) ON DELETE CASCADE,
    state        TEXT NOT NULL,
    value        DOUBLE PRECISION NOT NULL,
    UNIQUE (indicator_id, state)
);

CREATE INDEX IF NOT EXISTS idx_surveys_module_year ON surveys(module_id, year);
CREATE INDEX IF NOT EXISTS idx_categories_survey ON categories(survey_id);
CREATE INDEX IF NOT EXISTS idx_indicators_category ON indicators(category_id);
CREATE INDEX IF NOT EXISTS idx_trend_data_indicator ON trend_data(indicator_id);
CREATE INDEX IF NOT EXISTS idx_zonal_data_indicator ON zonal_data(indicator_id);
CREATE INDEX IF NOT EXISTS idx_state_data_indicator ON state_data(indicator_id);
`
