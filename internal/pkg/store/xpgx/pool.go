// Package xpgx wraps a pgx connection pool with helpers that execute
// squirrel builders directly and scan rows into db-tagged structs.
package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niepng/niep-backend/internal/pkg/logger"
)

type Pool struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, dsn string) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func (p *Pool) Close() {
	p.pool.Close()
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, args...)
}

// Execx executes a squirrel builder.
func (p *Pool) Execx(ctx context.Context, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}

	start := time.Now()
	tag, err := p.pool.Exec(ctx, sql, args...)
	logQuery(ctx, sql, start, err)
	return tag, err
}

// Getx executes a squirrel builder expected to yield exactly one row.
func Getx[T any](ctx context.Context, p *Pool, q sq.Sqlizer) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	start := time.Now()
	rows, err := p.pool.Query(ctx, sql, args...)
	logQuery(ctx, sql, start, err)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx executes a squirrel builder and collects all rows.
func Selectx[T any](ctx context.Context, p *Pool, q sq.Sqlizer) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	start := time.Now()
	rows, err := p.pool.Query(ctx, sql, args...)
	logQuery(ctx, sql, start, err)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

func logQuery(ctx context.Context, sql string, start time.Time, err error) {
	if err != nil {
		logger.Errorf(ctx, "query failed after %s: %s: %s", time.Since(start), sql, err.Error())
		return
	}
	logger.Debugf(ctx, "executed query in %s: %s", time.Since(start), sql)
}
