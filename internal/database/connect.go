// Package database opens the Postgres pool and applies schema migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// Backoff bounds for Connect. Vars so tests can shorten them.
var (
	backoffBase = 500 * time.Millisecond
	backoffCap  = 5 * time.Second
)

// Connect opens a pgxpool for dsn and pings it, retrying with exponential
// backoff up to attempts times in total. A malformed dsn fails immediately.
func Connect(ctx context.Context, dsn string, attempts int, log *slog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database.Connect: parse config: %w", err)
	}
	if attempts < 1 {
		attempts = 1
	}

	b := retry.NewExponential(backoffBase)
	b = retry.WithCappedDuration(backoffCap, b)
	b = retry.WithMaxRetries(uint64(attempts-1), b)

	var (
		pool    *pgxpool.Pool
		attempt int
	)
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			log.WarnContext(ctx, "database not ready",
				"attempt", attempt,
				"max_attempts", attempts,
				"error", err,
			)
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("database.Connect: after %d attempt(s): %w", attempt, err)
	}
	return pool, nil
}
