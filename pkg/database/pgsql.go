package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions bounds how hard NewPgxPool tries to reach the database.
type PoolOptions struct {
	// ConnectTries is the number of connect-and-ping attempts (at least one).
	ConnectTries int
	// ConnectTimeout bounds each attempt.
	ConnectTimeout time.Duration
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
}

// NewPgxPool creates a new PostgreSQL connection pool, retrying the initial
// connection up to opts.ConnectTries times. Queries are never retried.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	tries := opts.ConnectTries
	if tries < 1 {
		tries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= tries; attempt++ {
		pool, err := connect(ctx, config, opts.ConnectTimeout)
		if err == nil {
			slog.Info("Successfully connected to PostgreSQL database.", slog.Int("attempt", attempt))
			return pool, nil
		}
		lastErr = err
		slog.Warn("Database connection attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("tries", tries),
			slog.String("error", err.Error()))

		if attempt < tries && opts.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}
	}
	return nil, fmt.Errorf("failed to connect after %d attempt(s): %w", tries, lastErr)
}

func connect(ctx context.Context, config *pgxpool.Config, timeout time.Duration) (*pgxpool.Pool, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		slog.Info("PostgreSQL connection pool closed.")
	}
}
