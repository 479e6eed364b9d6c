package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgErrIntegrityClass  = "23"    // integrity_constraint_violation
	pgErrUniqueViolation = "23505" // unique_violation
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// constraintViolation returns the PostgreSQL error if err is any class 23
// integrity constraint violation (unique, check, not-null, foreign key).
func constraintViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == pgErrIntegrityClass {
		return pgErr, true
	}
	return nil, false
}

// writeError classifies a failed write. Constraint violations are store
// write errors; unique violations are also duplicates.
func writeError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	pgErr, ok := constraintViolation(err)
	if !ok {
		return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
	}
	if pgErr.Code == pgErrUniqueViolation {
		return apperrors.NewStoreWriteError(msg, errors.Join(apperrors.ErrDuplicate, err))
	}
	return apperrors.NewStoreWriteError(msg, err)
}

// readError classifies a failed single-row read.
func readError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(msg + ": not found")
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
