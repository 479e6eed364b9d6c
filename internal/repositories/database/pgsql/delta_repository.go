package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const deltaColumns = `id, rate_date, code, delta`

// PgxDeltaRepository implements portsrepo.DeltaRepositoryFacade using pgxpool.
type PgxDeltaRepository struct {
	BaseRepository
}

func newPgxDeltaRepository(pool *pgxpool.Pool) *PgxDeltaRepository {
	return &PgxDeltaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeltaRepositoryFacade = (*PgxDeltaRepository)(nil)

func (r *PgxDeltaRepository) Exists(ctx context.Context, candidate domain.Delta) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deltas WHERE rate_date = $1 AND code = $2)`,
		domain.TruncateToDate(candidate.Date), candidate.Code.String(),
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check delta", err)
	}
	return exists, nil
}

func (r *PgxDeltaRepository) Create(ctx context.Context, candidate domain.Delta) (domain.Delta, error) {
	m := mapping.ToModelDelta(candidate)
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO deltas (rate_date, code, delta) VALUES ($1, $2, $3) RETURNING id`,
		m.RateDate, m.Code, m.Delta,
	).Scan(&m.ID)
	if err != nil {
		return domain.Delta{}, writeError(err, "failed to create delta %s %s", m.Code, domain.FormatDate(m.RateDate))
	}
	return mapping.ToDomainDelta(m), nil
}

func (r *PgxDeltaRepository) FindOne(ctx context.Context, candidate domain.Delta) (domain.Delta, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+deltaColumns+` FROM deltas WHERE rate_date = $1 AND code = $2`,
		domain.TruncateToDate(candidate.Date), candidate.Code.String(),
	)
	if err != nil {
		return domain.Delta{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to query delta", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Delta])
	if err != nil {
		return domain.Delta{}, readError(err, "delta %s %s", candidate.Code, domain.FormatDate(candidate.Date))
	}
	return mapping.ToDomainDelta(m), nil
}

func (r *PgxDeltaRepository) Update(ctx context.Context, record domain.Delta) error {
	m := mapping.ToModelDelta(record)
	tag, err := r.Pool.Exec(ctx,
		`UPDATE deltas SET delta = $3 WHERE rate_date = $1 AND code = $2`,
		m.RateDate, m.Code, m.Delta,
	)
	if err != nil {
		return writeError(err, "failed to update delta %s %s", m.Code, domain.FormatDate(m.RateDate))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("delta %s %s not found", m.Code, domain.FormatDate(m.RateDate)))
	}
	return nil
}

func (r *PgxDeltaRepository) ListDeltasByCode(ctx context.Context, code domain.Currency) ([]domain.Delta, error) {
	return r.list(ctx,
		`SELECT `+deltaColumns+` FROM deltas WHERE code = $1 ORDER BY rate_date`,
		code.String())
}

func (r *PgxDeltaRepository) ListDeltasPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Delta, error) {
	return r.list(ctx, `
		SELECT `+deltaColumns+` FROM deltas
		WHERE code = $1 AND ($2::date IS NULL OR rate_date > $2::date)
		ORDER BY rate_date
		LIMIT $3`,
		code.String(), after, limit)
}

func (r *PgxDeltaRepository) list(ctx context.Context, query string, args ...any) ([]domain.Delta, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query deltas", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Delta])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan deltas", err)
	}
	return mapping.ToDomainDeltaSlice(ms), nil
}
