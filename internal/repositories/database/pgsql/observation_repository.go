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

const observationColumns = `id, rate_date, code, unit_count, rate, change`

// PgxObservationRepository implements portsrepo.ObservationRepositoryFacade using pgxpool.
type PgxObservationRepository struct {
	BaseRepository
}

func newPgxObservationRepository(pool *pgxpool.Pool) *PgxObservationRepository {
	return &PgxObservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ObservationRepositoryFacade = (*PgxObservationRepository)(nil)

func (r *PgxObservationRepository) Exists(ctx context.Context, candidate domain.Observation) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM observations WHERE rate_date = $1 AND code = $2)`,
		domain.TruncateToDate(candidate.Date), candidate.Code.String(),
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check observation", err)
	}
	return exists, nil
}

func (r *PgxObservationRepository) Create(ctx context.Context, candidate domain.Observation) (domain.Observation, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Observation{}, apperrors.NewStoreWriteError("failed to create observation", err)
	}
	m := mapping.ToModelObservation(candidate)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO observations (rate_date, code, unit_count, rate, change)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		m.RateDate, m.Code, m.Count, m.Rate, m.Change,
	).Scan(&m.ID)
	if err != nil {
		return domain.Observation{}, writeError(err, "failed to create observation %s %s", m.Code, domain.FormatDate(m.RateDate))
	}
	return mapping.ToDomainObservation(m), nil
}

func (r *PgxObservationRepository) FindOne(ctx context.Context, candidate domain.Observation) (domain.Observation, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+observationColumns+` FROM observations WHERE rate_date = $1 AND code = $2`,
		domain.TruncateToDate(candidate.Date), candidate.Code.String(),
	)
	if err != nil {
		return domain.Observation{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to query observation", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Observation])
	if err != nil {
		return domain.Observation{}, readError(err, "observation %s %s", candidate.Code, domain.FormatDate(candidate.Date))
	}
	return mapping.ToDomainObservation(m), nil
}

func (r *PgxObservationRepository) Update(ctx context.Context, record domain.Observation) error {
	if err := record.Validate(); err != nil {
		return apperrors.NewStoreWriteError("failed to update observation", err)
	}
	m := mapping.ToModelObservation(record)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE observations
		SET unit_count = $3, rate = $4, change = $5
		WHERE rate_date = $1 AND code = $2`,
		m.RateDate, m.Code, m.Count, m.Rate, m.Change,
	)
	if err != nil {
		return writeError(err, "failed to update observation %s %s", m.Code, domain.FormatDate(m.RateDate))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("observation %s %s not found", m.Code, domain.FormatDate(m.RateDate)))
	}
	return nil
}

func (r *PgxObservationRepository) ListObservationsByCode(ctx context.Context, code domain.Currency) ([]domain.Observation, error) {
	return r.list(ctx,
		`SELECT `+observationColumns+` FROM observations WHERE code = $1 ORDER BY rate_date`,
		code.String())
}

func (r *PgxObservationRepository) ListObservationsPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Observation, error) {
	return r.list(ctx, `
		SELECT `+observationColumns+` FROM observations
		WHERE code = $1 AND ($2::date IS NULL OR rate_date > $2::date)
		ORDER BY rate_date
		LIMIT $3`,
		code.String(), after, limit)
}

func (r *PgxObservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Observation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query observations", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Observation])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan observations", err)
	}
	return mapping.ToDomainObservationSlice(ms), nil
}
