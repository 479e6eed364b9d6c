package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxParameterRepository struct {
	BaseRepository
}

func newPgxParameterRepository(pool *pgxpool.Pool) *PgxParameterRepository {
	return &PgxParameterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ParameterRepositoryFacade = (*PgxParameterRepository)(nil)

// FindParameterByName retrieves a named parameter.
func (r *PgxParameterRepository) FindParameterByName(ctx context.Context, name string) (*domain.Parameter, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, value FROM parameters WHERE name = $1`, name)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query parameter", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Parameter])
	if err != nil {
		return nil, readError(err, "parameter %s", name)
	}
	p := mapping.ToDomainParameter(m)
	return &p, nil
}

// CreateParameterIfAbsent inserts the parameter unless the name is taken.
func (r *PgxParameterRepository) CreateParameterIfAbsent(ctx context.Context, parameter domain.Parameter) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`INSERT INTO parameters (name, value) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		parameter.Name, parameter.Value,
	)
	if err != nil {
		return false, writeError(err, "failed to create parameter %s", parameter.Name)
	}
	return tag.RowsAffected() == 1, nil
}
