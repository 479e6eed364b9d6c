package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyCodeColumns = `id, country, currency, code, number`

type PgxCurrencyCodeRepository struct {
	BaseRepository
}

// newPgxCurrencyCodeRepository creates a new repository for the currency-code catalog.
func newPgxCurrencyCodeRepository(pool *pgxpool.Pool) *PgxCurrencyCodeRepository {
	return &PgxCurrencyCodeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyCodeRepositoryFacade = (*PgxCurrencyCodeRepository)(nil)

func (r *PgxCurrencyCodeRepository) Exists(ctx context.Context, candidate domain.CurrencyCode) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM currency_codes WHERE code = $1)`,
		strings.ToUpper(candidate.Code),
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check currency code", err)
	}
	return exists, nil
}

func (r *PgxCurrencyCodeRepository) Create(ctx context.Context, candidate domain.CurrencyCode) (domain.CurrencyCode, error) {
	m := mapping.ToModelCurrencyCode(candidate)
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO currency_codes (country, currency, code, number) VALUES ($1, $2, $3, $4) RETURNING id`,
		m.Country, m.Currency, m.Code, m.Number,
	).Scan(&m.ID)
	if err != nil {
		return domain.CurrencyCode{}, writeError(err, "failed to create currency code %s", m.Code)
	}
	return mapping.ToDomainCurrencyCode(m), nil
}

func (r *PgxCurrencyCodeRepository) FindOne(ctx context.Context, candidate domain.CurrencyCode) (domain.CurrencyCode, error) {
	found, err := r.FindCurrencyCodeByCode(ctx, candidate.Code)
	if err != nil {
		return domain.CurrencyCode{}, err
	}
	return *found, nil
}

func (r *PgxCurrencyCodeRepository) Update(ctx context.Context, record domain.CurrencyCode) error {
	m := mapping.ToModelCurrencyCode(record)
	tag, err := r.Pool.Exec(ctx,
		`UPDATE currency_codes SET country = $2, currency = $3, number = $4 WHERE code = $1`,
		m.Code, m.Country, m.Currency, m.Number,
	)
	if err != nil {
		return writeError(err, "failed to update currency code %s", m.Code)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("currency code %s not found", m.Code))
	}
	return nil
}

// FindCurrencyCodeByCode retrieves a catalog entry by its ISO code.
func (r *PgxCurrencyCodeRepository) FindCurrencyCodeByCode(ctx context.Context, code string) (*domain.CurrencyCode, error) {
	code = strings.ToUpper(code)
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyCodeColumns+` FROM currency_codes WHERE code = $1`, code)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query currency code", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CurrencyCode])
	if err != nil {
		return nil, readError(err, "currency code %s", code)
	}
	d := mapping.ToDomainCurrencyCode(m)
	return &d, nil
}

// ListCurrencyCodes retrieves the whole catalog ordered by code.
func (r *PgxCurrencyCodeRepository) ListCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyCodeColumns+` FROM currency_codes ORDER BY code`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query currency codes", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CurrencyCode])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan currency codes", err)
	}
	return mapping.ToDomainCurrencyCodeSlice(ms), nil
}
