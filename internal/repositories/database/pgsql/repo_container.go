package pgsql

import (
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ObservationRepo:  newPgxObservationRepository(dbPool),
		DeltaRepo:        newPgxDeltaRepository(dbPool),
		CurrencyCodeRepo: newPgxCurrencyCodeRepository(dbPool),
		ParameterRepo:    newPgxParameterRepository(dbPool),
	}
}
