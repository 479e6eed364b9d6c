package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// ObservationReader defines read operations for exchange-rate observations
type ObservationReader interface {
	// ListObservationsByCode retrieves every stored observation of a currency, ordered by date.
	ListObservationsByCode(ctx context.Context, code domain.Currency) ([]domain.Observation, error)

	// ListObservationsPage retrieves up to limit observations of a currency dated after the
	// given date (nil means from the beginning), ordered by date.
	ListObservationsPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Observation, error)
}

// ObservationRepositoryFacade combines all observation-related repository interfaces
type ObservationRepositoryFacade interface {
	KeyedStore[domain.Observation]
	ObservationReader
}
