package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// DeltaReader defines read operations for derived deltas
type DeltaReader interface {
	// ListDeltasByCode retrieves every stored delta of a currency, ordered by date.
	ListDeltasByCode(ctx context.Context, code domain.Currency) ([]domain.Delta, error)

	// ListDeltasPage retrieves up to limit deltas of a currency dated after the given date.
	ListDeltasPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Delta, error)
}

// DeltaRepositoryFacade combines all delta-related repository interfaces
type DeltaRepositoryFacade interface {
	KeyedStore[domain.Delta]
	DeltaReader
}
