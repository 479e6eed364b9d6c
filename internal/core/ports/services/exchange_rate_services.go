package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/dto"
)

// RateSyncSvc pulls observations from the rate source into the store.
type RateSyncSvc interface {
	// Sync fetches observations for one currency over [start, end] and upserts them.
	Sync(ctx context.Context, currency domain.Currency, start, end time.Time) error

	// SyncCurrencies runs Sync for every currency, isolating failures per currency.
	SyncCurrencies(ctx context.Context, currencies []domain.Currency, start, end time.Time) ([]dto.CurrencyOutcome, error)
}

// DeltaDerivationSvc recomputes delta series against the baseline date.
type DeltaDerivationSvc interface {
	// DeriveDeltas recomputes the full delta history of one currency.
	DeriveDeltas(ctx context.Context, currency domain.Currency) error

	// DeriveDeltasForCurrencies runs DeriveDeltas per currency, isolating failures.
	DeriveDeltasForCurrencies(ctx context.Context, currencies []domain.Currency) []dto.CurrencyOutcome
}

// ExchangeRateReaderSvc exposes the stored series and the baseline.
type ExchangeRateReaderSvc interface {
	ListObservations(ctx context.Context, currency domain.Currency, params dto.ListSeriesParams) (*dto.ListObservationsResponse, error)
	ListDeltas(ctx context.Context, currency domain.Currency, params dto.ListSeriesParams) (*dto.ListDeltasResponse, error)

	// GetBaseline returns the resolved baseline date.
	GetBaseline(ctx context.Context) (time.Time, error)
}

// ExchangeRateSvcFacade combines all exchange rate service interfaces
type ExchangeRateSvcFacade interface {
	RateSyncSvc
	DeltaDerivationSvc
	ExchangeRateReaderSvc
}
