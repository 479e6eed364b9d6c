package sources

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RateSource fetches daily observations for a currency over an inclusive
// range of calendar days. Failures are reported as apperrors.ErrSource and
// are not retried.
type RateSource interface {
	FetchRates(ctx context.Context, currency domain.Currency, start, end time.Time) ([]domain.Observation, error)
}

// CodeSource fetches the currency-code reference list.
type CodeSource interface {
	FetchCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error)
}
