package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// CurrencyCodeReader defines read operations for the currency-code reference list
type CurrencyCodeReader interface {
	// FindCurrencyCodeByCode retrieves a currency code entry by its ISO code.
	FindCurrencyCodeByCode(ctx context.Context, code string) (*domain.CurrencyCode, error)

	// ListCurrencyCodes retrieves all currency codes ordered by code.
	ListCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error)
}

// CurrencyCodeRepositoryFacade combines all currency-code repository interfaces
type CurrencyCodeRepositoryFacade interface {
	KeyedStore[domain.CurrencyCode]
	CurrencyCodeReader
}
