package services

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// CurrencyCodeReaderSvc defines read operations for the currency-code catalog
type CurrencyCodeReaderSvc interface {
	GetCurrencyCode(ctx context.Context, code string) (*domain.CurrencyCode, error)
	ListCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error)
}

// CurrencyCodeWriterSvc defines write operations for the currency-code catalog
type CurrencyCodeWriterSvc interface {
	// RefreshFromSource fetches the catalog and upserts every entry, returning
	// the number of entries processed.
	RefreshFromSource(ctx context.Context) (int, error)
}

// CurrencyCodeSvcFacade combines all currency-code service interfaces
type CurrencyCodeSvcFacade interface {
	CurrencyCodeReaderSvc
	CurrencyCodeWriterSvc
}
