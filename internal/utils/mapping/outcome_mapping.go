package mapping

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/dto"
)

// ToCurrencyOutcome reports the result of a per-currency operation.
func ToCurrencyOutcome(c domain.Currency, err error) dto.CurrencyOutcome {
	if err != nil {
		return dto.CurrencyOutcome{Currency: c.String(), Success: false, Error: err.Error()}
	}
	return dto.CurrencyOutcome{Currency: c.String(), Success: true}
}
