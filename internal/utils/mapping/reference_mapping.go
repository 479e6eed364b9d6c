package mapping

import (
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
)

// ToModelCurrencyCode converts a domain CurrencyCode to a model CurrencyCode
func ToModelCurrencyCode(d domain.CurrencyCode) models.CurrencyCode {
	return models.CurrencyCode{
		ID:       d.ID,
		Country:  d.Country,
		Currency: d.Currency,
		Code:     strings.ToUpper(d.Code),
		Number:   d.Number,
	}
}

// ToDomainCurrencyCode converts a model CurrencyCode to a domain CurrencyCode
func ToDomainCurrencyCode(m models.CurrencyCode) domain.CurrencyCode {
	return domain.CurrencyCode{
		ID:       m.ID,
		Country:  m.Country,
		Currency: m.Currency,
		Code:     m.Code,
		Number:   m.Number,
	}
}

// ToDomainCurrencyCodeSlice converts model currency codes to domain currency codes
func ToDomainCurrencyCodeSlice(ms []models.CurrencyCode) []domain.CurrencyCode {
	ds := make([]domain.CurrencyCode, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyCode(m)
	}
	return ds
}

// ToDomainParameter converts a model Parameter to a domain Parameter
func ToDomainParameter(m models.Parameter) domain.Parameter {
	return domain.Parameter{ID: m.ID, Name: m.Name, Value: m.Value}
}
