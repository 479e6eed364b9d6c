package dto

import "github.com/SscSPs/fx_rates_app/internal/core/domain"

// CurrencyCodeResponse defines the API shape of a currency-code catalog entry.
type CurrencyCodeResponse struct {
	Code     string `json:"code"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Number   int    `json:"number"`
}

// RefreshCurrencyCodesResponse reports the result of a catalog refresh.
type RefreshCurrencyCodesResponse struct {
	Processed int `json:"processed"`
}

// ToCurrencyCodeResponse converts a domain.CurrencyCode to its API shape.
func ToCurrencyCodeResponse(c domain.CurrencyCode) CurrencyCodeResponse {
	return CurrencyCodeResponse{
		Code:     c.Code,
		Country:  c.Country,
		Currency: c.Currency,
		Number:   c.Number,
	}
}

// ToCurrencyCodeResponses converts a slice of catalog entries.
func ToCurrencyCodeResponses(codes []domain.CurrencyCode) []CurrencyCodeResponse {
	responses := make([]CurrencyCodeResponse, len(codes))
	for i, c := range codes {
		responses[i] = ToCurrencyCodeResponse(c)
	}
	return responses
}
