package dto

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxSyncSpanDays bounds the requested sync range (two years).
const MaxSyncSpanDays = 730

// SyncRatesRequest defines the body of a rate synchronization request.
// Range rules beyond the field tags are enforced by a struct-level validator
// registered through RegisterValidations.
type SyncRatesRequest struct {
	Currencies []string `json:"currencies" binding:"required,min=1,dive,currency"`
	StartDate  string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string   `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// DeriveDeltasRequest defines the body of a delta derivation request.
type DeriveDeltasRequest struct {
	Currencies []string `json:"currencies" binding:"required,min=1,dive,currency"`
}

// ListSeriesParams carries the paging query of a series listing.
type ListSeriesParams struct {
	Limit     int     `form:"limit,default=100" binding:"min=1,max=1000"`
	NextToken *string `form:"nextToken"`
}

// CurrencyOutcome reports how a batch operation went for one currency.
type CurrencyOutcome struct {
	Currency string `json:"currency"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// BatchResponse wraps the per-currency outcomes of a batch operation.
type BatchResponse struct {
	Results []CurrencyOutcome `json:"results"`
}

// Failed reports whether any currency in the batch failed.
func (r BatchResponse) Failed() bool {
	for _, o := range r.Results {
		if !o.Success {
			return true
		}
	}
	return false
}

// ObservationResponse defines the API shape of a stored observation.
type ObservationResponse struct {
	Date   string          `json:"date"`
	Code   string          `json:"code"`
	Count  int             `json:"count"`
	Rate   decimal.Decimal `json:"rate"`
	Change decimal.Decimal `json:"change"`
}

// ListObservationsResponse is one page of an observation series.
type ListObservationsResponse struct {
	Observations []ObservationResponse `json:"observations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// DeltaResponse defines the API shape of a stored delta.
type DeltaResponse struct {
	Date  string          `json:"date"`
	Code  string          `json:"code"`
	Delta decimal.Decimal `json:"delta"`
}

// ListDeltasResponse is one page of a delta series.
type ListDeltasResponse struct {
	Deltas    []DeltaResponse `json:"deltas"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// BaselineResponse carries the resolved baseline date.
type BaselineResponse struct {
	Date string `json:"date"`
}

// ToObservationResponse converts a domain.Observation to its API shape.
func ToObservationResponse(o domain.Observation) ObservationResponse {
	return ObservationResponse{
		Date:   domain.FormatDate(o.Date),
		Code:   o.Code.String(),
		Count:  o.Count,
		Rate:   o.Rate,
		Change: o.Change,
	}
}

// ToObservationResponses converts a slice of observations.
func ToObservationResponses(obs []domain.Observation) []ObservationResponse {
	responses := make([]ObservationResponse, len(obs))
	for i, o := range obs {
		responses[i] = ToObservationResponse(o)
	}
	return responses
}

// ToDeltaResponse converts a domain.Delta to its API shape.
func ToDeltaResponse(d domain.Delta) DeltaResponse {
	return DeltaResponse{
		Date:  domain.FormatDate(d.Date),
		Code:  d.Code.String(),
		Delta: d.Delta,
	}
}

// ToDeltaResponses converts a slice of deltas.
func ToDeltaResponses(deltas []domain.Delta) []DeltaResponse {
	responses := make([]DeltaResponse, len(deltas))
	for i, d := range deltas {
		responses[i] = ToDeltaResponse(d)
	}
	return responses
}
