package mapping

import (
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
)

// ToModelObservation converts a domain Observation to a model Observation
func ToModelObservation(d domain.Observation) models.Observation {
	return models.Observation{
		ID:       d.ID,
		RateDate: domain.TruncateToDate(d.Date),
		Code:     d.Code.String(),
		Count:    d.Count,
		Rate:     d.Rate,
		Change:   d.Change,
	}
}

// ToDomainObservation converts a model Observation to a domain Observation
func ToDomainObservation(m models.Observation) domain.Observation {
	return domain.Observation{
		ID:     m.ID,
		Date:   domain.TruncateToDate(m.RateDate),
		Code:   domain.Currency(m.Code),
		Count:  m.Count,
		Rate:   m.Rate,
		Change: m.Change,
	}
}

// ToDomainObservationSlice converts model observations to domain observations
func ToDomainObservationSlice(ms []models.Observation) []domain.Observation {
	ds := make([]domain.Observation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainObservation(m)
	}
	return ds
}

// ToModelDelta converts a domain Delta to a model Delta
func ToModelDelta(d domain.Delta) models.Delta {
	return models.Delta{
		ID:       d.ID,
		RateDate: domain.TruncateToDate(d.Date),
		Code:     d.Code.String(),
		Delta:    d.Delta,
	}
}

// ToDomainDelta converts a model Delta to a domain Delta
func ToDomainDelta(m models.Delta) domain.Delta {
	return domain.Delta{
		ID:    m.ID,
		Date:  domain.TruncateToDate(m.RateDate),
		Code:  domain.Currency(m.Code),
		Delta: m.Delta,
	}
}

// ToDomainDeltaSlice converts model deltas to domain deltas
func ToDomainDeltaSlice(ms []models.Delta) []domain.Delta {
	ds := make([]domain.Delta, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDelta(m)
	}
	return ds
}
