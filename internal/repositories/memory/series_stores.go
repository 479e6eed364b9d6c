package memory

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
)

func seriesKey(date time.Time, code domain.Currency) string {
	return domain.FormatDate(date) + "/" + code.String()
}

// ObservationStore is an in-memory implementation of portsrepo.ObservationRepositoryFacade.
type ObservationStore struct {
	*table[domain.Observation]
}

// NewObservationStore creates an empty observation store reporting writes to w.
func NewObservationStore(w *WriteCounter) *ObservationStore {
	return &ObservationStore{table: newTable(identity[domain.Observation]{
		kind:     "observation",
		key:      func(o domain.Observation) string { return seriesKey(o.Date, o.Code) },
		idOf:     func(o domain.Observation) int64 { return o.ID },
		withID:   func(o domain.Observation, id int64) domain.Observation { o.ID = id; return o },
		validate: domain.Observation.Validate,
	}, w)}
}

var _ portsrepo.ObservationRepositoryFacade = (*ObservationStore)(nil)

func observationDate(o domain.Observation) time.Time { return o.Date }

func (s *ObservationStore) ListObservationsByCode(_ context.Context, code domain.Currency) ([]domain.Observation, error) {
	return s.selectRows(
		func(o domain.Observation) bool { return o.Code == code },
		func(a, b domain.Observation) bool { return a.Date.Before(b.Date) },
	), nil
}

func (s *ObservationStore) ListObservationsPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Observation, error) {
	all, err := s.ListObservationsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return page(all, observationDate, after, limit), nil
}

// DeltaStore is an in-memory implementation of portsrepo.DeltaRepositoryFacade.
type DeltaStore struct {
	*table[domain.Delta]
}

// NewDeltaStore creates an empty delta store reporting writes to w.
func NewDeltaStore(w *WriteCounter) *DeltaStore {
	return &DeltaStore{table: newTable(identity[domain.Delta]{
		kind:   "delta",
		key:    func(d domain.Delta) string { return seriesKey(d.Date, d.Code) },
		idOf:   func(d domain.Delta) int64 { return d.ID },
		withID: func(d domain.Delta, id int64) domain.Delta { d.ID = id; return d },
	}, w)}
}

var _ portsrepo.DeltaRepositoryFacade = (*DeltaStore)(nil)

func deltaDate(d domain.Delta) time.Time { return d.Date }

func (s *DeltaStore) ListDeltasByCode(_ context.Context, code domain.Currency) ([]domain.Delta, error) {
	return s.selectRows(
		func(d domain.Delta) bool { return d.Code == code },
		func(a, b domain.Delta) bool { return a.Date.Before(b.Date) },
	), nil
}

func (s *DeltaStore) ListDeltasPage(ctx context.Context, code domain.Currency, after *time.Time, limit int) ([]domain.Delta, error) {
	all, err := s.ListDeltasByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return page(all, deltaDate, after, limit), nil
}
