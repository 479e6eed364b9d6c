package memory

import portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"

// Store bundles one in-memory store per entity kind sharing a write counter.
type Store struct {
	Writes        *WriteCounter
	Observations  *ObservationStore
	Deltas        *DeltaStore
	CurrencyCodes *CurrencyCodeStore
	Parameters    *ParameterStore
}

// NewStore creates an empty Store.
func NewStore() *Store {
	w := &WriteCounter{}
	return &Store{
		Writes:        w,
		Observations:  NewObservationStore(w),
		Deltas:        NewDeltaStore(w),
		CurrencyCodes: NewCurrencyCodeStore(w),
		Parameters:    NewParameterStore(),
	}
}

// Provider exposes the stores as a portsrepo.RepositoryProvider.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ObservationRepo:  s.Observations,
		DeltaRepo:        s.Deltas,
		CurrencyCodeRepo: s.CurrencyCodes,
		ParameterRepo:    s.Parameters,
	}
}
