package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
)

// CurrencyCodeStore is an in-memory implementation of portsrepo.CurrencyCodeRepositoryFacade.
type CurrencyCodeStore struct {
	*table[domain.CurrencyCode]
}

// NewCurrencyCodeStore creates an empty currency-code store reporting writes to w.
func NewCurrencyCodeStore(w *WriteCounter) *CurrencyCodeStore {
	return &CurrencyCodeStore{table: newTable(identity[domain.CurrencyCode]{
		kind: "currency code",
		key:  func(c domain.CurrencyCode) string { return strings.ToUpper(c.Code) },
		idOf: func(c domain.CurrencyCode) int64 { return c.ID },
		// Codes are stored uppercased, matching the postgres mapping.
		withID: func(c domain.CurrencyCode, id int64) domain.CurrencyCode {
			c.ID = id
			c.Code = strings.ToUpper(c.Code)
			return c
		},
	}, w)}
}

var _ portsrepo.CurrencyCodeRepositoryFacade = (*CurrencyCodeStore)(nil)

func (s *CurrencyCodeStore) FindCurrencyCodeByCode(ctx context.Context, code string) (*domain.CurrencyCode, error) {
	row, err := s.FindOne(ctx, domain.CurrencyCode{Code: strings.ToUpper(code)})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *CurrencyCodeStore) ListCurrencyCodes(_ context.Context) ([]domain.CurrencyCode, error) {
	return s.selectRows(
		func(domain.CurrencyCode) bool { return true },
		func(a, b domain.CurrencyCode) bool { return a.Code < b.Code },
	), nil
}

// ParameterStore is an in-memory implementation of portsrepo.ParameterRepositoryFacade.
type ParameterStore struct {
	mu     sync.RWMutex
	data   map[string]domain.Parameter
	nextID int64
	reads  int64
}

// NewParameterStore creates an empty parameter store.
func NewParameterStore() *ParameterStore {
	return &ParameterStore{data: make(map[string]domain.Parameter)}
}

var _ portsrepo.ParameterRepositoryFacade = (*ParameterStore)(nil)

func (s *ParameterStore) FindParameterByName(_ context.Context, name string) (*domain.Parameter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	p, ok := s.data[name]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("parameter %s not found", name))
	}
	return &p, nil
}

func (s *ParameterStore) CreateParameterIfAbsent(_ context.Context, parameter domain.Parameter) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[parameter.Name]; ok {
		return false, nil
	}
	s.nextID++
	parameter.ID = s.nextID
	s.data[parameter.Name] = parameter
	return true, nil
}

// Reads returns how many lookups have been served.
func (s *ParameterStore) Reads() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads
}
