package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, currency domain.Currency, start, end time.Time) ([]domain.Observation, error) {
	args := m.Called(ctx, currency, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

// --- Mock CodeSource ---
type MockCodeSource struct {
	mock.Mock
}

func (m *MockCodeSource) FetchCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyCode), args.Error(1)
}

// --- Mock KeyedStore ---
type MockKeyedStore[T any] struct {
	mock.Mock
}

func (m *MockKeyedStore[T]) Exists(ctx context.Context, candidate T) (bool, error) {
	args := m.Called(ctx, candidate)
	return args.Bool(0), args.Error(1)
}

func (m *MockKeyedStore[T]) Create(ctx context.Context, candidate T) (T, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockKeyedStore[T]) FindOne(ctx context.Context, candidate T) (T, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockKeyedStore[T]) Update(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- fixtures ---

func day(month time.Month, d int) time.Time {
	return domain.NewDate(2024, month, d)
}

func usd(date time.Time, rate string) domain.Observation {
	return domain.Observation{
		Date:   date,
		Code:   domain.USD,
		Count:  1,
		Rate:   decimal.RequireFromString(rate),
		Change: decimal.Zero,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
