package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(day int, code domain.Currency, rate string) domain.Observation {
	return domain.Observation{
		Date:   domain.NewDate(2024, time.January, day),
		Code:   code,
		Count:  1,
		Rate:   decimal.RequireFromString(rate),
		Change: decimal.Zero,
	}
}

func TestObservationStoreCreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Observations

	exists, err := repo.Exists(ctx, obs(10, domain.USD, "0"))
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := repo.Create(ctx, obs(10, domain.USD, "91.00"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repo.Create(ctx, obs(10, domain.USD, "91.00"))
	assert.ErrorIs(t, err, apperrors.ErrStoreWrite)

	exists, err = repo.Exists(ctx, obs(10, domain.USD, "0"))
	require.NoError(t, err)
	assert.True(t, exists)

	updated := obs(10, domain.USD, "95.25")
	require.NoError(t, repo.Update(ctx, updated))

	found, err := repo.FindOne(ctx, obs(10, domain.USD, "0"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID, "update keeps the stored ID")
	assert.True(t, found.Rate.Equal(decimal.RequireFromString("95.25")))

	assert.Equal(t, int64(1), store.Writes.Creates())
	assert.Equal(t, int64(1), store.Writes.Updates())
	assert.Equal(t, int64(2), store.Writes.Total())
}

func TestObservationStoreMissing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Observations

	_, err := repo.FindOne(ctx, obs(1, domain.EUR, "0"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Update(ctx, obs(1, domain.EUR, "1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestObservationStoreListingAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Observations

	for _, o := range []domain.Observation{
		obs(11, domain.USD, "92.50"),
		obs(9, domain.USD, "90.00"),
		obs(10, domain.EUR, "99.00"),
		obs(10, domain.USD, "91.00"),
	} {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	all, err := repo.ListObservationsByCode(ctx, domain.USD)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 9, all[0].Date.Day())
	assert.Equal(t, 10, all[1].Date.Day())
	assert.Equal(t, 11, all[2].Date.Day())

	first, err := repo.ListObservationsPage(ctx, domain.USD, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	after := first[1].Date
	rest, err := repo.ListObservationsPage(ctx, domain.USD, &after, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, 11, rest[0].Date.Day())
}

func TestDeltaStoreListing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Deltas

	for day := 3; day >= 1; day-- {
		_, err := repo.Create(ctx, domain.Delta{Date: domain.NewDate(2024, time.March, day), Code: domain.JPY, Delta: decimal.NewFromInt(int64(day))})
		require.NoError(t, err)
	}

	deltas, err := repo.ListDeltasByCode(ctx, domain.JPY)
	require.NoError(t, err)
	require.Len(t, deltas, 3)
	assert.Equal(t, 1, deltas[0].Date.Day())

	after := domain.NewDate(2024, time.March, 1)
	page, err := repo.ListDeltasPage(ctx, domain.JPY, &after, 10)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestCurrencyCodeStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().CurrencyCodes

	_, err := repo.Create(ctx, domain.CurrencyCode{Code: "USD", Country: "United States", Currency: "US Dollar", Number: 840})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CurrencyCode{Code: "EUR", Country: "Eurozone", Currency: "Euro", Number: 978})
	require.NoError(t, err)

	found, err := repo.FindCurrencyCodeByCode(ctx, "usd")
	require.NoError(t, err)
	assert.Equal(t, 840, found.Number)

	_, err = repo.FindCurrencyCodeByCode(ctx, "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	codes, err := repo.ListCurrencyCodes(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "EUR", codes[0].Code)
}

func TestCurrencyCodeStoreKeysCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().CurrencyCodes

	created, err := repo.Create(ctx, domain.CurrencyCode{Code: "xyz", Country: "Nowhere", Currency: "Test Unit", Number: 999})
	require.NoError(t, err)
	assert.Equal(t, "XYZ", created.Code)

	for _, code := range []string{"xyz", "XYZ", "xYz"} {
		found, err := repo.FindCurrencyCodeByCode(ctx, code)
		require.NoError(t, err, code)
		assert.Equal(t, created.ID, found.ID)
	}

	exists, err := repo.Exists(ctx, domain.CurrencyCode{Code: "XYZ"})
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Create(ctx, domain.CurrencyCode{Code: "XYZ"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	require.NoError(t, repo.Update(ctx, domain.CurrencyCode{Code: "Xyz", Number: 1000}))
	found, err := repo.FindCurrencyCodeByCode(ctx, "xyz")
	require.NoError(t, err)
	assert.Equal(t, 1000, found.Number)
	assert.Equal(t, "XYZ", found.Code)
}

func TestObservationStoreRejectsNegativeCount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Observations

	bad := obs(12, domain.USD, "90.00")
	bad.Count = -1
	_, err := repo.Create(ctx, bad)
	assert.ErrorIs(t, err, apperrors.ErrStoreWrite)

	exists, err := repo.Exists(ctx, bad)
	require.NoError(t, err)
	assert.False(t, exists, "rejected record is not stored")

	_, err = repo.Create(ctx, obs(12, domain.USD, "90.00"))
	require.NoError(t, err)
	err = repo.Update(ctx, bad)
	assert.ErrorIs(t, err, apperrors.ErrStoreWrite)

	found, err := repo.FindOne(ctx, bad)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Count, "rejected update leaves the stored record")
	assert.Equal(t, int64(1), store.Writes.Total())
}

func TestParameterStoreCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewParameterStore()

	_, err := repo.FindParameterByName(ctx, domain.BaselineParameterName)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	created, err := repo.CreateParameterIfAbsent(ctx, domain.Parameter{Name: domain.BaselineParameterName, Value: "2024-01-10"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateParameterIfAbsent(ctx, domain.Parameter{Name: domain.BaselineParameterName, Value: "2030-01-01"})
	require.NoError(t, err)
	assert.False(t, created)

	p, err := repo.FindParameterByName(ctx, domain.BaselineParameterName)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", p.Value)
	assert.Equal(t, int64(2), repo.Reads())
}
