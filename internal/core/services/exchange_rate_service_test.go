package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	store       *memory.Store
	rateSource  *MockRateSource
	codeSource  *MockCodeSource
	service     portssvc.ExchangeRateSvcFacade
	ctx         context.Context
	baselineDay time.Time
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.rateSource = new(MockRateSource)
	suite.codeSource = new(MockCodeSource)
	suite.ctx = context.Background()
	suite.baselineDay = day(time.January, 10)

	container := services.NewServiceContainer(suite.store.Provider(), suite.rateSource, suite.codeSource)
	suite.service = container.ExchangeRate
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

func (suite *ExchangeRateServiceTestSuite) seedBaseline() {
	seedBaseline(suite.T(), suite.store.Parameters, domain.FormatDate(suite.baselineDay))
}

func (suite *ExchangeRateServiceTestSuite) seedObservations(obs ...domain.Observation) {
	for _, o := range obs {
		_, err := suite.store.Observations.Create(suite.ctx, o)
		suite.Require().NoError(err)
	}
}

func (suite *ExchangeRateServiceTestSuite) deltasByDay(code domain.Currency) map[string]string {
	deltas, err := suite.store.Deltas.ListDeltasByCode(suite.ctx, code)
	suite.Require().NoError(err)
	out := make(map[string]string, len(deltas))
	for _, d := range deltas {
		out[domain.FormatDate(d.Date)] = d.Delta.StringFixed(2)
	}
	return out
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_Scenario() {
	suite.seedBaseline()
	window := []domain.Observation{
		usd(day(time.January, 9), "90.00"),
		usd(day(time.January, 10), "91.00"),
		usd(day(time.January, 11), "92.50"),
	}
	suite.seedObservations(window...)
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, day(time.January, 9), day(time.January, 11)).
		Return(window, nil).Once()

	err := suite.service.DeriveDeltas(suite.ctx, domain.USD)

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"2024-01-09": "-1.00",
		"2024-01-10": "0.00",
		"2024-01-11": "1.50",
	}, suite.deltasByDay(domain.USD))
	suite.rateSource.AssertExpectations(suite.T())

	deltas, err := suite.store.Deltas.ListDeltasByCode(suite.ctx, domain.USD)
	suite.Require().NoError(err)
	suite.True(deltas[0].Delta.Equal(dec("-1")), "exact decimal arithmetic")
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_FetchesBaselineDayWhenMissing() {
	suite.seedBaseline()
	suite.seedObservations(usd(day(time.January, 9), "90.00"))
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{usd(day(time.January, 10), "91.00")}, nil).Once()

	suite.Require().NoError(suite.service.DeriveDeltas(suite.ctx, domain.USD))

	suite.Equal(map[string]string{
		"2024-01-09": "-1.00",
		"2024-01-10": "0.00",
	}, suite.deltasByDay(domain.USD))
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_PivotChangeRipplesThroughHistory() {
	suite.seedBaseline()
	suite.seedObservations(
		usd(day(time.January, 2), "80.00"),
		usd(day(time.January, 9), "90.00"),
		usd(day(time.January, 10), "91.00"),
		usd(day(time.January, 11), "92.50"),
	)
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{usd(day(time.January, 10), "91.00")}, nil).Once()
	suite.Require().NoError(suite.service.DeriveDeltas(suite.ctx, domain.USD))
	suite.Equal("-11.00", suite.deltasByDay(domain.USD)["2024-01-02"])

	// The baseline day is corrected at the source.
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{usd(day(time.January, 10), "91.50")}, nil).Once()
	suite.Require().NoError(suite.service.DeriveDeltas(suite.ctx, domain.USD))

	suite.Equal(map[string]string{
		"2024-01-02": "-11.50",
		"2024-01-09": "-1.50",
		"2024-01-10": "0.00",
		"2024-01-11": "1.00",
	}, suite.deltasByDay(domain.USD))
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_RepeatedCallWritesNothing() {
	suite.seedBaseline()
	window := []domain.Observation{usd(day(time.January, 10), "91.00"), usd(day(time.January, 11), "92.50")}
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).Return(window, nil)

	suite.Require().NoError(suite.service.DeriveDeltas(suite.ctx, domain.USD))
	writes := suite.store.Writes.Total()
	suite.Equal(int64(4), writes, "two observations and two deltas")

	suite.Require().NoError(suite.service.DeriveDeltas(suite.ctx, domain.USD))
	suite.Equal(writes, suite.store.Writes.Total())
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_PivotMissingIsNotFound() {
	suite.seedBaseline()
	suite.seedObservations(usd(day(time.January, 8), "89.00"))
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{}, nil).Once()

	err := suite.service.DeriveDeltas(suite.ctx, domain.USD)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.deltasByDay(domain.USD), "no delta is written without a pivot")
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_SourceFailureAborts() {
	suite.seedBaseline()
	suite.seedObservations(usd(day(time.January, 10), "91.00"))
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	err := suite.service.DeriveDeltas(suite.ctx, domain.USD)

	suite.ErrorIs(err, apperrors.ErrSource)
	suite.Empty(suite.deltasByDay(domain.USD))
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltas_MissingBaselineIsConfigurationError() {
	err := suite.service.DeriveDeltas(suite.ctx, domain.USD)

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.rateSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestSync_UpsertsFetchedObservations() {
	suite.seedBaseline()
	start, end := day(time.February, 1), day(time.February, 3)
	fetched := []domain.Observation{usd(day(time.February, 1), "92.00"), usd(day(time.February, 2), "92.10")}
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, start, end).Return(fetched, nil)

	suite.Require().NoError(suite.service.Sync(suite.ctx, domain.USD, start, end))
	suite.Equal(int64(2), suite.store.Writes.Creates())

	// Identical data a second time is a no-op.
	suite.Require().NoError(suite.service.Sync(suite.ctx, domain.USD, start, end))
	suite.Equal(int64(2), suite.store.Writes.Total())

	stored, err := suite.store.Observations.ListObservationsByCode(suite.ctx, domain.USD)
	suite.Require().NoError(err)
	suite.Len(stored, 2)
}

func (suite *ExchangeRateServiceTestSuite) TestSync_MissingBaselineFailsBeforeFetching() {
	err := suite.service.Sync(suite.ctx, domain.USD, day(time.February, 1), day(time.February, 3))

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.rateSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestSync_RejectsUnknownCurrency() {
	suite.seedBaseline()
	err := suite.service.Sync(suite.ctx, domain.Currency("XXX"), day(time.February, 1), day(time.February, 3))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestSyncCurrencies_IsolatesFailuresPerCurrency() {
	suite.seedBaseline()
	suite.codeSource.On("FetchCurrencyCodes", mock.Anything).
		Return([]domain.CurrencyCode{{Code: "USD", Country: "United States", Currency: "US Dollar", Number: 840}}, nil)
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{usd(day(time.February, 1), "92.00")}, nil)
	suite.rateSource.On("FetchRates", mock.Anything, domain.EUR, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewSourceError("finmarket returned 500", nil))

	outcomes, err := suite.service.SyncCurrencies(suite.ctx, []domain.Currency{domain.USD, domain.EUR}, day(time.February, 1), day(time.February, 3))

	suite.Require().NoError(err)
	suite.Require().Len(outcomes, 2)
	suite.Equal(dto.CurrencyOutcome{Currency: "USD", Success: true}, outcomes[0])
	suite.Equal("EUR", outcomes[1].Currency)
	suite.False(outcomes[1].Success)
	suite.Contains(outcomes[1].Error, "finmarket returned 500")
	suite.codeSource.AssertNumberOfCalls(suite.T(), "FetchCurrencyCodes", 1)

	stored, err := suite.store.Observations.ListObservationsByCode(suite.ctx, domain.USD)
	suite.Require().NoError(err)
	suite.Len(stored, 1)
}

func (suite *ExchangeRateServiceTestSuite) TestSyncCurrencies_CodeRefreshFailureAbortsBatch() {
	suite.seedBaseline()
	suite.codeSource.On("FetchCurrencyCodes", mock.Anything).Return(nil, errors.New("timeout"))

	outcomes, err := suite.service.SyncCurrencies(suite.ctx, []domain.Currency{domain.USD}, day(time.February, 1), day(time.February, 3))

	suite.ErrorIs(err, apperrors.ErrSource)
	suite.Nil(outcomes)
	suite.rateSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestDeriveDeltasForCurrencies_IsolatesFailures() {
	suite.seedBaseline()
	suite.rateSource.On("FetchRates", mock.Anything, domain.USD, mock.Anything, mock.Anything).
		Return([]domain.Observation{usd(day(time.January, 10), "91.00")}, nil)
	suite.rateSource.On("FetchRates", mock.Anything, domain.JPY, mock.Anything, mock.Anything).
		Return([]domain.Observation{}, nil)

	outcomes := suite.service.DeriveDeltasForCurrencies(suite.ctx, []domain.Currency{domain.JPY, domain.USD})

	suite.Require().Len(outcomes, 2)
	suite.False(outcomes[0].Success, "JPY has no pivot")
	suite.True(outcomes[1].Success)
	suite.Equal(map[string]string{"2024-01-10": "0.00"}, suite.deltasByDay(domain.USD))
}

func (suite *ExchangeRateServiceTestSuite) TestListObservations_Pages() {
	suite.seedObservations(
		usd(day(time.January, 9), "90.00"),
		usd(day(time.January, 10), "91.00"),
		usd(day(time.January, 11), "92.50"),
	)

	first, err := suite.service.ListObservations(suite.ctx, domain.USD, dto.ListSeriesParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(first.Observations, 2)
	suite.Equal("2024-01-09", first.Observations[0].Date)
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListObservations(suite.ctx, domain.USD, dto.ListSeriesParams{Limit: 2, NextToken: first.NextToken})
	suite.Require().NoError(err)
	suite.Len(second.Observations, 1)
	suite.Equal("2024-01-11", second.Observations[0].Date)
	suite.Nil(second.NextToken)
}

func (suite *ExchangeRateServiceTestSuite) TestListObservations_BadTokenIsValidationError() {
	bad := "%%%"
	_, err := suite.service.ListObservations(suite.ctx, domain.USD, dto.ListSeriesParams{Limit: 2, NextToken: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestListDeltas_DefaultsLimit() {
	for d := 1; d <= 3; d++ {
		_, err := suite.store.Deltas.Create(suite.ctx, domain.Delta{Date: day(time.March, d), Code: domain.EUR, Delta: dec("0.5")})
		suite.Require().NoError(err)
	}

	resp, err := suite.service.ListDeltas(suite.ctx, domain.EUR, dto.ListSeriesParams{})
	suite.Require().NoError(err)
	suite.Len(resp.Deltas, 3)
	suite.Nil(resp.NextToken)
}

func (suite *ExchangeRateServiceTestSuite) TestGetBaseline() {
	_, err := suite.service.GetBaseline(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrConfiguration)

	suite.seedBaseline()
	got, err := suite.service.GetBaseline(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(suite.baselineDay, got)
}
