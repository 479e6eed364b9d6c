package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/SscSPs/fx_rates_app/internal/utils/pagination"
)

// exchangeRateService implements portssvc.ExchangeRateSvcFacade.
type exchangeRateService struct {
	BaseService
	observationRepo portsrepo.ObservationRepositoryFacade
	deltaRepo       portsrepo.DeltaRepositoryFacade
	observations    *Reconciler[domain.Observation]
	deltas          *Reconciler[domain.Delta]
	baseline        *BaselineCache
	source          sources.RateSource
	codeRefresher   portssvc.CurrencyCodeWriterSvc
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithCurrencyCodeRefresher makes SyncCurrencies refresh the currency-code
// catalog before touching any rates.
func WithCurrencyCodeRefresher(svc portssvc.CurrencyCodeWriterSvc) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.codeRefresher = svc
	}
}

// NewExchangeRateService creates the exchange rate service.
func NewExchangeRateService(
	observationRepo portsrepo.ObservationRepositoryFacade,
	deltaRepo portsrepo.DeltaRepositoryFacade,
	baseline *BaselineCache,
	source sources.RateSource,
	options ...ExchangeRateOption,
) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		observationRepo: observationRepo,
		deltaRepo:       deltaRepo,
		observations:    NewReconciler[domain.Observation](observationRepo),
		deltas:          NewReconciler[domain.Delta](deltaRepo),
		baseline:        baseline,
		source:          source,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func validateCurrency(currency domain.Currency) error {
	if !currency.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q", currency))
	}
	return nil
}

// fetchAndStore pulls observations for currency over [start, end] and upserts them.
func (s *exchangeRateService) fetchAndStore(ctx context.Context, currency domain.Currency, start, end time.Time) (UpsertStats, error) {
	fetched, err := s.source.FetchRates(ctx, currency, start, end)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSource) {
			err = apperrors.NewSourceError(fmt.Sprintf("fetch %s rates", currency), err)
		}
		return UpsertStats{}, err
	}

	candidates := make([]domain.Observation, len(fetched))
	for i, o := range fetched {
		o.Code = currency
		o.Date = domain.TruncateToDate(o.Date)
		candidates[i] = o
	}

	stats, err := s.observations.UpsertAll(ctx, candidates)
	if err != nil {
		return stats, fmt.Errorf("store %s observations: %w", currency, err)
	}
	return stats, nil
}

func (s *exchangeRateService) Sync(ctx context.Context, currency domain.Currency, start, end time.Time) error {
	if err := validateCurrency(currency); err != nil {
		return err
	}
	if _, err := s.baseline.Resolve(ctx); err != nil {
		s.LogError(ctx, err, "Baseline unavailable, sync aborted", slog.String("currency", currency.String()))
		return err
	}

	start, end = domain.TruncateToDate(start), domain.TruncateToDate(end)
	stats, err := s.fetchAndStore(ctx, currency, start, end)
	if err != nil {
		s.LogError(ctx, err, "Rate sync failed",
			slog.String("currency", currency.String()),
			slog.String("start", domain.FormatDate(start)),
			slog.String("end", domain.FormatDate(end)))
		return err
	}

	s.LogInfo(ctx, "Rates synced",
		slog.String("currency", currency.String()),
		slog.String("start", domain.FormatDate(start)),
		slog.String("end", domain.FormatDate(end)),
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("unchanged", stats.Unchanged))
	return nil
}

func (s *exchangeRateService) SyncCurrencies(ctx context.Context, currencies []domain.Currency, start, end time.Time) ([]dto.CurrencyOutcome, error) {
	if s.codeRefresher != nil {
		if _, err := s.codeRefresher.RefreshFromSource(ctx); err != nil {
			s.LogError(ctx, err, "Currency code refresh failed, sync batch aborted")
			return nil, fmt.Errorf("refresh currency codes: %w", err)
		}
	}

	outcomes := make([]dto.CurrencyOutcome, 0, len(currencies))
	for _, c := range currencies {
		outcomes = append(outcomes, mapping.ToCurrencyOutcome(c, s.Sync(ctx, c, start, end)))
	}
	return outcomes, nil
}

// DeriveDeltas refreshes the observations around the baseline date, then
// recomputes the delta of every stored observation of currency against the
// baseline day's rate. A re-fetched baseline rate therefore ripples through
// the whole history.
func (s *exchangeRateService) DeriveDeltas(ctx context.Context, currency domain.Currency) error {
	if err := validateCurrency(currency); err != nil {
		return err
	}
	logger := s.GetLogger(ctx).With(slog.String("currency", currency.String()))

	base, err := s.baseline.Resolve(ctx)
	if err != nil {
		logger.Error("Baseline unavailable, derivation aborted", slog.String("error", err.Error()))
		return err
	}

	if _, err := s.fetchAndStore(ctx, currency, domain.AddDays(base, -1), domain.AddDays(base, 1)); err != nil {
		logger.Error("Baseline window refresh failed", slog.String("error", err.Error()))
		return err
	}

	pivot, err := s.observationRepo.FindOne(ctx, domain.Observation{Date: base, Code: currency})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.NewNotFoundError(fmt.Sprintf("no %s observation on baseline date %s", currency, domain.FormatDate(base)))
		}
		logger.Error("Pivot observation unavailable", slog.String("error", err.Error()))
		return err
	}

	history, err := s.observationRepo.ListObservationsByCode(ctx, currency)
	if err != nil {
		logger.Error("Failed to list observations", slog.String("error", err.Error()))
		return fmt.Errorf("list %s observations: %w", currency, err)
	}

	candidates := make([]domain.Delta, len(history))
	for i, o := range history {
		candidates[i] = domain.Delta{Date: o.Date, Code: currency, Delta: o.Rate.Sub(pivot.Rate)}
	}

	stats, err := s.deltas.UpsertAll(ctx, candidates)
	if err != nil {
		logger.Error("Failed to store deltas", slog.String("error", err.Error()))
		return fmt.Errorf("store %s deltas: %w", currency, err)
	}

	logger.Info("Deltas derived",
		slog.String("baseline", domain.FormatDate(base)),
		slog.String("pivot_rate", pivot.Rate.String()),
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("unchanged", stats.Unchanged))
	return nil
}

func (s *exchangeRateService) DeriveDeltasForCurrencies(ctx context.Context, currencies []domain.Currency) []dto.CurrencyOutcome {
	outcomes := make([]dto.CurrencyOutcome, 0, len(currencies))
	for _, c := range currencies {
		outcomes = append(outcomes, mapping.ToCurrencyOutcome(c, s.DeriveDeltas(ctx, c)))
	}
	return outcomes
}

const defaultPageLimit = 100

// pageWindow decodes the paging query into a start date and a row limit.
func pageWindow(params dto.ListSeriesParams) (*time.Time, int, error) {
	after, err := pagination.DecodeOptionalToken(params.NextToken)
	if err != nil {
		return nil, 0, apperrors.NewValidationError(err.Error())
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return after, limit, nil
}

func (s *exchangeRateService) ListObservations(ctx context.Context, currency domain.Currency, params dto.ListSeriesParams) (*dto.ListObservationsResponse, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}
	after, limit, err := pageWindow(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.observationRepo.ListObservationsPage(ctx, currency, after, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list observations", slog.String("currency", currency.String()))
		return nil, fmt.Errorf("list %s observations: %w", currency, err)
	}

	rows, next := pagination.Cut(rows, limit, func(o domain.Observation) time.Time { return o.Date })
	return &dto.ListObservationsResponse{
		Observations: dto.ToObservationResponses(rows),
		NextToken:    next,
	}, nil
}

func (s *exchangeRateService) ListDeltas(ctx context.Context, currency domain.Currency, params dto.ListSeriesParams) (*dto.ListDeltasResponse, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}
	after, limit, err := pageWindow(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.deltaRepo.ListDeltasPage(ctx, currency, after, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deltas", slog.String("currency", currency.String()))
		return nil, fmt.Errorf("list %s deltas: %w", currency, err)
	}

	rows, next := pagination.Cut(rows, limit, func(d domain.Delta) time.Time { return d.Date })
	return &dto.ListDeltasResponse{
		Deltas:    dto.ToDeltaResponses(rows),
		NextToken: next,
	}, nil
}

func (s *exchangeRateService) GetBaseline(ctx context.Context) (time.Time, error) {
	return s.baseline.Resolve(ctx)
}
