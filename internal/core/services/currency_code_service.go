package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

type currencyCodeService struct {
	BaseService
	repo       portsrepo.CurrencyCodeRepositoryFacade
	reconciler *Reconciler[domain.CurrencyCode]
	source     sources.CodeSource
}

// NewCurrencyCodeService creates a service maintaining the currency-code catalog.
func NewCurrencyCodeService(repo portsrepo.CurrencyCodeRepositoryFacade, source sources.CodeSource) portssvc.CurrencyCodeSvcFacade {
	return &currencyCodeService{
		repo:       repo,
		reconciler: NewReconciler[domain.CurrencyCode](repo),
		source:     source,
	}
}

var _ portssvc.CurrencyCodeSvcFacade = (*currencyCodeService)(nil)

func (s *currencyCodeService) RefreshFromSource(ctx context.Context) (int, error) {
	fetched, err := s.source.FetchCurrencyCodes(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSource) {
			err = apperrors.NewSourceError("fetch currency codes", err)
		}
		s.LogError(ctx, err, "Currency code fetch failed")
		return 0, err
	}

	candidates := make([]domain.CurrencyCode, 0, len(fetched))
	for _, c := range fetched {
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		if c.Code == "" {
			continue
		}
		candidates = append(candidates, c)
	}

	stats, err := s.reconciler.UpsertAll(ctx, candidates)
	if err != nil {
		s.LogError(ctx, err, "Failed to store currency codes")
		return 0, fmt.Errorf("store currency codes: %w", err)
	}

	s.LogInfo(ctx, "Currency codes refreshed",
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("unchanged", stats.Unchanged))
	return len(candidates), nil
}

func (s *currencyCodeService) GetCurrencyCode(ctx context.Context, code string) (*domain.CurrencyCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, apperrors.NewValidationError("currency code is required")
	}
	found, err := s.repo.FindCurrencyCodeByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get currency code", slog.String("code", code))
		}
		return nil, err
	}
	return found, nil
}

func (s *currencyCodeService) ListCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error) {
	codes, err := s.repo.ListCurrencyCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency codes")
		return nil, fmt.Errorf("list currency codes: %w", err)
	}
	return codes, nil
}
