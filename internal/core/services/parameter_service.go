package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
)

type parameterService struct {
	BaseService
	repo portsrepo.ParameterWriter
}

// NewParameterService creates the service seeding stored parameters.
func NewParameterService(repo portsrepo.ParameterWriter) portssvc.ParameterSvc {
	return &parameterService{repo: repo}
}

func (s *parameterService) EnsureBaseline(ctx context.Context, date time.Time) (bool, error) {
	value := domain.FormatDate(domain.TruncateToDate(date))
	created, err := s.repo.CreateParameterIfAbsent(ctx, domain.Parameter{
		Name:  domain.BaselineParameterName,
		Value: value,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed baseline parameter")
		return false, fmt.Errorf("seed baseline parameter: %w", err)
	}
	if created {
		s.LogInfo(ctx, "Baseline parameter seeded", slog.String("value", value))
	} else {
		s.LogDebug(ctx, "Baseline parameter already present, left unchanged")
	}
	return created, nil
}
