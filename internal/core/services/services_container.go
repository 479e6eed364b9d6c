package services

import (
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, rates sources.RateSource, codes sources.CodeSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.CurrencyCode = NewCurrencyCodeService(repos.CurrencyCodeRepo, codes)
	container.Parameter = NewParameterService(repos.ParameterRepo)
	container.ExchangeRate = NewExchangeRateService(
		repos.ObservationRepo,
		repos.DeltaRepo,
		NewBaselineCache(repos.ParameterRepo),
		rates,
		WithCurrencyCodeRefresher(container.CurrencyCode),
	)

	return container
}
