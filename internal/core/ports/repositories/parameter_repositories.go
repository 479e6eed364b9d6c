package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// ParameterReader defines read operations for named parameters
type ParameterReader interface {
	// FindParameterByName retrieves a parameter. Returns apperrors.ErrNotFound if absent.
	FindParameterByName(ctx context.Context, name string) (*domain.Parameter, error)
}

// ParameterWriter defines write operations for named parameters
type ParameterWriter interface {
	// CreateParameterIfAbsent stores the parameter unless one with the same name exists.
	// It reports whether a row was inserted.
	CreateParameterIfAbsent(ctx context.Context, parameter domain.Parameter) (bool, error)
}

// ParameterRepositoryFacade combines all parameter-related repository interfaces
type ParameterRepositoryFacade interface {
	ParameterReader
	ParameterWriter
}
