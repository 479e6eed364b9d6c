package services

import (
	"context"
	"time"
)

// ParameterSvc manages named configuration values kept in the store.
type ParameterSvc interface {
	// EnsureBaseline stores the baseline date unless one is already present.
	// It reports whether a new value was written.
	EnsureBaseline(ctx context.Context, date time.Time) (bool, error)
}
