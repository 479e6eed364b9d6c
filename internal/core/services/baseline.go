package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"golang.org/x/sync/singleflight"
)

// BaselineCache resolves the baseline date from the parameter store once per
// process and serves the cached value afterwards. Concurrent first calls share
// a single store read. Failed resolutions are not cached.
type BaselineCache struct {
	params portsrepo.ParameterReader
	group  singleflight.Group

	mu       sync.RWMutex
	date     time.Time
	resolved bool
}

// NewBaselineCache creates an unresolved cache reading from params.
func NewBaselineCache(params portsrepo.ParameterReader) *BaselineCache {
	return &BaselineCache{params: params}
}

func (b *BaselineCache) cached() (time.Time, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.date, b.resolved
}

// Resolve returns the baseline date. A missing or malformed parameter yields
// an apperrors.ErrConfiguration error. A caller whose ctx ends stops waiting
// with ctx.Err(); the shared read carries on for the other callers.
func (b *BaselineCache) Resolve(ctx context.Context) (time.Time, error) {
	if date, ok := b.cached(); ok {
		return date, nil
	}

	// The shared read must not fail for every waiter when one caller gives up.
	flightCtx := context.WithoutCancel(ctx)
	ch := b.group.DoChan(domain.BaselineParameterName, func() (any, error) {
		// A flight that completed between the check above and DoChan.
		if date, ok := b.cached(); ok {
			return date, nil
		}

		p, err := b.params.FindParameterByName(flightCtx, domain.BaselineParameterName)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewConfigurationError(
					fmt.Sprintf("baseline parameter %q is not set", domain.BaselineParameterName), err)
			}
			return nil, fmt.Errorf("read baseline parameter: %w", err)
		}

		date, err := domain.ParseDate(p.Value)
		if err != nil {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("baseline parameter %q is malformed", domain.BaselineParameterName), err)
		}

		b.mu.Lock()
		b.date, b.resolved = date, true
		b.mu.Unlock()
		return date, nil
	})
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return time.Time{}, res.Err
		}
		return res.Val.(time.Time), nil
	}
}
