package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureBaselineNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	params := memory.NewParameterStore()
	svc := services.NewParameterService(params)

	created, err := svc.EnsureBaseline(ctx, time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureBaseline(ctx, day(time.June, 1))
	require.NoError(t, err)
	assert.False(t, created)

	p, err := params.FindParameterByName(ctx, domain.BaselineParameterName)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", p.Value)
}
