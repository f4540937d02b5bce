package domain_test

import (
	"testing"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/apperrors"
	"github.com/naira-fx/naira_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatePair_DerivesReciprocal(t *testing.T) {
	fetchedAt := time.Now()

	pair, err := domain.NewRatePair(decimal.NewFromFloat(1600.0), fetchedAt)

	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.True(t, pair.NgnPerUsd.Equal(decimal.NewFromFloat(1600.0)))
	assert.Equal(t, fetchedAt, pair.FetchedAt)

	product := pair.NgnPerUsd.InexactFloat64() * pair.UsdPerNgn.InexactFloat64()
	assert.InDelta(t, 1.0, product, 1e-6)
}

func TestNewRatePair_ReciprocalHoldsForSmallRates(t *testing.T) {
	pair, err := domain.NewRatePair(decimal.NewFromFloat(0.000625), time.Now())

	require.NoError(t, err)
	product := pair.NgnPerUsd.InexactFloat64() * pair.UsdPerNgn.InexactFloat64()
	assert.InDelta(t, 1.0, product, 1e-6)
}

func TestNewRatePair_RejectsZeroRate(t *testing.T) {
	pair, err := domain.NewRatePair(decimal.Zero, time.Now())

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}

func TestNewRatePair_RejectsNegativeRate(t *testing.T) {
	pair, err := domain.NewRatePair(decimal.NewFromInt(-5), time.Now())

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}
