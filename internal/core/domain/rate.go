package domain

import (
	"fmt"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RatePair holds both directions of the NGN/USD exchange rate as fetched from
// the provider at a single point in time.
// Note: rates use a precise decimal type like github.com/shopspring/decimal
type RatePair struct {
	NgnPerUsd decimal.Decimal `json:"ngnPerUsd"` // NGN units per 1 USD
	UsdPerNgn decimal.Decimal `json:"usdPerNgn"` // derived reciprocal
	FetchedAt time.Time       `json:"fetchedAt"`
}

// NewRatePair builds a RatePair from the provider-quoted NGN-per-USD rate.
// The reverse direction is always derived here, so both directions stay
// mutually reciprocal and positive, or the pair is not constructed at all.
func NewRatePair(ngnPerUsd decimal.Decimal, fetchedAt time.Time) (*RatePair, error) {
	if ngnPerUsd.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: provider quoted %s NGN per USD", apperrors.ErrInvalidRate, ngnPerUsd.String())
	}

	return &RatePair{
		NgnPerUsd: ngnPerUsd,
		UsdPerNgn: decimal.NewFromInt(1).Div(ngnPerUsd),
		FetchedAt: fetchedAt,
	}, nil
}
