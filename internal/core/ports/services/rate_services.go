package services

import (
	"context"

	"github.com/naira-fx/naira_rates_app/internal/core/domain"
	"github.com/naira-fx/naira_rates_app/internal/dto"
)

// RateReaderSvc defines read operations for exchange rate data.
type RateReaderSvc interface {
	// GetExchangeRate performs one fresh provider fetch and folds any failure
	// into the two-shape result. It never returns an error to the caller.
	GetExchangeRate(ctx context.Context) dto.ExchangeRateResult

	// FetchRatePair performs one fresh provider fetch and returns the raw
	// pair, for callers that want to branch on the error themselves.
	FetchRatePair(ctx context.Context) (*domain.RatePair, error)
}

// RateSvcFacade combines all exchange rate-related service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
