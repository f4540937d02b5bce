package services

import (
	"context"
	"fmt"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/core/domain"
	"github.com/naira-fx/naira_rates_app/internal/core/ports"
	portssvc "github.com/naira-fx/naira_rates_app/internal/core/ports/services"
	"github.com/naira-fx/naira_rates_app/internal/dto"
	"github.com/naira-fx/naira_rates_app/internal/platform/metrics"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	provider ports.RateProvider
	now      func() time.Time
}

// Compile-time check against the service port used by handlers.
var _ portssvc.RateSvcFacade = (*ExchangeRateService)(nil)

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(provider ports.RateProvider) *ExchangeRateService {
	return &ExchangeRateService{
		provider: provider,
		now:      time.Now,
	}
}

// FetchRatePair queries the provider once and validates the quote. No cache
// and no retry: every call is a fresh fetch.
func (s *ExchangeRateService) FetchRatePair(ctx context.Context) (*domain.RatePair, error) {
	quoted, err := s.provider.FetchNgnPerUsd(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rate in service: %w", err)
	}

	pair, err := domain.NewRatePair(quoted, s.now())
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// GetExchangeRate is the catch-all entry point: it folds every failure into
// the two-shape result, so callers always get a renderable value and never an
// error or a panic.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context) dto.ExchangeRateResult {
	pair, err := s.FetchRatePair(ctx)
	if err != nil {
		metrics.RateFetchesTotal.WithLabelValues("failure").Inc()
		metrics.ProviderFailuresTotal.WithLabelValues(metrics.FailureKind(err)).Inc()
		return dto.ErrorRateResult(err)
	}

	metrics.RateFetchesTotal.WithLabelValues("success").Inc()
	return dto.ToExchangeRateResult(pair)
}
