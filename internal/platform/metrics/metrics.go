package metrics

import (
	"errors"

	"github.com/naira-fx/naira_rates_app/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RateFetchesTotal counts provider fetches by outcome ("success"/"failure").
	RateFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nra_rate_fetches_total",
		Help: "Total exchange rate fetches against the external provider.",
	}, []string{"outcome"})

	// ProviderFailuresTotal counts provider failures by taxonomy kind.
	ProviderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nra_provider_failures_total",
		Help: "Provider fetch failures broken down by failure kind.",
	}, []string{"kind"})

	// HTTPRequestsTotal counts served HTTP requests by path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nra_http_requests_total",
		Help: "Total HTTP requests served.",
	}, []string{"path", "status"})
)

// FailureKind maps a classified provider error onto its metric label.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrProviderUnreachable):
		return "provider_unreachable"
	case errors.Is(err, apperrors.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, apperrors.ErrInvalidRate):
		return "invalid_rate"
	default:
		return "other"
	}
}
