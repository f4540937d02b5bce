package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider defines the outbound port to the external currency-rate
// provider. Implementations must honour ctx cancellation and classify their
// failures with the sentinel errors in internal/apperrors.
type RateProvider interface {
	// FetchNgnPerUsd returns the provider's current NGN-per-USD quote.
	FetchNgnPerUsd(ctx context.Context) (decimal.Decimal, error)
}
