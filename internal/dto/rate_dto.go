package dto

import (
	"github.com/naira-fx/naira_rates_app/internal/core/domain"
)

// ExchangeRateResult is the API shape of one rate lookup. Exactly one of two
// shapes is ever populated: both rate fields on success, or Error on failure.
// Construct it through ToExchangeRateResult / ErrorRateResult so the invariant
// holds; never fill the fields by hand.
//
// Key direction follows the provider quote: ngn_to_usd is the number of NGN
// one USD buys, usd_to_ngn is its reciprocal.
type ExchangeRateResult struct {
	NgnToUsd *float64 `json:"ngn_to_usd,omitempty"`
	UsdToNgn *float64 `json:"usd_to_ngn,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ToExchangeRateResult converts a domain.RatePair to the success shape.
func ToExchangeRateResult(pair *domain.RatePair) ExchangeRateResult {
	ngnToUsd := pair.NgnPerUsd.InexactFloat64()
	usdToNgn := pair.UsdPerNgn.InexactFloat64()
	return ExchangeRateResult{
		NgnToUsd: &ngnToUsd,
		UsdToNgn: &usdToNgn,
	}
}

// ErrorRateResult builds the failure shape from a service error.
func ErrorRateResult(err error) ExchangeRateResult {
	return ExchangeRateResult{Error: err.Error()}
}

// Failed reports whether the result carries the failure shape.
func (r ExchangeRateResult) Failed() bool {
	return r.Error != ""
}
