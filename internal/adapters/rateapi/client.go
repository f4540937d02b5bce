package rateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/apperrors"
	"github.com/naira-fx/naira_rates_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Client fetches NGN/USD quotes from a configurable "latest rates" JSON
// provider (USD base, NGN looked up in the rates map). The concrete vendor is
// an operational choice, so only the URL and timeout come from config.
type Client struct {
	providerURL string
	timeout     time.Duration
	httpClient  *http.Client
}

// Compile-time check that Client satisfies the provider port.
var _ ports.RateProvider = (*Client)(nil)

// NewClient creates a rate provider client for the given endpoint.
func NewClient(providerURL string, timeout time.Duration) *Client {
	return &Client{
		providerURL: providerURL,
		timeout:     timeout,
		httpClient:  &http.Client{},
	}
}

// latestRatesResponse mirrors the common open exchange-rate API payload:
// {"result":"success","rates":{"NGN":1600.0,...}}
type latestRatesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchNgnPerUsd performs one fresh provider request per call. Failures are
// classified with the apperrors sentinels so the service layer can fold them
// into the user-facing result without inspecting message text.
func (c *Client) FetchNgnPerUsd(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.providerURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: provider returned status %s", apperrors.ErrProviderUnreachable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrProviderUnreachable, err)
	}

	var payload latestRatesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	rate, ok := payload.Rates["NGN"]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no NGN rate in payload", apperrors.ErrMalformedResponse)
	}
	if rate <= 0 {
		return decimal.Zero, fmt.Errorf("%w: provider quoted %v NGN per USD", apperrors.ErrInvalidRate, rate)
	}

	return decimal.NewFromFloat(rate), nil
}
