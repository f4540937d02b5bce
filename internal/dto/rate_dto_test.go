package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/core/domain"
	"github.com/naira-fx/naira_rates_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marshalKeys returns the set of top-level JSON keys the result serializes to.
func marshalKeys(t *testing.T, result dto.ExchangeRateResult) map[string]any {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestToExchangeRateResult_SerializesExactlyRateKeys(t *testing.T) {
	pair, err := domain.NewRatePair(decimal.NewFromFloat(1600.0), time.Now())
	require.NoError(t, err)

	result := dto.ToExchangeRateResult(pair)
	assert.False(t, result.Failed())

	m := marshalKeys(t, result)
	require.Len(t, m, 2)
	assert.Contains(t, m, "ngn_to_usd")
	assert.Contains(t, m, "usd_to_ngn")
	assert.NotContains(t, m, "error")

	assert.InDelta(t, 1600.0, m["ngn_to_usd"].(float64), 1e-9)
	assert.InDelta(t, 1.0/1600.0, m["usd_to_ngn"].(float64), 1e-9)
}

func TestErrorRateResult_SerializesExactlyErrorKey(t *testing.T) {
	result := dto.ErrorRateResult(errors.New("rate provider unreachable: connection refused"))
	assert.True(t, result.Failed())

	m := marshalKeys(t, result)
	require.Len(t, m, 1)
	assert.Contains(t, m, "error")
	assert.Equal(t, "rate provider unreachable: connection refused", m["error"])
}
