package config_test

import (
	"testing"
	"time"

	"github.com/naira-fx/naira_rates_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.NotEmpty(t, cfg.ProviderURL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "60-M", cfg.RateLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("PROVIDER_URL", "https://rates.example.com/v6/latest/USD")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "https://rates.example.com/v6/latest/USD", cfg.ProviderURL)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "10-S", cfg.RateLimit)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PROVIDER_TIMEOUT")
}

func TestLoadConfig_InvalidProviderURL(t *testing.T) {
	t.Setenv("PROVIDER_URL", "not-a-url")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
}
