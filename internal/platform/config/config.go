package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is loaded once at startup and
// read-only afterwards.
type Config struct {
	Port         string `validate:"required"`
	IsProduction bool

	// ProviderURL is the external currency-rate endpoint (USD-base latest
	// rates JSON). The vendor is deliberately not hard-coded.
	ProviderURL     string        `validate:"required,url"`
	ProviderTimeout time.Duration `validate:"required"`

	// RateLimit uses the ulule/limiter formatted syntax, e.g. "60-M".
	RateLimit string `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PROVIDER_URL", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		ProviderURL:  viper.GetString("PROVIDER_URL"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	timeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", timeoutStr, err)
	}
	cfg.ProviderTimeout = timeout

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
