package main

import (
	"html/template"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/naira-fx/naira_rates_app/internal/adapters/rateapi"
	portssvc "github.com/naira-fx/naira_rates_app/internal/core/ports/services"
	"github.com/naira-fx/naira_rates_app/internal/core/services"
	"github.com/naira-fx/naira_rates_app/internal/handlers"
	"github.com/naira-fx/naira_rates_app/internal/middleware"
	"github.com/naira-fx/naira_rates_app/internal/platform/config"
	"github.com/naira-fx/naira_rates_app/internal/web"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Naira Rates API
// @version 1.0
// @description Web front for current NGN/USD exchange rates.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the provider adapter into the rate service. The provider endpoint
	// is config only; there is no persistence and no cache behind it.
	provider := rateapi.NewClient(cfg.ProviderURL, cfg.ProviderTimeout)
	container := &portssvc.ServiceContainer{
		Rate: services.NewExchangeRateService(provider),
	}

	limiterRate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memory.NewStore(), limiterRate)

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.tmpl")))

	handlers.RegisterRoutes(r, cfg, container, limiterInstance)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
