package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/naira-fx/naira_rates_app/internal/core/ports/services"
	"github.com/naira-fx/naira_rates_app/internal/middleware"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Get the current NGN/USD exchange rates
// @Description Performs one fresh provider fetch. The response carries either both rate keys or an error key, never a mix, and the status is 200 either way.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.ExchangeRateResult
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result := h.rateService.GetExchangeRate(c.Request.Context())
	if result.Failed() {
		logger.Warn("Exchange rate fetch failed", slog.String("error", result.Error))
	} else {
		logger.Info("Exchange rate retrieved successfully")
	}

	c.JSON(http.StatusOK, result)
}
