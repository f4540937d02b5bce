package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/naira-fx/naira_rates_app/internal/core/ports/services"
	"github.com/naira-fx/naira_rates_app/internal/middleware"
)

// homeHandler serves the server-rendered rates page.
type homeHandler struct {
	rateService portssvc.RateSvcFacade
}

// newHomeHandler creates a new homeHandler.
func newHomeHandler(rs portssvc.RateSvcFacade) *homeHandler {
	return &homeHandler{rateService: rs}
}

// registerHomeRoutes registers the root HTML page.
func registerHomeRoutes(r *gin.Engine, rateService portssvc.RateSvcFacade) {
	h := newHomeHandler(rateService)
	r.GET("/", h.getHome)
}

// getHome godoc
// @Summary Show the exchange rates page
// @Description Renders the Exchange Rates HTML page with the current NGN/USD rates, or the fetch error inline. Always responds 200.
// @Tags root
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result := h.rateService.GetExchangeRate(c.Request.Context())
	if result.Failed() {
		// The page still renders; the failure shows up inline instead.
		logger.Warn("Rendering rates page with provider error", slog.String("error", result.Error))
		c.HTML(http.StatusOK, "home.tmpl", gin.H{"Error": result.Error})
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"NgnToUsd": strconv.FormatFloat(*result.NgnToUsd, 'f', -1, 64),
		"UsdToNgn": strconv.FormatFloat(*result.UsdToNgn, 'f', -1, 64),
	})
}
