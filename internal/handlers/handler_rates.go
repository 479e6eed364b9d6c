package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for observation series.
type rateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// registerRateRoutes registers the observation routes. Sync sits behind write.
func registerRateRoutes(rg *gin.RouterGroup, write []gin.HandlerFunc, svc portssvc.ExchangeRateSvcFacade) {
	h := &rateHandler{exchangeRateService: svc}

	rates := rg.Group("/rates")
	{
		rates.POST("/sync", guarded(write, h.syncRates)...)
		rates.GET("/:currency", h.listObservations)
	}
}

// syncRates pulls the requested range for every currency into the store.
// The response lists one outcome per currency; 207 signals partial failure.
func (h *rateHandler) syncRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SyncRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	currencies, start, end, err := req.Range()
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to sync rates",
		slog.Any("currencies", currencies),
		slog.String("start", domain.FormatDate(start)),
		slog.String("end", domain.FormatDate(end)),
	)

	outcomes, err := h.exchangeRateService.SyncCurrencies(c.Request.Context(), currencies, start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to sync rates")
		return
	}

	resp := dto.BatchResponse{Results: outcomes}
	if resp.Failed() {
		logger.Warn("Rate sync finished with failures")
	}
	c.JSON(batchStatus(resp), resp)
}

func (h *rateHandler) listObservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency, ok := currencyParam(c, logger)
	if !ok {
		return
	}

	var params dto.ListSeriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	page, err := h.exchangeRateService.ListObservations(c.Request.Context(), currency, params)
	if err != nil {
		respondError(c, logger.With(slog.String("currency", currency.String())), err, "Failed to list observations")
		return
	}
	c.JSON(http.StatusOK, page)
}
