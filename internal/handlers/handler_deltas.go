package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deltaHandler handles HTTP requests for delta series.
type deltaHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func registerDeltaRoutes(rg *gin.RouterGroup, write []gin.HandlerFunc, svc portssvc.ExchangeRateSvcFacade) {
	h := &deltaHandler{exchangeRateService: svc}

	deltas := rg.Group("/deltas")
	{
		deltas.POST("/derive", guarded(write, h.deriveDeltas)...)
		deltas.GET("/:currency", h.listDeltas)
	}
}

// deriveDeltas recomputes the delta series of every requested currency.
func (h *deltaHandler) deriveDeltas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeriveDeltasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	currencies, err := dto.ParseCurrencies(req.Currencies)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to derive deltas", slog.Any("currencies", currencies))

	resp := dto.BatchResponse{Results: h.exchangeRateService.DeriveDeltasForCurrencies(c.Request.Context(), currencies)}
	if resp.Failed() {
		logger.Warn("Delta derivation finished with failures")
	}
	c.JSON(batchStatus(resp), resp)
}

func (h *deltaHandler) listDeltas(c *gin.Context) {
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

	page, err := h.exchangeRateService.ListDeltas(c.Request.Context(), currency, params)
	if err != nil {
		respondError(c, logger.With(slog.String("currency", currency.String())), err, "Failed to list deltas")
		return
	}
	c.JSON(http.StatusOK, page)
}
