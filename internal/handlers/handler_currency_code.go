package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyCodeHandler handles HTTP requests for the currency-code catalog.
type currencyCodeHandler struct {
	currencyCodeService portssvc.CurrencyCodeSvcFacade
}

// registerCurrencyCodeRoutes registers the catalog routes. Refresh sits behind write.
func registerCurrencyCodeRoutes(rg *gin.RouterGroup, write []gin.HandlerFunc, svc portssvc.CurrencyCodeSvcFacade) {
	h := &currencyCodeHandler{currencyCodeService: svc}

	codes := rg.Group("/currency-codes")
	{
		codes.GET("", h.listCurrencyCodes)
		codes.GET("/:code", h.getCurrencyCode)
		codes.POST("/refresh", guarded(write, h.refreshCurrencyCodes)...)
	}
}

func (h *currencyCodeHandler) listCurrencyCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	codes, err := h.currencyCodeService.ListCurrencyCodes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currency codes")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyCodeResponses(codes))
}

func (h *currencyCodeHandler) getCurrencyCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("code", c.Param("code")))

	code, err := h.currencyCodeService.GetCurrencyCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to get currency code")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyCodeResponse(*code))
}

// refreshCurrencyCodes re-reads the catalog from its source.
func (h *currencyCodeHandler) refreshCurrencyCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh currency codes")

	processed, err := h.currencyCodeService.RefreshFromSource(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to refresh currency codes")
		return
	}

	logger.Info("Currency codes refreshed", slog.Int("processed", processed))
	c.JSON(http.StatusOK, dto.RefreshCurrencyCodesResponse{Processed: processed})
}
