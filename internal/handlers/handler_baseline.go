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

type baselineHandler struct {
	exchangeRateService portssvc.ExchangeRateReaderSvc
}

func registerBaselineRoutes(rg *gin.RouterGroup, svc portssvc.ExchangeRateReaderSvc) {
	h := &baselineHandler{exchangeRateService: svc}
	rg.GET("/baseline", h.getBaseline)
}

// getBaseline returns the baseline date deltas are computed against.
func (h *baselineHandler) getBaseline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	baseline, err := h.exchangeRateService.GetBaseline(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to resolve baseline")
		return
	}

	logger.Debug("Baseline resolved", slog.String("date", domain.FormatDate(baseline)))
	c.JSON(http.StatusOK, dto.BaselineResponse{Date: domain.FormatDate(baseline)})
}
