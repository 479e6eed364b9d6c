package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status of its kind. Internal errors are
// logged in full and answered with fallback only.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	case status > http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + dto.ValidationMessage(err)})
}

// currencyParam parses the :currency path parameter, answering 400 when it
// is not a tracked currency.
func currencyParam(c *gin.Context, logger *slog.Logger) (domain.Currency, bool) {
	currency, err := domain.ParseCurrency(c.Param("currency"))
	if err != nil {
		logger.Warn("Invalid currency parameter", slog.String("currency", c.Param("currency")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return currency, true
}

// batchStatus is 200 when every currency succeeded and 207 otherwise.
func batchStatus(resp dto.BatchResponse) int {
	if resp.Failed() {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}
