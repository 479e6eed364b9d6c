package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/dto"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "name": cfg.AppName, "version": cfg.AppVersion})
	})

	setupAPIV1Routes(r, cfg, services)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	write := writeGuard(cfg)

	registerBaselineRoutes(v1, service.ExchangeRate)
	registerCurrencyCodeRoutes(v1, write, service.CurrencyCode)
	registerRateRoutes(v1, write, service.ExchangeRate)
	registerDeltaRoutes(v1, write, service.ExchangeRate)
}

// writeGuard returns the middleware placed in front of mutating routes: JWT
// authentication when a secret is configured, nothing otherwise.
func writeGuard(cfg *config.Config) []gin.HandlerFunc {
	if cfg.JWTSecret == "" {
		return nil
	}
	return []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret)}
}

// guarded prepends the write guard to handler.
func guarded(write []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(write)+1)
	chain = append(chain, write...)
	return append(chain, handler)
}

// registerValidators installs the custom DTO validations on gin's validator.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidations(v)
}
