package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/adapters/webapi/finmarket"
	"github.com/SscSPs/fx_rates_app/internal/adapters/webapi/iban"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/handlers"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/SscSPs/fx_rates_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_rates_app/internal/repositories/memory"
	"github.com/SscSPs/fx_rates_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = logger.With(slog.String("app", cfg.AppName), slog.String("version", cfg.AppVersion))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	container := services.NewServiceContainer(
		repos,
		finmarket.NewClient(cfg.FinmarketBaseURL, httpClient),
		iban.NewClient(cfg.IBANCurrencyCodesURL, httpClient),
	)

	// Seed the baseline date; an existing value is left untouched.
	if _, err := container.Parameter.EnsureBaseline(ctx, cfg.BaselineDate); err != nil {
		logger.Error("Failed to seed baseline date", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StoreBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore connects the configured backend and returns its repositories with
// a function releasing them.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logger.Warn("Using in-memory store; data is lost on exit")
		return memory.NewStore().Provider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		ConnectTries:   cfg.DBConnectTries,
		ConnectTimeout: cfg.DBConnectTimeout,
		RetryDelay:     time.Second,
	})
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if _, err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
