package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// baselineLayouts are the accepted STD_DATE formats.
var baselineLayouts = []string{"02.01.2006", "2006-01-02"}

// Config holds application configuration.
type Config struct {
	AppName      string
	AppVersion   string
	Port         string
	IsProduction bool

	StoreBackend     string
	DatabaseURL      string
	DBConnectTries   int
	DBConnectTimeout time.Duration

	// BaselineDate seeds the std_date parameter when the store has none.
	BaselineDate time.Time

	JWTSecret          string // empty disables auth on mutating routes
	RateLimit          string // ulule formatted rate, e.g. "60-M"
	CORSAllowedOrigins []string

	FinmarketBaseURL     string
	IBANCurrencyCodesURL string
	HTTPClientTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("APP_NAME", "fx-rates")
	viper.SetDefault("APP_VERSION", "dev")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", StoreBackendPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_CONNECT_TRIES", 3)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("STD_DATE", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("FINMARKET_BASE_URL", "")
	viper.SetDefault("IBAN_CURRENCY_CODES_URL", "")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "15s")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{
		AppName:              viper.GetString("APP_NAME"),
		AppVersion:           viper.GetString("APP_VERSION"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		StoreBackend:         strings.ToLower(strings.TrimSpace(viper.GetString("STORE_BACKEND"))),
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		DBConnectTries:       viper.GetInt("DB_CONNECT_TRIES"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		FinmarketBaseURL:     viper.GetString("FINMARKET_BASE_URL"),
		IBANCurrencyCodesURL: viper.GetString("IBAN_CURRENCY_CODES_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DBConnectTries < 1 {
		log.Printf("Warning: Invalid value for DB_CONNECT_TRIES (%d). Defaulting to 1.\n", cfg.DBConnectTries)
		cfg.DBConnectTries = 1
	}
	cfg.DBConnectTimeout = durationOrDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	cfg.HTTPClientTimeout = durationOrDefault("HTTP_CLIENT_TIMEOUT", 15*time.Second)

	switch cfg.StoreBackend {
	case StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_BACKEND=%s", StoreBackendPostgres)
		}
	case StoreBackendMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	baseline, err := ParseBaselineDate(viper.GetString("STD_DATE"))
	if err != nil {
		return nil, err
	}
	cfg.BaselineDate = baseline

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Mutating routes are not authenticated.")
	}

	return cfg, nil
}

// ParseBaselineDate parses STD_DATE given as dd.mm.yyyy or yyyy-mm-dd.
func ParseBaselineDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("STD_DATE is required")
	}
	for _, layout := range baselineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid STD_DATE %q: expected dd.mm.yyyy or yyyy-mm-dd", s)
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
