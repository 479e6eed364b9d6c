// Command fx_rates_token prints a bearer token for the mutating API routes,
// signed with JWT_SECRET from the environment or .env.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	subject := flag.String("subject", "scheduler", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	viper.SetDefault("APP_NAME", "fx-rates")
	viper.AutomaticEnv()

	token, err := utils.IssueServiceToken(*subject, viper.GetString("JWT_SECRET"), *ttl, viper.GetString("APP_NAME"))
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
