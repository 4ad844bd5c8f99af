package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Required values are enforced at
// startup; a missing credential must never surface as a per-request failure.
type Config struct {
	Port            string
	PostgresURL     string
	JWTSecret       string
	StripeSecretKey string
	// RedirectBaseURL is the base for every redirect/callback URL the
	// platform hands to the processor (onboarding refresh/return, checkout
	// success/cancel) and for public menu URLs.
	RedirectBaseURL string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	return Config{
		Port:            getEnv("PORT", "3000"),
		PostgresURL:     mustEnv("POSTGRES_URL"),
		JWTSecret:       mustEnv("JWT_SECRET"),
		StripeSecretKey: mustEnv("STRIPE_SECRET_KEY"),
		RedirectBaseURL: getEnv("REDIRECT_URL", "http://localhost:3000"),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
