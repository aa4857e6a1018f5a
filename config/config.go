package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the car dealer backend.
type Config struct {
	Port           string
	Env            string
	MongoURL       string
	MongoDB        string
	JWTSecret      string
	StripeAPIKey   string
	TelegramToken  string
	TelegramChatID string
	FrontendURL    string
	AdminEmail     string
	AdminPassword  string
}

// Load reads configuration from environment variables. The Stripe key and
// Telegram credentials may be absent; the payment gateway and notifier
// report misconfiguration at call time rather than preventing startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8001"),
		Env:            getEnv("ENV", "development"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "cardealer"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StripeAPIKey:   os.Getenv("STRIPE_API_KEY"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: getEnv("TELEGRAM_CHAT_ID", "-1001234567890"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@cardealer.com"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
