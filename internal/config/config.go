package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	BankName         string
	LogLevel         string
	JWTSecret        string
	OverdraftLimit   decimal.Decimal
	SavingsRate      decimal.Decimal
	InterestSchedule string
	RatesFeedURL     string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		BankName:         getEnv("BANK_NAME", "Harbor Savings Bank"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		InterestSchedule: getEnv("INTEREST_SCHEDULE", "@monthly"),
		RatesFeedURL:     getEnv("RATES_FEED_URL", "https://rates.example.com/daily.xml"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "noreply@harborsavings.example.com"),
	}

	var err error
	cfg.OverdraftLimit, err = decimal.NewFromString(getEnv("OVERDRAFT_LIMIT", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERDRAFT_LIMIT: %w", err)
	}
	if cfg.OverdraftLimit.IsNegative() {
		return nil, fmt.Errorf("OVERDRAFT_LIMIT must not be negative")
	}
	cfg.SavingsRate, err = decimal.NewFromString(getEnv("SAVINGS_RATE", "0.01"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVINGS_RATE: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
