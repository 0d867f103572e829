package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port              string
	Environment       string
	LogLevel          string
	PublicBaseURL     string
	CommissionPercent float64
	SeedDemoData      bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		PublicBaseURL: getEnvWithDefault("PUBLIC_BASE_URL", "http://localhost:3000"),
	}

	percent, err := strconv.ParseFloat(getEnvWithDefault("COMMISSION_PERCENT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("COMMISSION_PERCENT must be a number: %v", err)
	}
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("COMMISSION_PERCENT must be between 0 and 100")
	}
	cfg.CommissionPercent = percent

	seed, err := strconv.ParseBool(getEnvWithDefault("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_DEMO_DATA must be a boolean: %v", err)
	}
	cfg.SeedDemoData = seed

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
