package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseDriver string
	DatabaseURL    string

	// Sessions
	SessionTTL time.Duration

	// Templates; empty means the embedded set
	TemplatesDir string
}

func Load() (*Config, error) {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "huisportaal.db"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		TemplatesDir:   getEnv("TEMPLATES_DIR", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
