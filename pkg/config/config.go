package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded from the environment with an
// optional .env file.
type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	PostgresURL    string
	SQLitePath     string
	UploadDir      string
	SessionMaxAge  time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		PostgresURL:    getEnv("POSTGRES_CONN_STR", ""),
		SQLitePath:     getEnv("SQLITE_PATH", "photofeed.db"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		SessionMaxAge:  time.Duration(getEnvInt("SESSION_MAX_AGE_HOURS", 72)) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
