package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration of the service.
type Config struct {
	Port       string
	LogLevel   string
	StaticURL  string // where GET / redirects; served by the static-file host
	CORSOrigin string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment, applying defaults for anything unset.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:       getEnv("PORT", "8000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		StaticURL:  getEnv("STATIC_URL", "/static/index.html"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
