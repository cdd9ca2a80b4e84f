package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	DBDriver   string
	DBDSN      string
	LogLevel   string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing variables fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddr: getenv("SERVER_ADDR", ":8080"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		DBDSN:      getenv("DB_DSN", "catalog.db"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
