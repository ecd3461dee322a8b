package config

import (
	"os"

	"github.com/joho/godotenv"
)

var App *Config

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
}

func InitializeConfig() error {
	// .env is optional, the process environment wins either way.
	_ = godotenv.Load()

	App = Load()

	if err := NewLoggerService(App.LogLevel, App.LogFormat); err != nil {
		return err
	}

	return nil
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
