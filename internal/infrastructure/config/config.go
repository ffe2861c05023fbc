// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Flight schedule API
	FlightAPIBaseURL string
	FlightAPIKey     string
	FlightAPITimeout time.Duration

	// LLM completion API
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// PostgreSQL airport reference table, optional
	PostgresDSN string

	// Labels echoed in response metadata
	DataSource string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 120)) * time.Second,

		FlightAPIBaseURL: getEnv("FLIGHT_API_BASE_URL", "https://flight-radar1.p.rapidapi.com"),
		FlightAPIKey:     getEnv("FLIGHT_API_KEY", ""),
		FlightAPITimeout: time.Duration(getEnvAsInt("FLIGHT_API_TIMEOUT", 30)) * time.Second,

		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout: time.Duration(getEnvAsInt("OPENAI_TIMEOUT", 60)) * time.Second,

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		DataSource: getEnv("DATA_SOURCE_LABEL", "flight-schedule-api"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
