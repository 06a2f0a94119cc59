package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment
// overrides applied.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("SLIDESMITH_HOST", "localhost"),
			Port:            getEnvIntOrDefault("SLIDESMITH_PORT", 8420),
			ReadTimeout:     getEnvIntOrDefault("SLIDESMITH_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("SLIDESMITH_WRITE_TIMEOUT", 60),
			ShutdownTimeout: getEnvIntOrDefault("SLIDESMITH_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins: getEnvSliceOrDefault("SLIDESMITH_CORS_ORIGINS", []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			}),
		},
		Generator: entities.GeneratorConfig{
			DefaultTheme: getEnvOrDefault("SLIDESMITH_THEME", "auto"),
			DefaultTitle: getEnvOrDefault("SLIDESMITH_TITLE", "Presentation"),
			Creator:      getEnvOrDefault("SLIDESMITH_CREATOR", "slidesmith"),
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("SLIDESMITH_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("SLIDESMITH_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default.
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns a comma-separated environment variable as a
// slice or default.
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
