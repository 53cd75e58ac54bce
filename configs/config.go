package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port                string
	Environment         string
	AssetsSource        string
	AssetsSheet         string
	KeywordsFile        string
	APIKey              string
	AdminUsername       string
	AdminPassword       string
	ChatHistoryLimit    int
	RecommendationLimit int
	HTTPTimeout         time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		AssetsSource:        getEnv("ASSETS_SOURCE", ""),
		AssetsSheet:         getEnv("ASSETS_SHEET", "Assets"),
		KeywordsFile:        getEnv("KEYWORDS_FILE", ""),
		APIKey:              getEnv("API_KEY", ""),
		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
		ChatHistoryLimit:    getEnvInt("CHAT_HISTORY_LIMIT", 10),
		RecommendationLimit: getEnvInt("RECOMMENDATION_LIMIT", 8),
		HTTPTimeout:         time.Duration(getEnvInt("HTTP_TIMEOUT", 30)) * time.Second,
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets a positive integer environment variable, falling back on parse errors
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
