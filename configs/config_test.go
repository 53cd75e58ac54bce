package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("ASSETS_SOURCE", "https://docs.google.com/spreadsheets/d/abc/edit")
	t.Setenv("ASSETS_SHEET", "Inventory")
	t.Setenv("API_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("CHAT_HISTORY_LIMIT", "25")
	t.Setenv("RECOMMENDATION_LIMIT", "3")
	t.Setenv("HTTP_TIMEOUT", "5")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/edit", cfg.AssetsSource)
	assert.Equal(t, "Inventory", cfg.AssetsSheet)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "pw", cfg.AdminPassword)
	assert.Equal(t, 25, cfg.ChatHistoryLimit)
	assert.Equal(t, 3, cfg.RecommendationLimit)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "ASSETS_SOURCE", "ASSETS_SHEET", "KEYWORDS_FILE", "API_KEY",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "CHAT_HISTORY_LIMIT", "RECOMMENDATION_LIMIT", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.AssetsSource)
	assert.Equal(t, "Assets", cfg.AssetsSheet)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.AdminPassword)
	assert.Equal(t, 10, cfg.ChatHistoryLimit)
	assert.Equal(t, 8, cfg.RecommendationLimit)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestGetEnvIntFallsBack(t *testing.T) {
	t.Setenv("CHAT_HISTORY_LIMIT", "many")
	t.Setenv("RECOMMENDATION_LIMIT", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.ChatHistoryLimit)
	assert.Equal(t, 8, cfg.RecommendationLimit)
}
