package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/app"
	"smart-assets-api/pkg/handlers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// optional local overrides
	godotenv.Load("../../.env")

	os.Exit(m.Run())
}

func TestApplicationSetup(t *testing.T) {
	t.Setenv("ASSETS_SOURCE", "")
	t.Setenv("KEYWORDS_FILE", "../../configs/keywords.example.yaml")

	cfg := config.LoadConfig()
	require.NotNil(t, cfg)

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err, "application should initialize")
	assert.Equal(t, 10, a.Assets.Current().Len())
	assert.Len(t, a.Interpreter.Tables().Locations, 5)

	r := handlers.NewRouter(a)
	assert.NotNil(t, r, "router should not be nil")
}

func TestHealthEndpoint(t *testing.T) {
	t.Setenv("ASSETS_SOURCE", "")
	t.Setenv("KEYWORDS_FILE", "")
	t.Setenv("API_KEY", "")

	a, err := app.New(context.Background(), config.LoadConfig())
	require.NoError(t, err)
	r := handlers.NewRouter(a)

	for _, path := range []string{"/health", "/api/v1/insights", "/api/v1/chat/suggestions"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
