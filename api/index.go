package handler

import (
	"context"
	"log"
	"net/http"
	"sync"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/app"
	"smart-assets-api/pkg/handlers"

	"github.com/gin-gonic/gin"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

// setupApp builds the router once per serverless instance. Environment variables come
// from the platform, so .env files are not read here.
func setupApp() (*gin.Engine, error) {
	once.Do(func() {
		cfg := config.LoadConfig()
		a, err := app.New(context.Background(), cfg)
		if err != nil {
			initErr = err
			return
		}
		router = handlers.NewRouter(a)
		log.Printf("🟢 [setupApp] router ready (%d assets)", a.Assets.Current().Len())
	})
	return router, initErr
}

// Handler is the serverless entry point for every request.
func Handler(w http.ResponseWriter, r *http.Request) {
	engine, err := setupApp()
	if err != nil {
		log.Printf("❌ [Handler] setup failed: %v", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	engine.ServeHTTP(w, r)
}
