package main

import (
	"context"
	"log"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/app"
	"smart-assets-api/pkg/handlers"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	r := handlers.NewRouter(a)

	log.Printf("Starting Smart Assets API on :%s (source: %s, %d assets)", cfg.Port, a.Assets.Source(), a.Assets.Current().Len())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
