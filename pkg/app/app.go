package app

import (
	"context"
	"fmt"
	"log"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/services"
)

// App bundles the services shared by the HTTP server and the CLI.
type App struct {
	Config      *config.Config
	Assets      *services.AssetService
	Interpreter *services.QueryInterpreter
	Chat        *services.ChatService
	Charts      *services.ChartService
	Monitoring  *services.MonitoringService
}

// New builds the services from cfg and performs the initial asset load.
// A failed load is logged and leaves an empty store; only invalid keyword tables are fatal.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	interpreter, err := NewInterpreter(cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}

	loader := services.NewAssetLoader(cfg.AssetsSheet, cfg.HTTPTimeout)
	assets := services.NewAssetService(loader, cfg.AssetsSource)
	if _, err := assets.Reload(ctx); err != nil {
		log.Printf("⚠️ [setup] initial asset load failed, continuing with an empty store: %v", err)
	}

	return &App{
		Config:      cfg,
		Assets:      assets,
		Interpreter: interpreter,
		Chat:        services.NewChatService(interpreter, services.NewSessionManager()),
		Charts:      services.NewChartService(),
		Monitoring:  services.NewMonitoringService(),
	}, nil
}

// NewInterpreter builds the query interpreter from the default keyword tables, overlaid
// with keywordsFile when it is set.
func NewInterpreter(keywordsFile string) (*services.QueryInterpreter, error) {
	tables := services.DefaultKeywordTables()
	if keywordsFile != "" {
		override, err := config.LoadKeywordTables(keywordsFile)
		if err != nil {
			return nil, err
		}
		tables = services.MergeKeywordTables(tables, *override)
		log.Printf("🔤 [setup] keyword tables loaded from %s", keywordsFile)
	}

	interpreter, err := services.NewQueryInterpreter(tables)
	if err != nil {
		return nil, fmt.Errorf("failed to build query interpreter: %w", err)
	}
	return interpreter, nil
}
