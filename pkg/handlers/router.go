package handlers

import (
	"log"
	"net/http"

	"smart-assets-api/pkg/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint of the asset API onto a gin engine.
func NewRouter(a *app.App) *gin.Engine {
	r := gin.Default()

	assetHandler := NewAssetHandler(a.Assets, a.Interpreter, a.Charts, a.Config.RecommendationLimit)
	chatHandler := NewChatHandler(a.Chat, a.Assets, a.Config.ChatHistoryLimit)
	adminHandler := NewAdminHandler(a.Config, a.Assets)
	monitoringHandler := NewMonitoringHandler(a.Monitoring)

	r.Use(a.Monitoring.LoggingMiddleware())
	r.Use(cors.Default())

	r.GET("/health", adminHandler.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(apiKeyMiddleware(a.Config.APIKey))
	{
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		v1.GET("/monitoring/logs", monitoringHandler.GetLogs)

		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.GET("/search", assetHandler.SearchAssets)
			assets.GET("/cities", assetHandler.GetCities)
			assets.GET("/departments", assetHandler.GetDepartments)
			assets.POST("/reload", assetHandler.ReloadAssets)
			assets.POST("/upload", assetHandler.UploadAssets)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("", assetHandler.GetInsights)
			insights.GET("/recommendations", assetHandler.GetRecommendations)
			insights.GET("/departments", assetHandler.GetDepartmentAnalysis)
		}

		v1.GET("/reports/:kind", assetHandler.GetReport)
		v1.GET("/charts/dashboard", assetHandler.GetDashboardCharts)

		chat := v1.Group("/chat")
		{
			chat.POST("", chatHandler.PostMessage)
			chat.GET("/suggestions", chatHandler.GetSuggestions)
			chat.GET("/:session_id/history", chatHandler.GetHistory)
			chat.DELETE("/:session_id/history", chatHandler.ClearHistory)
		}
	}

	return r
}

// apiKeyMiddleware requires the X-API-KEY header when apiKey is configured.
func apiKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-KEY") != apiKey {
			log.Printf("❌ [auth] invalid API key from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
