package handlers

import (
	"net/http"

	"smart-assets-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler exposes the request log summary.
type MonitoringHandler struct {
	Service *services.MonitoringService
}

// NewMonitoringHandler creates a MonitoringHandler.
func NewMonitoringHandler(service *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{
		Service: service,
	}
}

// GetLogs returns request statistics for ?period=1h|24h|7d (default 24h).
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	var hours int
	switch c.DefaultQuery("period", "24h") {
	case "1h":
		hours = 1
	case "7d":
		hours = 24 * 7
	default:
		hours = 24
	}
	c.JSON(http.StatusOK, h.Service.Summary(hours))
}
