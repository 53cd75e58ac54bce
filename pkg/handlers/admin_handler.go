package handlers

import (
	"net/http"
	"sync/atomic"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves maintenance-mode and health endpoints.
type AdminHandler struct {
	AdminUsername string
	AdminPassword string
	assets        *services.AssetService
	maintenance   atomic.Bool
}

// NewAdminHandler creates an AdminHandler using the admin credentials of cfg.
func NewAdminHandler(cfg *config.Config, assets *services.AssetService) *AdminHandler {
	return &AdminHandler{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		assets:        assets,
	}
}

// AdminCredentials is the request body of the maintenance endpoints.
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StartMaintenance puts the health check into maintenance mode.
func (h *AdminHandler) StartMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	h.maintenance.Store(true)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode started"})
}

// StopMaintenance leaves maintenance mode.
func (h *AdminHandler) StopMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	h.maintenance.Store(false)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode stopped"})
}

func (h *AdminHandler) authorize(c *gin.Context) bool {
	var input AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return false
	}
	if h.AdminPassword == "" || input.Username != h.AdminUsername || input.Password != h.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return false
	}
	return true
}

// GetHealthStatus reports maintenance mode and the loaded dataset.
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isMaintenanceMode": h.maintenance.Load(),
		"source":            h.assets.Source(),
		"assets":            h.assets.Current().Len(),
		"loadedAt":          h.assets.LoadedAt(),
	})
}

// HealthCheck answers external health checkers such as load balancers.
func (h *AdminHandler) HealthCheck(c *gin.Context) {
	if h.maintenance.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": "Server is in maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
