package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"smart-assets-api/pkg/models"
	"smart-assets-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// allValue is the selector value meaning "no restriction".
const allValue = "الكل"

// AssetHandler serves asset listing, search, analytics and reports.
type AssetHandler struct {
	assets              *services.AssetService
	interpreter         *services.QueryInterpreter
	charts              *services.ChartService
	recommendationLimit int
}

// NewAssetHandler creates an AssetHandler.
func NewAssetHandler(assets *services.AssetService, interpreter *services.QueryInterpreter, charts *services.ChartService, recommendationLimit int) *AssetHandler {
	return &AssetHandler{
		assets:              assets,
		interpreter:         interpreter,
		charts:              charts,
		recommendationLimit: recommendationLimit,
	}
}

// ListAssets returns the assets matching the structured filters.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	filter, err := parseAssetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	results := services.ApplyFilter(h.assets.Current(), filter)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"source":  h.assets.Source(),
		"count":   results.Len(),
		"assets":  results.Records(),
	})
}

// SearchAssets applies the structured filters and then the free-text smart search.
func (h *AssetHandler) SearchAssets(c *gin.Context) {
	filter, err := parseAssetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	query := c.Query("q")
	results := h.interpreter.Search(query, services.ApplyFilter(h.assets.Current(), filter))
	log.Printf("🔍 [search] q=%q results=%d", query, results.Len())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"count":   results.Len(),
		"assets":  results.Records(),
	})
}

// ReloadAssets reads the configured source again.
func (h *AssetHandler) ReloadAssets(c *gin.Context) {
	store, err := h.assets.Reload(c.Request.Context())
	resp := models.ReloadResponse{Success: err == nil, Source: h.assets.Source(), Count: store.Len()}
	if err != nil {
		resp.Error = err.Error()
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadAssets replaces the store with an uploaded .xlsx or .csv file.
func (h *AssetHandler) UploadAssets(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file field is required"})
		return
	}
	defer file.Close()

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unsupported file type, upload .xlsx or .csv"})
		return
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
		return
	}
	store, err := h.assets.Upload(&buf, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ReloadResponse{Success: false, Source: fileHeader.Filename, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ReloadResponse{Success: true, Source: h.assets.Source(), Count: store.Len()})
}

// GetCities lists the distinct cities for selectors.
func (h *AssetHandler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "cities": services.Cities(h.assets.Current())})
}

// GetDepartments lists the distinct custodians for selectors.
func (h *AssetHandler) GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "departments": services.Departments(h.assets.Current())})
}

// GetInsights returns the dashboard summary.
func (h *AssetHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "insights": services.Summarize(h.assets.Current())})
}

// GetRecommendations returns maintenance recommendations, limited by ?limit= (0 = all).
func (h *AssetHandler) GetRecommendations(c *gin.Context) {
	limit := h.recommendationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	recs := services.Recommendations(h.assets.Current())
	total := len(recs)
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total": total, "recommendations": recs})
}

// GetDepartmentAnalysis returns per-custodian aggregates.
func (h *AssetHandler) GetDepartmentAnalysis(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "departments": services.DepartmentAnalysis(h.assets.Current())})
}

// GetReport returns one of the canned reports.
func (h *AssetHandler) GetReport(c *gin.Context) {
	kind := services.ReportKind(c.Param("kind"))
	report, err := services.BuildReport(h.assets.Current(), kind, c.Query("param"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUnknownReport) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error(), "kinds": services.ReportKinds})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"kind":    kind,
		"count":   report.Len(),
		"assets":  report.Records(),
	})
}

// GetDashboardCharts renders the chart page as HTML.
func (h *AssetHandler) GetDashboardCharts(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.charts.RenderDashboard(&buf, h.assets.Current()); err != nil {
		log.Printf("❌ [charts] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func parseAssetFilter(c *gin.Context) (services.AssetFilter, error) {
	filter := services.AssetFilter{
		City:       selectorValue(c.Query("city")),
		Department: selectorValue(c.Query("department")),
	}

	for _, p := range []struct {
		key string
		dst **float64
	}{{"min_cost", &filter.MinCost}, {"max_cost", &filter.MaxCost}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("%s must be a number: %q", p.key, raw)
		}
		*p.dst = &v
	}

	for _, raw := range c.QueryArray("priority") {
		p, err := parsePriority(raw)
		if err != nil {
			return filter, err
		}
		filter.Priorities = append(filter.Priorities, p)
	}
	return filter, nil
}

func selectorValue(v string) string {
	v = strings.TrimSpace(v)
	if v == allValue {
		return ""
	}
	return v
}

func parsePriority(raw string) (models.Priority, error) {
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if strings.EqualFold(raw, string(p)) || raw == p.Label() {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", raw)
}
