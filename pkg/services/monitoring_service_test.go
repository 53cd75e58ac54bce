package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringSummary(t *testing.T) {
	svc := NewMonitoringService()
	now := time.Now()

	svc.LogRequest(LogEntry{Timestamp: now, Path: "/a", Method: "GET", StatusCode: 200, ResponseTime: 10 * time.Millisecond})
	svc.LogRequest(LogEntry{Timestamp: now, Path: "/a", Method: "GET", StatusCode: 404, ResponseTime: 30 * time.Millisecond})
	svc.LogRequest(LogEntry{Timestamp: now, Path: "/b", Method: "POST", StatusCode: 502, ResponseTime: time.Millisecond})
	svc.LogRequest(LogEntry{Timestamp: now.Add(-48 * time.Hour), Path: "/old", Method: "GET", StatusCode: 200})

	summary := svc.Summary(24)
	assert.Equal(t, 3, summary.TotalRequests)
	assert.Equal(t, 2, summary.Endpoints["/a"])
	assert.Equal(t, map[string]int{"2xx": 1, "4xx": 1, "5xx": 1}, summary.StatusCodes)
	assert.Equal(t, int64(20), summary.AvgResponseTimes["/a"])
	require.Len(t, summary.RecentErrors, 1)
	assert.Equal(t, "/b", summary.RecentErrors[0].Path)

	assert.Equal(t, 4, svc.Summary(24*7).TotalRequests)
}

func TestMonitoringLogIsBounded(t *testing.T) {
	svc := NewMonitoringService()
	for i := 0; i < maxLogEntries+10; i++ {
		svc.LogRequest(LogEntry{Timestamp: time.Now(), Path: "/x", StatusCode: 200})
	}
	assert.Equal(t, maxLogEntries, svc.Summary(1).TotalRequests)
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewMonitoringService()
	r := gin.New()
	r.Use(svc.LoggingMiddleware())
	r.GET("/assets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/monitoring/logs", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/assets/1", "/assets/2", "/api/v1/monitoring/logs", "/unknown"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	summary := svc.Summary(1)
	assert.Equal(t, 3, summary.TotalRequests)
	assert.Equal(t, 2, summary.Endpoints["/assets/:id"])
	assert.Equal(t, 1, summary.Endpoints["/unknown"])
	assert.Equal(t, 1, summary.StatusCodes["4xx"])
}
