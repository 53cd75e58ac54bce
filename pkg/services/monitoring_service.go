package services

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const maxLogEntries = 5000

// LogEntry is a single request log record.
type LogEntry struct {
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
}

// MonitoringService keeps a bounded in-memory log of API requests.
type MonitoringService struct {
	logs []LogEntry
	mu   sync.RWMutex
}

// NewMonitoringService creates an empty request log.
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		logs: make([]LogEntry, 0),
	}
}

// LogRequest records entry, dropping the oldest entries beyond the cap.
func (s *MonitoringService) LogRequest(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogEntries {
		s.logs = s.logs[len(s.logs)-maxLogEntries:]
	}
}

// LoggingMiddleware records every request except the monitoring endpoints themselves.
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == "/api/v1/monitoring/logs" {
			return
		}
		s.LogRequest(LogEntry{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		})
	}
}

// MonitoringSummary aggregates the request log over a period.
type MonitoringSummary struct {
	PeriodHours      int              `json:"period_hours"`
	TotalRequests    int              `json:"total_requests"`
	Endpoints        map[string]int   `json:"endpoints"`
	StatusCodes      map[string]int   `json:"status_codes"`
	AvgResponseTimes map[string]int64 `json:"avg_response_ms"`
	RecentErrors     []LogEntry       `json:"recent_errors"`
}

// Summary aggregates the requests of the last periodHours hours.
func (s *MonitoringService) Summary(periodHours int) MonitoringSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since := time.Now().Add(-time.Duration(periodHours) * time.Hour)
	summary := MonitoringSummary{
		PeriodHours:      periodHours,
		Endpoints:        make(map[string]int),
		StatusCodes:      map[string]int{"2xx": 0, "4xx": 0, "5xx": 0},
		AvgResponseTimes: make(map[string]int64),
		RecentErrors:     make([]LogEntry, 0),
	}
	totals := make(map[string]time.Duration)

	for _, entry := range s.logs {
		if !entry.Timestamp.After(since) {
			continue
		}
		summary.TotalRequests++
		summary.Endpoints[entry.Path]++
		totals[entry.Path] += entry.ResponseTime
		switch {
		case entry.StatusCode >= 500:
			summary.StatusCodes["5xx"]++
		case entry.StatusCode >= 400:
			summary.StatusCodes["4xx"]++
		case entry.StatusCode >= 200 && entry.StatusCode < 300:
			summary.StatusCodes["2xx"]++
		}
	}
	for path, total := range totals {
		summary.AvgResponseTimes[path] = total.Milliseconds() / int64(summary.Endpoints[path])
	}

	// newest first
	for i := len(s.logs) - 1; i >= 0 && len(summary.RecentErrors) < 10; i-- {
		if s.logs[i].StatusCode >= 500 && s.logs[i].Timestamp.After(since) {
			summary.RecentErrors = append(summary.RecentErrors, s.logs[i])
		}
	}
	return summary
}
