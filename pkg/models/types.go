package models

import "time"

// Priority is the maintenance urgency tier derived from remaining useful life.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Label returns the Arabic display label used in dashboards and chat answers.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "عالي"
	case PriorityMedium:
		return "متوسط"
	default:
		return "منخفض"
	}
}

// PriorityFor maps remaining useful life (years) to a maintenance priority.
func PriorityFor(remainingLife float64) Priority {
	switch {
	case remainingLife < 1:
		return PriorityHigh
	case remainingLife < 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// AssetRecord represents one physical asset row of the inventory
type AssetRecord struct {
	TagID                   string   `json:"tag_id"`
	Description             string   `json:"description"`
	City                    string   `json:"city"`
	Custodian               string   `json:"custodian"`
	Cost                    float64  `json:"cost"`
	NetBookValue            float64  `json:"net_book_value"`
	RemainingUsefulLife     float64  `json:"remaining_useful_life"`
	Manufacturer            string   `json:"manufacturer,omitempty"`
	DepreciationAmount      float64  `json:"depreciation_amount,omitempty"`
	AccumulatedDepreciation float64  `json:"accumulated_depreciation,omitempty"`
	MaintenancePriority     Priority `json:"maintenance_priority"`
}

// CountEntry is one entry of an ordered key -> count distribution.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Insights summarizes the whole store for the dashboard cards and charts
type Insights struct {
	TotalCount           int           `json:"total_count"`
	TotalValue           float64       `json:"total_value"`
	HighPriorityCount    int           `json:"high_priority_count"`
	MediumPriorityCount  int           `json:"medium_priority_count"`
	CityDistribution     []CountEntry  `json:"city_distribution"`
	TopByValue           []AssetRecord `json:"top_5_by_value"`
	PriorityDistribution []CountEntry  `json:"priority_distribution"`
}

// Recommendation is a maintenance suggestion derived from a High or Medium priority asset.
type Recommendation struct {
	AssetRef      string   `json:"asset_ref"`
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	Reason        string   `json:"reason"`
	RemainingLife float64  `json:"remaining_life"`
	Department    string   `json:"department"`
	Cost          float64  `json:"cost"`
	City          string   `json:"city"`
}

// DepartmentStats aggregates the assets held by one custodian
type DepartmentStats struct {
	Custodian         string  `json:"custodian"`
	Count             int     `json:"count"`
	TotalNetBookValue float64 `json:"total_net_book_value"`
	TotalCost         float64 `json:"total_cost"`
	MeanRemainingLife float64 `json:"mean_remaining_life"`
}

// ChatRole identifies who produced a chat turn
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message of a chat transcript
type ChatTurn struct {
	Role      ChatRole  `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents an incoming chat request
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"` // generated when empty
}

// ChatResponse represents the response from the chat API
type ChatResponse struct {
	Response      string `json:"response"`
	SessionID     string `json:"session_id"`
	Timestamp     string `json:"timestamp"`
	HistoryLength int    `json:"history_length"`
}

// ReloadResponse reports the outcome of an asset reload
type ReloadResponse struct {
	Success bool   `json:"success"`
	Source  string `json:"source"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}
