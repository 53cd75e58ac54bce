package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"smart-assets-api/pkg/models"
	"smart-assets-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the rule-based assistant.
type ChatHandler struct {
	chat         *services.ChatService
	assets       *services.AssetService
	historyLimit int
}

// NewChatHandler creates a ChatHandler. historyLimit is the default number of turns returned.
func NewChatHandler(chat *services.ChatService, assets *services.AssetService, historyLimit int) *ChatHandler {
	return &ChatHandler{chat: chat, assets: assets, historyLimit: historyLimit}
}

// PostMessage answers a question and records it in the session history.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "message is required"})
		return
	}

	sessionID, turn := h.chat.Ask(req.SessionID, req.Message, h.assets.Current())
	history := h.chat.Sessions().Get(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"response": models.ChatResponse{
			Response:      turn.Message,
			SessionID:     sessionID,
			Timestamp:     turn.Timestamp.Format(time.RFC3339),
			HistoryLength: history.Len(),
		},
	})
}

// GetHistory returns the latest turns of a session, ?last=0 for the full transcript.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("session_id")
	last := h.historyLimit
	if raw := c.Query("last"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "last must be a non-negative integer"})
			return
		}
		last = n
	}

	history, ok := h.chat.Sessions().Lookup(sessionID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID, "count": 0, "turns": []models.ChatTurn{}})
		return
	}
	turns := history.Last(last)
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID, "count": len(turns), "total": history.Len(), "turns": turns})
}

// ClearHistory empties a session transcript.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	sessionID := c.Param("session_id")
	if history, ok := h.chat.Sessions().Lookup(sessionID); ok {
		history.Clear()
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID})
}

// GetSuggestions returns the quick prompts.
func (h *ChatHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": services.QuickPrompts})
}
