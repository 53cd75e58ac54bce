package services

import (
	"log"
	"sync"
	"time"

	"smart-assets-api/pkg/models"

	"github.com/google/uuid"
)

// QuickPrompts are the canned questions offered beside the chat box.
var QuickPrompts = []string{
	"ما هي الأصول التي تحتاج صيانة عاجلة؟",
	"اعطني إحصائيات الأصول",
	"ما هي الأصول في جدة؟",
}

// ChatHistory is the append-only transcript of one chat session.
type ChatHistory struct {
	mu    sync.RWMutex
	turns []models.ChatTurn
	now   func() time.Time
}

// NewChatHistory creates an empty transcript.
func NewChatHistory() *ChatHistory {
	return &ChatHistory{now: time.Now}
}

// Append adds a turn and returns it.
func (h *ChatHistory) Append(role models.ChatRole, message string) models.ChatTurn {
	h.mu.Lock()
	defer h.mu.Unlock()
	turn := models.ChatTurn{Role: role, Message: message, Timestamp: h.now()}
	h.turns = append(h.turns, turn)
	return turn
}

// Turns returns a copy of the transcript.
func (h *ChatHistory) Turns() []models.ChatTurn {
	return h.Last(0)
}

// Last returns the n most recent turns, or all turns when n <= 0.
func (h *ChatHistory) Last(n int) []models.ChatTurn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	start := 0
	if n > 0 && len(h.turns) > n {
		start = len(h.turns) - n
	}
	out := make([]models.ChatTurn, len(h.turns)-start)
	copy(out, h.turns[start:])
	return out
}

// Len returns the number of turns.
func (h *ChatHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.turns)
}

// Clear drops every turn.
func (h *ChatHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}

// SessionManager gives every session id its own ChatHistory.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*ChatHistory
}

// NewSessionManager creates a manager without sessions.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*ChatHistory)}
}

// Get returns the history of id, creating it on first use.
func (m *SessionManager) Get(id string) *ChatHistory {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.sessions[id]
	if !ok {
		h = NewChatHistory()
		m.sessions[id] = h
	}
	return h
}

// Lookup returns the history of id without creating it.
func (m *SessionManager) Lookup(id string) (*ChatHistory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.sessions[id]
	return h, ok
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ChatService answers chat questions and records both sides in the session history.
type ChatService struct {
	interpreter *QueryInterpreter
	sessions    *SessionManager
}

// NewChatService creates a chat service over interpreter and sessions.
func NewChatService(interpreter *QueryInterpreter, sessions *SessionManager) *ChatService {
	return &ChatService{interpreter: interpreter, sessions: sessions}
}

// Sessions exposes the session manager.
func (s *ChatService) Sessions() *SessionManager {
	return s.sessions
}

// Ask answers message against store within sessionID, generating an id when empty.
// It returns the session id used and the assistant turn.
func (s *ChatService) Ask(sessionID, message string, store *AssetStore) (string, models.ChatTurn) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	history := s.sessions.Get(sessionID)
	history.Append(models.RoleUser, message)

	answer := s.interpreter.Answer(message, store)
	turn := history.Append(models.RoleAssistant, answer)
	log.Printf("💬 [chat] session=%s turns=%d", sessionID, history.Len())
	return sessionID, turn
}
