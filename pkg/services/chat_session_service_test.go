package services

import (
	"sync"
	"testing"
	"time"

	"smart-assets-api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistory(t *testing.T) {
	h := NewChatHistory()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	h.Append(models.RoleUser, "one")
	h.Append(models.RoleAssistant, "two")
	turn := h.Append(models.RoleUser, "three")

	assert.Equal(t, fixed, turn.Timestamp)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "one", h.Turns()[0].Message)

	last := h.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, "two", last[0].Message)
	assert.Equal(t, "three", last[1].Message)
	assert.Len(t, h.Last(10), 3)
	assert.Len(t, h.Last(0), 3)

	last[0].Message = "edited"
	assert.Equal(t, "two", h.Turns()[1].Message)

	h.Clear()
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Turns())
}

func TestSessionManager(t *testing.T) {
	m := NewSessionManager()

	_, ok := m.Lookup("a")
	assert.False(t, ok)

	a := m.Get("a")
	assert.Same(t, a, m.Get("a"))
	found, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, a, found)
	assert.NotSame(t, a, m.Get("b"))
	assert.Equal(t, 2, m.Count())
}

func TestChatServiceAsk(t *testing.T) {
	chat := NewChatService(newTestInterpreter(t), NewSessionManager())
	store := SampleAssets()

	id, turn := chat.Ask("", "ما هي الأصول في جدة؟", store)
	require.NotEmpty(t, id)
	assert.Equal(t, models.RoleAssistant, turn.Role)
	assert.Contains(t, turn.Message, "العدد: 8 أصل")

	sameID, _ := chat.Ask(id, "اعطني إحصائيات الأصول", store)
	assert.Equal(t, id, sameID)

	turns := chat.Sessions().Get(id).Turns()
	require.Len(t, turns, 4)
	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, "ما هي الأصول في جدة؟", turns[0].Message)
	assert.Equal(t, models.RoleAssistant, turns[3].Role)
}

func TestChatSessionsAreIndependent(t *testing.T) {
	chat := NewChatService(newTestInterpreter(t), NewSessionManager())
	store := SampleAssets()

	chat.Ask("alice", "صيانة", store)
	chat.Ask("alice", "تكلفة", store)
	chat.Ask("bob", "عمر", store)

	assert.Equal(t, 4, chat.Sessions().Get("alice").Len())
	assert.Equal(t, 2, chat.Sessions().Get("bob").Len())
}

func TestChatConcurrentAsk(t *testing.T) {
	chat := NewChatService(newTestInterpreter(t), NewSessionManager())
	store := SampleAssets()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chat.Ask("shared", "إحصائيات", store)
		}()
	}
	wg.Wait()

	assert.Equal(t, 40, chat.Sessions().Get("shared").Len())
}
