package redis

import (
	"context"
	"testing"
	"time"

	"manshurat/internal/ports/events"

	"github.com/stretchr/testify/assert"
)

func TestEntryValues(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	got := entryValues(events.Event{
		ID:          "e1",
		Kind:        events.NotificationCreated,
		ActorID:     2,
		TargetID:    7,
		RecipientID: 1,
		Detail:      "like",
		At:          at,
	})
	assert.Equal(t, map[string]interface{}{
		"id":           "e1",
		"kind":         "notification.created",
		"actor_id":     "2",
		"target_id":    "7",
		"recipient_id": "1",
		"detail":       "like",
		"at":           "2024-06-01T09:30:00Z",
	}, got)
}

func TestPublishEmptyBatch(t *testing.T) {
	p := NewEventPublisherRedis(nil, "s", 10)
	assert.NoError(t, p.Publish(context.Background(), nil))
}
