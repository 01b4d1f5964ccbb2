package redis

import (
	"context"
	"strconv"
	"time"

	"manshurat/internal/config"
	"manshurat/internal/ports/events"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// EventPublisherRedis appends interaction events to a Redis stream.
type EventPublisherRedis struct {
	Client *redis.Client
	Stream string
	MaxLen int64
}

var _ events.Publisher = (*EventPublisherRedis)(nil)

func NewEventPublisherRedis(client *redis.Client, stream string, maxLen int64) *EventPublisherRedis {
	return &EventPublisherRedis{
		Client: client,
		Stream: stream,
		MaxLen: maxLen,
	}
}

// Publish writes the batch in one pipeline; each event becomes one XADD entry.
func (r *EventPublisherRedis) Publish(ctx context.Context, batch []events.Event) error {
	if len(batch) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for _, evt := range batch {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: r.Stream,
			MaxLen: r.MaxLen,
			Approx: true,
			Values: entryValues(evt),
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	config.Logger.Debug("Published events", zap.String("stream", r.Stream), zap.Int("count", len(batch)))
	return nil
}

func entryValues(evt events.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":           evt.ID,
		"kind":         string(evt.Kind),
		"actor_id":     strconv.FormatInt(evt.ActorID, 10),
		"target_id":    strconv.FormatInt(evt.TargetID, 10),
		"recipient_id": strconv.FormatInt(evt.RecipientID, 10),
		"detail":       evt.Detail,
		"at":           evt.At.UTC().Format(time.RFC3339Nano),
	}
}
