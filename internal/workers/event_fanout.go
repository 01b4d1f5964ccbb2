package workers

import (
	"context"
	"time"

	"manshurat/internal/ports/events"

	"go.uber.org/zap"
)

// EventFanout moves events from the Outbox to a Publisher in batches.
type EventFanout struct {
	Outbox    *Outbox
	Publisher events.Publisher
	BatchSize int
	Logger    *zap.Logger
}

func NewEventFanout(outbox *Outbox, publisher events.Publisher, batchSize int, logger *zap.Logger) *EventFanout {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &EventFanout{
		Outbox:    outbox,
		Publisher: publisher,
		BatchSize: batchSize,
		Logger:    logger,
	}
}

// Run publishes until ctx is cancelled, then flushes whatever is still queued.
func (w *EventFanout) Run(ctx context.Context) {
	w.Logger.Info("🚀 EventFanout started", zap.Int("batchSize", w.BatchSize))
	for {
		select {
		case <-ctx.Done():
			w.flush()
			w.Logger.Info("🛑 EventFanout stopped")
			return
		case evt := <-w.Outbox.ch:
			w.publish(ctx, w.collect(evt))
		}
	}
}

// collect gathers first plus whatever is immediately available, up to BatchSize.
func (w *EventFanout) collect(first events.Event) []events.Event {
	batch := make([]events.Event, 0, w.BatchSize)
	batch = append(batch, first)
	for len(batch) < w.BatchSize {
		select {
		case evt := <-w.Outbox.ch:
			batch = append(batch, evt)
		default:
			return batch
		}
	}
	return batch
}

func (w *EventFanout) publish(ctx context.Context, batch []events.Event) {
	if err := w.Publisher.Publish(ctx, batch); err != nil {
		w.Logger.Error("❌ Error publishing events", zap.Int("count", len(batch)), zap.Error(err))
		return
	}
	w.Logger.Debug("📦 Published batch", zap.Int("count", len(batch)))
}

func (w *EventFanout) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case evt := <-w.Outbox.ch:
			w.publish(ctx, w.collect(evt))
		default:
			return
		}
	}
}
