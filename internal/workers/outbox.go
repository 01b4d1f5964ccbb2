package workers

import (
	"sync/atomic"

	"manshurat/internal/ports/events"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Outbox buffers events between the services and EventFanout. Emit never
// blocks: when the buffer is full the event is dropped and counted.
type Outbox struct {
	ch      chan events.Event
	dropped atomic.Int64
	logger  *zap.Logger
}

var _ events.Emitter = (*Outbox)(nil)

func NewOutbox(size int, logger *zap.Logger) *Outbox {
	if size <= 0 {
		size = 1
	}
	return &Outbox{ch: make(chan events.Event, size), logger: logger}
}

func (o *Outbox) Emit(evt events.Event) {
	if evt.ID == "" {
		evt.ID = uuid.Must(uuid.NewV4()).String()
	}
	select {
	case o.ch <- evt:
	default:
		o.dropped.Add(1)
		o.logger.Warn("⚠️ Outbox full, dropping event", zap.String("kind", string(evt.Kind)), zap.String("id", evt.ID))
	}
}

// Dropped returns how many events were discarded so far.
func (o *Outbox) Dropped() int64 {
	return o.dropped.Load()
}

// Len is the number of events waiting to be published.
func (o *Outbox) Len() int {
	return len(o.ch)
}
