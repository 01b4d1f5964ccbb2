package memory

import (
	"context"
	"sync"

	"manshurat/internal/ports/events"
)

// EventLog keeps the most recent published events in memory. It stands in for
// Redis when no broker is configured.
type EventLog struct {
	mu     sync.Mutex
	limit  int
	events []events.Event
}

var _ events.Publisher = (*EventLog)(nil)

func NewEventLog(limit int) *EventLog {
	if limit <= 0 {
		limit = 1000
	}
	return &EventLog{limit: limit}
}

func (l *EventLog) Publish(_ context.Context, batch []events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, batch...)
	if over := len(l.events) - l.limit; over > 0 {
		l.events = append([]events.Event(nil), l.events[over:]...)
	}
	return nil
}

// Recent returns up to n of the latest events, oldest first.
func (l *EventLog) Recent(n int) []events.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.events) {
		n = len(l.events)
	}
	out := make([]events.Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}
