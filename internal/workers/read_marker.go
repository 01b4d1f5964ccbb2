package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// InboxMarker marks a recipient's notifications as read.
type InboxMarker interface {
	MarkAllRead(ctx context.Context, recipientID int64) (int, error)
}

// ReadMarker delays the read transition that follows opening the notification
// panel. Closing the panel before the delay elapses cancels it.
type ReadMarker struct {
	Marker InboxMarker
	Delay  time.Duration
	Logger *zap.Logger

	mu      sync.Mutex
	pending map[int64]*time.Timer
	stopped bool
}

func NewReadMarker(marker InboxMarker, delay time.Duration, logger *zap.Logger) *ReadMarker {
	return &ReadMarker{
		Marker:  marker,
		Delay:   delay,
		Logger:  logger,
		pending: make(map[int64]*time.Timer),
	}
}

// Schedule arranges for recipientID's inbox to be marked read after Delay.
// A pending schedule for the same recipient is replaced.
func (r *ReadMarker) Schedule(recipientID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	if t, ok := r.pending[recipientID]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(r.Delay, func() {
		r.mu.Lock()
		if r.pending[recipientID] != t {
			r.mu.Unlock()
			return
		}
		delete(r.pending, recipientID)
		r.mu.Unlock()

		r.fire(recipientID)
	})
	r.pending[recipientID] = t
}

// Cancel drops a pending schedule and reports whether one existed.
func (r *ReadMarker) Cancel(recipientID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.pending[recipientID]
	if !ok {
		return false
	}
	t.Stop()
	delete(r.pending, recipientID)
	return true
}

func (r *ReadMarker) Pending(recipientID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[recipientID]
	return ok
}

// Stop cancels every pending schedule; later calls to Schedule are ignored.
func (r *ReadMarker) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	for id, t := range r.pending {
		t.Stop()
		delete(r.pending, id)
	}
}

func (r *ReadMarker) fire(recipientID int64) {
	n, err := r.Marker.MarkAllRead(context.Background(), recipientID)
	if err != nil {
		r.Logger.Error("❌ Could not mark notifications read", zap.Int64("recipientID", recipientID), zap.Error(err))
		return
	}
	r.Logger.Debug("Marked notifications read", zap.Int64("recipientID", recipientID), zap.Int("count", n))
}
