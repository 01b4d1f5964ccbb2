package notificationapp

import (
	"context"
	"time"

	"manshurat/internal/core/interaction"
	"manshurat/internal/core/notification"
	"manshurat/internal/core/store"
	"manshurat/internal/core/timeline"
	"manshurat/internal/ports/events"
	notificationPort "manshurat/internal/ports/notification"
	storePort "manshurat/internal/ports/store"
)

type NotificationService struct {
	Store  storePort.SnapshotStore
	Events events.Emitter
	Now    func() time.Time
}

func NewNotificationService(st storePort.SnapshotStore, emitter events.Emitter) *NotificationService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &NotificationService{
		Store:  st,
		Events: emitter,
		Now:    time.Now,
	}
}

// Inbox returns the viewer's notifications, newest first.
func (s *NotificationService) Inbox(ctx context.Context) (*notificationPort.InboxDTO, error) {
	snap := s.Store.Current(ctx)
	inbox := timeline.Inbox(snap.Notifications, snap.ViewerID)
	return &notificationPort.InboxDTO{
		Unread:        notification.UnreadCount(inbox),
		Notifications: notificationPort.ListToDTO(inbox, snap.User),
	}, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) int {
	snap := s.Store.Current(ctx)
	return notification.UnreadCount(timeline.Inbox(snap.Notifications, snap.ViewerID))
}

// MarkAllRead marks every notification addressed to recipientID as read and
// returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID int64) (int, error) {
	var changed int
	_, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, n := interaction.MarkInboxRead(cur, recipientID)
		changed = n
		return next, nil
	})
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.Events.Emit(events.Event{Kind: events.NotificationsRead, ActorID: recipientID, RecipientID: recipientID, At: s.Now()})
	}
	return changed, nil
}

// ViewerID is the recipient whose inbox the viewer sees.
func (s *NotificationService) ViewerID(ctx context.Context) int64 {
	return s.Store.Current(ctx).ViewerID
}
