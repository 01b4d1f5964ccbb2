package notification

import "time"

type Type string

const (
	TypeLike    Type = "like"
	TypeComment Type = "comment"
)

// TargetKind tells which collection PostID refers to.
type TargetKind string

const (
	TargetPost  TargetKind = "post"
	TargetVideo TargetKind = "video"
)

// Notification informs PostAuthorID that ActorID liked or commented on one of
// their posts or videos. Read only ever goes from false to true.
type Notification struct {
	ID           int64
	Type         Type
	ActorID      int64
	PostID       int64
	TargetKind   TargetKind
	PostAuthorID int64
	Timestamp    time.Time
	Read         bool
}

// Event describes an interaction that may be worth notifying about.
type Event struct {
	Type           Type
	ActorID        int64
	TargetAuthorID int64
	PostID         int64
	TargetKind     TargetKind
}

// Generate builds the notification for ev. Nothing is produced when the actor
// is acting on their own content.
func Generate(ev Event, id int64, now time.Time) (Notification, bool) {
	if ev.ActorID == ev.TargetAuthorID {
		return Notification{}, false
	}
	kind := ev.TargetKind
	if kind == "" {
		kind = TargetPost
	}
	return Notification{
		ID:           id,
		Type:         ev.Type,
		ActorID:      ev.ActorID,
		PostID:       ev.PostID,
		TargetKind:   kind,
		PostAuthorID: ev.TargetAuthorID,
		Timestamp:    now,
		Read:         false,
	}, true
}

// MarkAllRead returns a new collection in which every notification is read.
func MarkAllRead(ns []Notification) []Notification {
	out := make([]Notification, len(ns))
	for i, n := range ns {
		n.Read = true
		out[i] = n
	}
	return out
}

func UnreadCount(ns []Notification) int {
	count := 0
	for _, n := range ns {
		if !n.Read {
			count++
		}
	}
	return count
}
