package events

import (
	"context"
	"time"
)

type Kind string

const (
	PostCreated         Kind = "post.created"
	VideoCreated        Kind = "video.created"
	VideoDeleted        Kind = "video.deleted"
	VideoViewed         Kind = "video.viewed"
	LikeToggled         Kind = "like.toggled"
	CommentAdded        Kind = "comment.added"
	FollowToggled       Kind = "follow.toggled"
	ProfileUpdated      Kind = "profile.updated"
	NotificationCreated Kind = "notification.created"
	NotificationsRead   Kind = "notifications.read"
	ViewerSwitched      Kind = "viewer.switched"
)

// Event is the delta produced by one interaction.
type Event struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	ActorID     int64     `json:"actorId"`
	TargetID    int64     `json:"targetId,omitempty"`
	RecipientID int64     `json:"recipientId,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	At          time.Time `json:"at"`
}

// Publisher broadcasts a batch of events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, batch []Event) error
}

// Emitter accepts events from services without blocking them.
type Emitter interface {
	Emit(evt Event)
}

type discard struct{}

func (discard) Emit(Event) {}

// Discard is an Emitter that drops every event.
var Discard Emitter = discard{}
