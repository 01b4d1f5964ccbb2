package notification

import (
	"manshurat/internal/core/notification"
	postPort "manshurat/internal/ports/post"
	userPort "manshurat/internal/ports/user"
)

type NotificationDTO struct {
	ID         int64             `json:"id"`
	Type       string            `json:"type"`
	Actor      *userPort.UserDTO `json:"actor"`
	PostID     int64             `json:"post_id"`
	TargetKind string            `json:"target_kind"`
	CreatedAt  string            `json:"created_at"`
	Read       bool              `json:"read"`
}

type InboxDTO struct {
	Unread        int                `json:"unread"`
	Notifications []*NotificationDTO `json:"notifications"`
}

// ListToDTO maps notifications in order, dropping those whose actor is gone.
func ListToDTO(ns []notification.Notification, lookup postPort.UserLookup) []*NotificationDTO {
	out := make([]*NotificationDTO, 0, len(ns))
	for _, n := range ns {
		actor, ok := lookup(n.ActorID)
		if !ok {
			continue
		}
		out = append(out, &NotificationDTO{
			ID:         n.ID,
			Type:       string(n.Type),
			Actor:      userPort.ToDTO(actor),
			PostID:     n.PostID,
			TargetKind: string(n.TargetKind),
			CreatedAt:  postPort.FormatTime(n.Timestamp),
			Read:       n.Read,
		})
	}
	return out
}
