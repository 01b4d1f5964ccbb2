package followerapp

import (
	"context"
	"time"

	"manshurat/internal/config"
	"manshurat/internal/core/interaction"
	"manshurat/internal/core/store"
	"manshurat/internal/ports/events"
	followerPort "manshurat/internal/ports/follower"
	storePort "manshurat/internal/ports/store"
	userPort "manshurat/internal/ports/user"

	"go.uber.org/zap"
)

type FollowerService struct {
	Store  storePort.SnapshotStore
	Events events.Emitter
	Now    func() time.Time
}

func NewFollowerService(st storePort.SnapshotStore, emitter events.Emitter) *FollowerService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &FollowerService{
		Store:  st,
		Events: emitter,
		Now:    time.Now,
	}
}

// ToggleFollow follows or unfollows targetID on behalf of the viewer.
func (s *FollowerService) ToggleFollow(ctx context.Context, targetID int64) (*followerPort.FollowDTO, error) {
	var (
		res    interaction.FollowResult
		viewer int64
	)
	_, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		viewer = cur.ViewerID
		next, r, err := interaction.ToggleFollow(cur, viewer, targetID)
		res = r
		return next, err
	})
	if err != nil {
		config.Logger.Warn("⚠️ Follow toggle rejected", zap.Int64("viewerID", viewer), zap.Int64("targetID", targetID), zap.Error(err))
		return nil, err
	}

	detail := "unfollowed"
	if res.Following {
		detail = "followed"
	}
	s.Events.Emit(events.Event{Kind: events.FollowToggled, ActorID: viewer, TargetID: targetID, Detail: detail, At: s.Now()})
	return &followerPort.FollowDTO{UserID: targetID, Following: res.Following}, nil
}

// Following lists the users the viewer follows, skipping ids that no longer
// resolve.
func (s *FollowerService) Following(ctx context.Context) ([]*userPort.UserDTO, error) {
	snap := s.Store.Current(ctx)
	set := snap.FollowingOf(snap.ViewerID)

	out := make([]*userPort.UserDTO, 0, len(set))
	for _, id := range set {
		if u, ok := snap.User(id); ok {
			out = append(out, userPort.ToDTO(u))
		}
	}
	return out, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, targetID int64) bool {
	snap := s.Store.Current(ctx)
	return snap.FollowingOf(snap.ViewerID).Has(targetID)
}
