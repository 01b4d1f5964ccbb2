package timelineapp

import (
	"context"

	"manshurat/internal/core/timeline"
	postPort "manshurat/internal/ports/post"
	storePort "manshurat/internal/ports/store"
)

type TimelineService struct {
	Store storePort.SnapshotStore
}

func NewTimelineService(st storePort.SnapshotStore) *TimelineService {
	return &TimelineService{Store: st}
}

// Home returns posts by the users the viewer follows.
func (s *TimelineService) Home(ctx context.Context, order timeline.Order) ([]*postPort.PostDTO, error) {
	snap := s.Store.Current(ctx)
	posts := timeline.Following(snap.Posts, snap.FollowingOf(snap.ViewerID), order)
	return postPort.ListToDTO(posts, snap.ViewerID, snap.User), nil
}
