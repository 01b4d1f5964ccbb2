package videoapp

import (
	"context"
	"fmt"
	"time"

	"manshurat/internal/config"
	"manshurat/internal/core/interaction"
	postEntity "manshurat/internal/core/post"
	postapp "manshurat/internal/core/post/service"
	"manshurat/internal/core/store"
	"manshurat/internal/core/timeline"
	videoEntity "manshurat/internal/core/video"
	"manshurat/internal/ports/events"
	postPort "manshurat/internal/ports/post"
	storePort "manshurat/internal/ports/store"
	videoPort "manshurat/internal/ports/video"

	"go.uber.org/zap"
)

type VideoService struct {
	Store  storePort.SnapshotStore
	Events events.Emitter
	Now    func() time.Time
}

func NewVideoService(st storePort.SnapshotStore, emitter events.Emitter) *VideoService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &VideoService{
		Store:  st,
		Events: emitter,
		Now:    time.Now,
	}
}

func toDTO(snap *store.Snapshot, v videoEntity.Video) (*videoPort.VideoDTO, bool) {
	following := snap.FollowingOf(snap.ViewerID).Has(v.CreatorID)
	return videoPort.ToDTO(v, snap.ViewerID, following, snap.User)
}

func (s *VideoService) CreateVideo(ctx context.Context, draft videoEntity.Draft) (*videoPort.VideoDTO, error) {
	now := s.Now()
	var created videoEntity.Video
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, v, err := interaction.CreateVideo(cur, cur.ViewerID, draft, now)
		created = v
		return next, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	config.Logger.Info("🎬 Created video", zap.Int64("videoID", created.ID), zap.Int64("creatorID", created.CreatorID))
	s.Events.Emit(events.Event{Kind: events.VideoCreated, ActorID: created.CreatorID, TargetID: created.ID, At: now})

	dto, _ := toDTO(snap, created)
	return dto, nil
}

func (s *VideoService) ToggleLike(ctx context.Context, videoID int64) (*postPort.LikeDTO, error) {
	now := s.Now()
	var (
		res   interaction.LikeResult
		actor int64
	)
	_, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		if _, ok := cur.Video(videoID); !ok {
			return cur, fmt.Errorf("video %d: %w", videoID, store.ErrNotFound)
		}
		actor = cur.ViewerID
		next, r, err := interaction.ToggleLike(cur, videoID, actor, now)
		res = r
		return next, err
	})
	if err != nil {
		return nil, err
	}

	postapp.EmitLike(s.Events, actor, res, now)
	return &postPort.LikeDTO{TargetID: videoID, Kind: string(res.TargetKind), Liked: res.Liked, LikeCount: res.LikeCount}, nil
}

func (s *VideoService) AddComment(ctx context.Context, videoID int64, text string) (*postPort.CommentDTO, error) {
	now := s.Now()
	var res interaction.CommentResult
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		if _, ok := cur.Video(videoID); !ok {
			return cur, fmt.Errorf("video %d: %w", videoID, store.ErrNotFound)
		}
		next, r, err := interaction.AddComment(cur, videoID, cur.ViewerID, text, now)
		res = r
		return next, err
	})
	if err != nil {
		return nil, err
	}

	postapp.EmitComment(s.Events, res, now)
	dtos := postPort.CommentsToDTO([]postEntity.Comment{res.Comment}, snap.User)
	if len(dtos) == 0 {
		return nil, fmt.Errorf("comment author %d: %w", res.Comment.AuthorID, store.ErrNotFound)
	}
	return dtos[0], nil
}

// RecordView counts one playback of videoID.
func (s *VideoService) RecordView(ctx context.Context, videoID int64) (*videoPort.VideoDTO, error) {
	var viewed videoEntity.Video
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, v, err := interaction.RecordView(cur, videoID)
		viewed = v
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.Events.Emit(events.Event{Kind: events.VideoViewed, ActorID: snap.ViewerID, TargetID: videoID, At: s.Now()})
	dto, ok := toDTO(snap, viewed)
	if !ok {
		return nil, fmt.Errorf("creator of video %d: %w", videoID, store.ErrNotFound)
	}
	return dto, nil
}

// DeleteVideo removes videoID when the viewer created it. It reports whether
// anything was removed; a video that is already gone is not an error.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID int64) (bool, error) {
	var (
		res       interaction.DeleteResult
		requestor int64
	)
	_, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		requestor = cur.ViewerID
		next, r, err := interaction.DeleteVideo(cur, videoID, requestor)
		res = r
		return next, err
	})
	if err != nil {
		config.Logger.Warn("⚠️ Video deletion refused", zap.Int64("videoID", videoID), zap.Int64("requestorID", requestor), zap.Error(err))
		return false, err
	}

	if res.Deleted {
		config.Logger.Info("🗑️ Deleted video", zap.Int64("videoID", videoID))
		s.Events.Emit(events.Event{Kind: events.VideoDeleted, ActorID: requestor, TargetID: videoID, At: s.Now()})
	}
	return res.Deleted, nil
}

// Feed returns every video ordered by order.
func (s *VideoService) Feed(ctx context.Context, order timeline.Order) ([]*videoPort.VideoDTO, error) {
	snap := s.Store.Current(ctx)
	sorted := timeline.SortVideos(snap.Videos, order)
	out := make([]*videoPort.VideoDTO, 0, len(sorted))
	for _, v := range sorted {
		if dto, ok := toDTO(snap, v); ok {
			out = append(out, dto)
		}
	}
	return out, nil
}
