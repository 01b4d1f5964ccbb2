package postapp

import (
	"context"
	"fmt"
	"time"

	"manshurat/internal/config"
	"manshurat/internal/core/interaction"
	"manshurat/internal/core/notification"
	postEntity "manshurat/internal/core/post"
	"manshurat/internal/core/store"
	"manshurat/internal/core/timeline"
	"manshurat/internal/ports/events"
	postPort "manshurat/internal/ports/post"
	storePort "manshurat/internal/ports/store"

	"go.uber.org/zap"
)

type PostService struct {
	Store  storePort.SnapshotStore
	Events events.Emitter
	Now    func() time.Time
}

func NewPostService(st storePort.SnapshotStore, emitter events.Emitter) *PostService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &PostService{
		Store:  st,
		Events: emitter,
		Now:    time.Now,
	}
}

// CreatePost publishes a post by the current viewer.
func (s *PostService) CreatePost(ctx context.Context, content, image string) (*postPort.PostDTO, error) {
	now := s.Now()
	var created postEntity.Post
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, p, err := interaction.CreatePost(cur, cur.ViewerID, content, image, now)
		created = p
		return next, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	config.Logger.Info("📝 Created post", zap.Int64("postID", created.ID), zap.Int64("authorID", created.AuthorID))
	s.Events.Emit(events.Event{Kind: events.PostCreated, ActorID: created.AuthorID, TargetID: created.ID, At: now})

	dto, _ := postPort.ToDTO(created, snap.ViewerID, snap.User)
	return dto, nil
}

// ToggleLike likes or unlikes postID as the current viewer.
func (s *PostService) ToggleLike(ctx context.Context, postID int64) (*postPort.LikeDTO, error) {
	now := s.Now()
	var (
		res   interaction.LikeResult
		actor int64
	)
	_, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		if _, ok := cur.Post(postID); !ok {
			return cur, fmt.Errorf("post %d: %w", postID, store.ErrNotFound)
		}
		actor = cur.ViewerID
		next, r, err := interaction.ToggleLike(cur, postID, actor, now)
		res = r
		return next, err
	})
	if err != nil {
		return nil, err
	}

	EmitLike(s.Events, actor, res, now)
	return &postPort.LikeDTO{TargetID: postID, Kind: string(res.TargetKind), Liked: res.Liked, LikeCount: res.LikeCount}, nil
}

// AddComment appends a comment by the current viewer to postID.
func (s *PostService) AddComment(ctx context.Context, postID int64, text string) (*postPort.CommentDTO, error) {
	now := s.Now()
	var res interaction.CommentResult
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		if _, ok := cur.Post(postID); !ok {
			return cur, fmt.Errorf("post %d: %w", postID, store.ErrNotFound)
		}
		next, r, err := interaction.AddComment(cur, postID, cur.ViewerID, text, now)
		res = r
		return next, err
	})
	if err != nil {
		return nil, err
	}

	EmitComment(s.Events, res, now)
	dtos := postPort.CommentsToDTO([]postEntity.Comment{res.Comment}, snap.User)
	if len(dtos) == 0 {
		return nil, fmt.Errorf("comment author %d: %w", res.Comment.AuthorID, store.ErrNotFound)
	}
	return dtos[0], nil
}

// Feed returns every post ordered by order.
func (s *PostService) Feed(ctx context.Context, order timeline.Order) ([]*postPort.PostDTO, error) {
	snap := s.Store.Current(ctx)
	return postPort.ListToDTO(timeline.Sort(snap.Posts, order), snap.ViewerID, snap.User), nil
}

// ProfilePosts returns the posts written by userID.
func (s *PostService) ProfilePosts(ctx context.Context, userID int64, order timeline.Order) ([]*postPort.PostDTO, error) {
	snap := s.Store.Current(ctx)
	if _, ok := snap.User(userID); !ok {
		return nil, fmt.Errorf("user %d: %w", userID, store.ErrNotFound)
	}
	return postPort.ListToDTO(timeline.ByAuthor(snap.Posts, userID, order), snap.ViewerID, snap.User), nil
}

// EmitLike reports a like toggle and the notification it produced, if any.
func EmitLike(e events.Emitter, actorID int64, res interaction.LikeResult, at time.Time) {
	detail := "unliked"
	if res.Liked {
		detail = "liked"
	}
	e.Emit(events.Event{Kind: events.LikeToggled, ActorID: actorID, TargetID: res.TargetID, Detail: detail, At: at})
	emitNotification(e, res.Notification)
}

// EmitComment reports a new comment and the notification it produced, if any.
func EmitComment(e events.Emitter, res interaction.CommentResult, at time.Time) {
	e.Emit(events.Event{Kind: events.CommentAdded, ActorID: res.Comment.AuthorID, TargetID: res.TargetID, At: at})
	emitNotification(e, res.Notification)
}

func emitNotification(e events.Emitter, n *notification.Notification) {
	if n == nil {
		return
	}
	e.Emit(events.Event{
		Kind:        events.NotificationCreated,
		ActorID:     n.ActorID,
		TargetID:    n.PostID,
		RecipientID: n.PostAuthorID,
		Detail:      string(n.Type),
		At:          n.Timestamp,
	})
}
