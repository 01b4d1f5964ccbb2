// Package interaction holds the state transitions of the domain. Every
// function takes a snapshot and returns a new one; the input is never
// modified and is returned as-is when the call fails.
package interaction

import (
	"fmt"
	"strings"
	"time"

	"manshurat/internal/core/notification"
	"manshurat/internal/core/post"
	"manshurat/internal/core/store"
	"manshurat/internal/core/user"
	"manshurat/internal/core/video"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = fmt.Errorf("cannot follow yourself: %w", store.ErrValidation)

// LikeResult describes the outcome of ToggleLike.
type LikeResult struct {
	TargetKind   notification.TargetKind
	TargetID     int64
	Liked        bool
	LikeCount    int
	Notification *notification.Notification
}

// CommentResult describes the outcome of AddComment.
type CommentResult struct {
	TargetKind   notification.TargetKind
	TargetID     int64
	Comment      post.Comment
	Notification *notification.Notification
}

type FollowResult struct {
	TargetID  int64
	Following bool
}

type DeleteResult struct {
	VideoID int64
	Deleted bool
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requireUser(s *store.Snapshot, id int64) (user.User, error) {
	u, ok := s.User(id)
	if !ok {
		return user.User{}, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	return u, nil
}

// CreatePost adds a new post by authorID at the head of the feed.
func CreatePost(s *store.Snapshot, authorID int64, content, image string, now time.Time) (*store.Snapshot, post.Post, error) {
	if isBlank(content) && image == "" {
		return s, post.Post{}, fmt.Errorf("post needs content or an image: %w", store.ErrValidation)
	}
	if _, err := requireUser(s, authorID); err != nil {
		return s, post.Post{}, err
	}

	next, id := s.NextID()
	p := post.Post{
		ID:        id,
		AuthorID:  authorID,
		Content:   content,
		Image:     image,
		Likes:     post.Likes{},
		Comments:  []post.Comment{},
		Timestamp: now,
	}
	return next.PrependPost(p), p, nil
}

// CreateVideo adds a new video by creatorID at the head of the video feed.
func CreateVideo(s *store.Snapshot, creatorID int64, d video.Draft, now time.Time) (*store.Snapshot, video.Video, error) {
	if isBlank(d.Title) || isBlank(d.VideoURL) {
		return s, video.Video{}, fmt.Errorf("video needs a title and a url: %w", store.ErrValidation)
	}
	if err := d.Validate(); err != nil {
		return s, video.Video{}, fmt.Errorf("%v: %w", err, store.ErrValidation)
	}
	if _, err := requireUser(s, creatorID); err != nil {
		return s, video.Video{}, err
	}

	next, id := s.NextID()
	v := video.Video{
		ID:          id,
		CreatorID:   creatorID,
		Title:       d.Title,
		Description: d.Description,
		Thumbnail:   d.Thumbnail,
		VideoURL:    d.VideoURL,
		Likes:       post.Likes{},
		Comments:    []post.Comment{},
		Timestamp:   now,
	}
	return next.PrependVideo(v), v, nil
}

// ToggleLike flips actorID's like on the post or video with targetID. A
// notification is emitted only on a new like of somebody else's content;
// unliking never retracts one.
func ToggleLike(s *store.Snapshot, targetID, actorID int64, now time.Time) (*store.Snapshot, LikeResult, error) {
	if _, err := requireUser(s, actorID); err != nil {
		return s, LikeResult{}, err
	}

	var (
		next     *store.Snapshot
		res      = LikeResult{TargetID: targetID}
		authorID int64
	)
	if p, ok := s.Post(targetID); ok {
		p.Likes, res.Liked = p.Likes.Toggle(actorID)
		res.TargetKind = notification.TargetPost
		res.LikeCount = len(p.Likes)
		authorID = p.AuthorID
		next = s.WithPost(p)
	} else if v, ok := s.Video(targetID); ok {
		v.Likes, res.Liked = v.Likes.Toggle(actorID)
		res.TargetKind = notification.TargetVideo
		res.LikeCount = len(v.Likes)
		authorID = v.CreatorID
		next = s.WithVideo(v)
	} else {
		return s, LikeResult{}, fmt.Errorf("post or video %d: %w", targetID, store.ErrNotFound)
	}

	if !res.Liked {
		return next, res, nil
	}
	next, res.Notification = notify(next, notification.Event{
		Type:           notification.TypeLike,
		ActorID:        actorID,
		TargetAuthorID: authorID,
		PostID:         targetID,
		TargetKind:     res.TargetKind,
	}, now)
	return next, res, nil
}

// AddComment appends a comment to the post or video with targetID.
func AddComment(s *store.Snapshot, targetID, authorID int64, text string, now time.Time) (*store.Snapshot, CommentResult, error) {
	if isBlank(text) {
		return s, CommentResult{}, fmt.Errorf("comment text is empty: %w", store.ErrValidation)
	}
	if _, err := requireUser(s, authorID); err != nil {
		return s, CommentResult{}, err
	}

	_, isPost := s.Post(targetID)
	_, isVideo := s.Video(targetID)
	if !isPost && !isVideo {
		return s, CommentResult{}, fmt.Errorf("post or video %d: %w", targetID, store.ErrNotFound)
	}

	next, id := s.NextID()
	c := post.Comment{ID: id, AuthorID: authorID, Text: text, Timestamp: now}
	res := CommentResult{TargetID: targetID, Comment: c}

	var ownerID int64
	if isPost {
		p, _ := next.Post(targetID)
		p.Comments = post.AppendComment(p.Comments, c)
		res.TargetKind = notification.TargetPost
		ownerID = p.AuthorID
		next = next.WithPost(p)
	} else {
		v, _ := next.Video(targetID)
		v.Comments = post.AppendComment(v.Comments, c)
		res.TargetKind = notification.TargetVideo
		ownerID = v.CreatorID
		next = next.WithVideo(v)
	}

	next, res.Notification = notify(next, notification.Event{
		Type:           notification.TypeComment,
		ActorID:        authorID,
		TargetAuthorID: ownerID,
		PostID:         targetID,
		TargetKind:     res.TargetKind,
	}, now)
	return next, res, nil
}

// notify prepends the notification for ev, if any.
func notify(s *store.Snapshot, ev notification.Event, now time.Time) (*store.Snapshot, *notification.Notification) {
	if ev.ActorID == ev.TargetAuthorID {
		return s, nil
	}
	next, id := s.NextID()
	n, ok := notification.Generate(ev, id, now)
	if !ok {
		return s, nil
	}
	return next.PrependNotification(n), &n
}

// ToggleFollow flips targetID in viewerID's following set.
func ToggleFollow(s *store.Snapshot, viewerID, targetID int64) (*store.Snapshot, FollowResult, error) {
	if viewerID == targetID {
		return s, FollowResult{}, ErrSelfFollow
	}
	if _, err := requireUser(s, viewerID); err != nil {
		return s, FollowResult{}, err
	}
	if _, err := requireUser(s, targetID); err != nil {
		return s, FollowResult{}, err
	}

	set, following := s.FollowingOf(viewerID).Toggle(targetID)
	next := s.Clone()
	next.Following = s.Following.With(viewerID, set)
	return next, FollowResult{TargetID: targetID, Following: following}, nil
}

// UpdateProfile merges patch into the user's record.
func UpdateProfile(s *store.Snapshot, userID int64, patch user.ProfilePatch) (*store.Snapshot, user.User, error) {
	if err := patch.Validate(); err != nil {
		return s, user.User{}, fmt.Errorf("%v: %w", err, store.ErrValidation)
	}
	u, err := requireUser(s, userID)
	if err != nil {
		return s, user.User{}, err
	}
	if patch.Empty() {
		return s, u, nil
	}
	u = patch.Apply(u)
	return s.WithUser(u), u, nil
}

// DeleteVideo removes a video on behalf of its creator. Deleting a video that
// is already gone succeeds without doing anything.
func DeleteVideo(s *store.Snapshot, videoID, requestorID int64) (*store.Snapshot, DeleteResult, error) {
	v, ok := s.Video(videoID)
	if !ok {
		return s, DeleteResult{VideoID: videoID}, nil
	}
	if v.CreatorID != requestorID {
		return s, DeleteResult{}, fmt.Errorf("user %d may not delete video %d: %w", requestorID, videoID, store.ErrForbidden)
	}
	return s.WithoutVideo(videoID), DeleteResult{VideoID: videoID, Deleted: true}, nil
}

// RecordView counts one playback of the video.
func RecordView(s *store.Snapshot, videoID int64) (*store.Snapshot, video.Video, error) {
	v, ok := s.Video(videoID)
	if !ok {
		return s, video.Video{}, fmt.Errorf("video %d: %w", videoID, store.ErrNotFound)
	}
	v.Views++
	return s.WithVideo(v), v, nil
}

// MarkInboxRead marks every notification addressed to recipientID as read and
// returns how many changed.
func MarkInboxRead(s *store.Snapshot, recipientID int64) (*store.Snapshot, int) {
	var (
		inbox   []notification.Notification
		indexes []int
	)
	for i, n := range s.Notifications {
		if n.PostAuthorID == recipientID && !n.Read {
			inbox = append(inbox, n)
			indexes = append(indexes, i)
		}
	}
	if len(inbox) == 0 {
		return s, 0
	}

	read := notification.MarkAllRead(inbox)
	out := make([]notification.Notification, len(s.Notifications))
	copy(out, s.Notifications)
	for j, i := range indexes {
		out[i] = read[j]
	}
	next := s.Clone()
	next.Notifications = out
	return next, len(read)
}

// SwitchViewer makes userID the current viewer.
func SwitchViewer(s *store.Snapshot, userID int64) (*store.Snapshot, user.User, error) {
	u, err := requireUser(s, userID)
	if err != nil {
		return s, user.User{}, err
	}
	if s.ViewerID == userID {
		return s, u, nil
	}
	next := s.Clone()
	next.ViewerID = userID
	return next, u, nil
}
