package store

import (
	"manshurat/internal/core/follower"
	"manshurat/internal/core/notification"
	"manshurat/internal/core/post"
	"manshurat/internal/core/user"
	"manshurat/internal/core/video"
)

// Snapshot is the whole domain state at one point in time. A Snapshot is never
// modified once it has been handed out: operations build a new one and share
// every collection they did not touch.
type Snapshot struct {
	ViewerID      int64
	Users         []user.User
	Posts         []post.Post
	Videos        []video.Video
	Notifications []notification.Notification
	Following     follower.Graph

	// LastID is the highest id handed out so far.
	LastID int64
}

// Clone returns a shallow copy. Collections are shared until replaced.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	return &c
}

// NextID returns a copy of s with the sequence advanced and the new id.
func (s *Snapshot) NextID() (*Snapshot, int64) {
	c := s.Clone()
	c.LastID++
	return c, c.LastID
}

func (s *Snapshot) User(id int64) (user.User, bool) {
	i := s.userIndex(id)
	if i < 0 {
		return user.User{}, false
	}
	return s.Users[i], true
}

// Viewer resolves the current viewer from Users, so profile updates are always
// reflected.
func (s *Snapshot) Viewer() (user.User, bool) {
	return s.User(s.ViewerID)
}

func (s *Snapshot) Post(id int64) (post.Post, bool) {
	i := s.postIndex(id)
	if i < 0 {
		return post.Post{}, false
	}
	return s.Posts[i], true
}

func (s *Snapshot) Video(id int64) (video.Video, bool) {
	i := s.videoIndex(id)
	if i < 0 {
		return video.Video{}, false
	}
	return s.Videos[i], true
}

// FollowingOf returns the set of users followerID follows.
func (s *Snapshot) FollowingOf(followerID int64) follower.Set {
	return s.Following[followerID]
}

// WithUser replaces the user with the same id.
func (s *Snapshot) WithUser(u user.User) *Snapshot {
	c := s.Clone()
	c.Users = replaceAt(s.Users, s.userIndex(u.ID), u)
	return c
}

// WithPost replaces the post with the same id.
func (s *Snapshot) WithPost(p post.Post) *Snapshot {
	c := s.Clone()
	c.Posts = replaceAt(s.Posts, s.postIndex(p.ID), p)
	return c
}

// WithVideo replaces the video with the same id.
func (s *Snapshot) WithVideo(v video.Video) *Snapshot {
	c := s.Clone()
	c.Videos = replaceAt(s.Videos, s.videoIndex(v.ID), v)
	return c
}

// PrependPost puts p at the head of the feed.
func (s *Snapshot) PrependPost(p post.Post) *Snapshot {
	c := s.Clone()
	c.Posts = prepend(s.Posts, p)
	return c
}

func (s *Snapshot) PrependVideo(v video.Video) *Snapshot {
	c := s.Clone()
	c.Videos = prepend(s.Videos, v)
	return c
}

func (s *Snapshot) PrependNotification(n notification.Notification) *Snapshot {
	c := s.Clone()
	c.Notifications = prepend(s.Notifications, n)
	return c
}

// WithoutVideo drops the video with the given id, if present.
func (s *Snapshot) WithoutVideo(id int64) *Snapshot {
	i := s.videoIndex(id)
	if i < 0 {
		return s
	}
	c := s.Clone()
	out := make([]video.Video, 0, len(s.Videos)-1)
	out = append(out, s.Videos[:i]...)
	c.Videos = append(out, s.Videos[i+1:]...)
	return c
}

func (s *Snapshot) userIndex(id int64) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) postIndex(id int64) int {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) videoIndex(id int64) int {
	for i := range s.Videos {
		if s.Videos[i].ID == id {
			return i
		}
	}
	return -1
}

func replaceAt[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if i >= 0 {
		out[i] = v
	}
	return out
}

func prepend[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}
