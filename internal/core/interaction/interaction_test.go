package interaction

import (
	"testing"
	"time"

	"manshurat/internal/core/follower"
	"manshurat/internal/core/notification"
	"manshurat/internal/core/post"
	"manshurat/internal/core/store"
	"manshurat/internal/core/user"
	"manshurat/internal/core/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newSnapshot() *store.Snapshot {
	return &store.Snapshot{
		ViewerID: 1,
		Users: []user.User{
			{ID: 1, Name: "Alia"},
			{ID: 2, Name: "Khaled"},
			{ID: 3, Name: "Noura"},
		},
		Posts: []post.Post{
			{ID: 10, AuthorID: 2, Content: "hello", Likes: post.Likes{3}, Timestamp: now.Add(-time.Hour)},
			{ID: 11, AuthorID: 1, Content: "mine", Timestamp: now.Add(-2 * time.Hour)},
		},
		Videos: []video.Video{
			{ID: 20, CreatorID: 3, Title: "clip", VideoURL: "https://example.com/a.mp4", Timestamp: now.Add(-3 * time.Hour)},
		},
		Following: follower.Graph{},
		LastID:    20,
	}
}

func strPtr(s string) *string { return &s }

func TestCreatePost(t *testing.T) {
	s := newSnapshot()

	next, p, err := CreatePost(s, 1, "new post", "", now)
	require.NoError(t, err)
	assert.Equal(t, int64(21), p.ID)
	assert.Equal(t, int64(1), p.AuthorID)
	assert.Equal(t, now, p.Timestamp)
	assert.Empty(t, p.Likes)
	require.Len(t, next.Posts, 3)
	assert.Equal(t, p.ID, next.Posts[0].ID)
	assert.Len(t, s.Posts, 2)
}

func TestCreatePostImageOnly(t *testing.T) {
	_, p, err := CreatePost(newSnapshot(), 1, "", "https://example.com/i.png", now)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/i.png", p.Image)
}

func TestCreatePostRejectsEmptyContent(t *testing.T) {
	s := newSnapshot()
	for _, content := range []string{"", "   ", "\n\t"} {
		next, _, err := CreatePost(s, 1, content, "", now)
		require.ErrorIs(t, err, store.ErrValidation)
		assert.Same(t, s, next)
		assert.Len(t, next.Posts, 2)
	}
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	_, _, err := CreatePost(newSnapshot(), 99, "hi", "", now)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateVideo(t *testing.T) {
	s := newSnapshot()
	next, v, err := CreateVideo(s, 2, video.Draft{Title: "t", VideoURL: "https://example.com/v.mp4"}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(21), v.ID)
	assert.Equal(t, v.ID, next.Videos[0].ID)

	_, _, err = CreateVideo(s, 2, video.Draft{Title: "  ", VideoURL: "https://example.com/v.mp4"}, now)
	assert.ErrorIs(t, err, store.ErrValidation)
	_, _, err = CreateVideo(s, 2, video.Draft{Title: "t"}, now)
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestToggleLikeTwiceRestoresLikes(t *testing.T) {
	s := newSnapshot()

	once, res, err := ToggleLike(s, 10, 1, now)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 2, res.LikeCount)
	assert.Equal(t, notification.TargetPost, res.TargetKind)

	twice, res, err := ToggleLike(once, 10, 1, now)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Nil(t, res.Notification)

	before, _ := s.Post(10)
	after, _ := twice.Post(10)
	assert.Equal(t, before.Likes, after.Likes)
	// the notification from the first like is kept
	assert.Len(t, twice.Notifications, 1)
}

func TestToggleLikeNotifiesAuthor(t *testing.T) {
	next, res, err := ToggleLike(newSnapshot(), 10, 1, now)
	require.NoError(t, err)
	require.NotNil(t, res.Notification)

	n := next.Notifications[0]
	assert.Equal(t, *res.Notification, n)
	assert.Equal(t, notification.TypeLike, n.Type)
	assert.Equal(t, int64(1), n.ActorID)
	assert.Equal(t, int64(2), n.PostAuthorID)
	assert.Equal(t, int64(10), n.PostID)
	assert.False(t, n.Read)
}

func TestToggleLikeOwnContentHasNoNotification(t *testing.T) {
	next, res, err := ToggleLike(newSnapshot(), 11, 1, now)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Nil(t, res.Notification)
	assert.Empty(t, next.Notifications)
}

func TestToggleLikeVideo(t *testing.T) {
	next, res, err := ToggleLike(newSnapshot(), 20, 1, now)
	require.NoError(t, err)
	assert.Equal(t, notification.TargetVideo, res.TargetKind)
	v, _ := next.Video(20)
	assert.True(t, v.Likes.Has(1))
	require.NotNil(t, res.Notification)
	assert.Equal(t, notification.TargetVideo, res.Notification.TargetKind)
	assert.Equal(t, int64(3), res.Notification.PostAuthorID)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	s := newSnapshot()
	next, _, err := ToggleLike(s, 404, 1, now)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Same(t, s, next)
}

func TestAddComment(t *testing.T) {
	s := newSnapshot()
	next, res, err := AddComment(s, 10, 1, "nice", now)
	require.NoError(t, err)

	p, _ := next.Post(10)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, res.Comment, p.Comments[len(p.Comments)-1])
	assert.Equal(t, "nice", res.Comment.Text)
	require.NotNil(t, res.Notification)
	assert.Equal(t, notification.TypeComment, res.Notification.Type)
	assert.Greater(t, res.Notification.ID, res.Comment.ID)

	old, _ := s.Post(10)
	assert.Empty(t, old.Comments)
}

func TestAddCommentOwnPostHasNoNotification(t *testing.T) {
	next, res, err := AddComment(newSnapshot(), 11, 1, "note to self", now)
	require.NoError(t, err)
	assert.Nil(t, res.Notification)
	assert.Empty(t, next.Notifications)
}

func TestAddCommentRejectsBlankText(t *testing.T) {
	s := newSnapshot()
	next, _, err := AddComment(s, 10, 1, "  ", now)
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Same(t, s, next)
}

func TestAddCommentVideo(t *testing.T) {
	next, res, err := AddComment(newSnapshot(), 20, 2, "wow", now)
	require.NoError(t, err)
	assert.Equal(t, notification.TargetVideo, res.TargetKind)
	v, _ := next.Video(20)
	assert.Len(t, v.Comments, 1)
}

func TestToggleFollowConverges(t *testing.T) {
	s := newSnapshot()

	once, res, err := ToggleFollow(s, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Following)
	assert.True(t, once.FollowingOf(1).Has(2))

	twice, res, err := ToggleFollow(once, 1, 2)
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.False(t, twice.FollowingOf(1).Has(2))
	assert.Empty(t, s.FollowingOf(1))
}

func TestToggleFollowLeavesCountersAlone(t *testing.T) {
	s := newSnapshot()
	next, _, err := ToggleFollow(s, 1, 2)
	require.NoError(t, err)
	before, _ := s.User(2)
	after, _ := next.User(2)
	assert.Equal(t, before.Followers, after.Followers)
}

func TestToggleFollowSelf(t *testing.T) {
	_, _, err := ToggleFollow(newSnapshot(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestToggleFollowUnknownUser(t *testing.T) {
	_, _, err := ToggleFollow(newSnapshot(), 1, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s := newSnapshot()
	views := 42
	next, u, err := UpdateProfile(s, 1, user.ProfilePatch{Bio: strPtr("new bio"), ProfileViews: &views})
	require.NoError(t, err)
	assert.Equal(t, "new bio", u.Bio)
	assert.Equal(t, 42, u.ProfileViews)

	viewer, ok := next.Viewer()
	require.True(t, ok)
	assert.Equal(t, "new bio", viewer.Bio)
	assert.Equal(t, "Alia", viewer.Name)

	old, _ := s.Viewer()
	assert.Empty(t, old.Bio)
}

func TestUpdateProfileRejectsInvalidPatch(t *testing.T) {
	views := -1
	s := newSnapshot()
	next, _, err := UpdateProfile(s, 1, user.ProfilePatch{ProfileViews: &views})
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Same(t, s, next)
}

func TestDeleteVideo(t *testing.T) {
	s := newSnapshot()

	next, _, err := DeleteVideo(s, 20, 1)
	assert.ErrorIs(t, err, store.ErrForbidden)
	assert.Same(t, s, next)

	next, res, err := DeleteVideo(s, 20, 3)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Empty(t, next.Videos)
	assert.Len(t, s.Videos, 1)

	again, res, err := DeleteVideo(next, 20, 3)
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Same(t, next, again)
}

func TestRecordView(t *testing.T) {
	s := newSnapshot()
	_, v, err := RecordView(s, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Views)
	old, _ := s.Video(20)
	assert.Equal(t, 0, old.Views)

	_, _, err = RecordView(s, 10)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMarkInboxRead(t *testing.T) {
	s := newSnapshot()
	s, _, _ = ToggleLike(s, 10, 1, now)
	s, _, _ = ToggleLike(s, 20, 1, now)
	s, _, _ = AddComment(s, 11, 2, "hey", now)
	require.Len(t, s.Notifications, 3)

	next, n := MarkInboxRead(s, 2)
	assert.Equal(t, 1, n)
	for _, x := range next.Notifications {
		if x.PostAuthorID == 2 {
			assert.True(t, x.Read)
		} else {
			assert.False(t, x.Read, "other inboxes stay unread")
		}
	}

	again, n := MarkInboxRead(next, 2)
	assert.Zero(t, n)
	assert.Same(t, next, again)
}

func TestSwitchViewer(t *testing.T) {
	s := newSnapshot()
	next, u, err := SwitchViewer(s, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ViewerID)
	assert.Equal(t, "Khaled", u.Name)
	assert.Equal(t, int64(1), s.ViewerID)

	_, _, err = SwitchViewer(s, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestIDsIncreaseAcrossKinds(t *testing.T) {
	s := newSnapshot()
	last := s.LastID
	for i := 0; i < 200; i++ {
		var (
			id  int64
			err error
		)
		switch i % 3 {
		case 0:
			var p post.Post
			s, p, err = CreatePost(s, 1, "tick", "", now)
			id = p.ID
		case 1:
			var res CommentResult
			s, res, err = AddComment(s, 10, 1, "tock", now)
			id = res.Comment.ID
		default:
			var v video.Video
			s, v, err = CreateVideo(s, 2, video.Draft{Title: "v", VideoURL: "u"}, now)
			id = v.ID
		}
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestOldSnapshotsAreNotModified(t *testing.T) {
	s := newSnapshot()
	p, _ := s.Post(10)
	likes := append(post.Likes(nil), p.Likes...)

	next, _, err := ToggleLike(s, 10, 1, now)
	require.NoError(t, err)
	next, _, err = AddComment(next, 10, 1, "c", now)
	require.NoError(t, err)
	_, _, err = ToggleFollow(next, 1, 2)
	require.NoError(t, err)

	p, _ = s.Post(10)
	assert.Equal(t, likes, p.Likes)
	assert.Empty(t, p.Comments)
	assert.Empty(t, s.Notifications)
	assert.Empty(t, s.Following)
	assert.Equal(t, int64(20), s.LastID)
}
