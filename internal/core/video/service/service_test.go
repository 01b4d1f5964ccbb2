package videoapp

import (
	"context"
	"testing"
	"time"

	"manshurat/internal/adapters/fixtures"
	"manshurat/internal/adapters/memory"
	"manshurat/internal/core/interaction"
	"manshurat/internal/core/store"
	"manshurat/internal/core/timeline"
	videoEntity "manshurat/internal/core/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*VideoService, *memory.SnapshotStore) {
	t.Helper()
	snap, err := fixtures.Demo(now)
	require.NoError(t, err)
	st := memory.NewSnapshotStore(snap)
	svc := NewVideoService(st, nil)
	svc.Now = func() time.Time { return now }
	return svc, st
}

func asViewer(t *testing.T, st *memory.SnapshotStore, userID int64) {
	t.Helper()
	_, err := st.Update(context.Background(), func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, _, err := interaction.SwitchViewer(cur, userID)
		return next, err
	})
	require.NoError(t, err)
}

func TestFeed(t *testing.T) {
	svc, _ := newService(t)
	videos, err := svc.Feed(context.Background(), timeline.Newest)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, int64(5), videos[0].ID)
	assert.True(t, videos[0].Liked)
	assert.False(t, videos[0].CanDelete)
	assert.True(t, videos[1].Following, "viewer follows the creator of video 6")
}

func TestCreateVideo(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dto, err := svc.CreateVideo(ctx, videoEntity.Draft{Title: "Sunset", VideoURL: "https://example.com/s.mp4"})
	require.NoError(t, err)
	assert.Equal(t, int64(16), dto.ID)
	assert.True(t, dto.CanDelete)

	_, err = svc.CreateVideo(ctx, videoEntity.Draft{Title: "no url"})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestDeleteVideo(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.DeleteVideo(ctx, 5)
	assert.ErrorIs(t, err, store.ErrForbidden)
	assert.Len(t, st.Current(ctx).Videos, 2)

	asViewer(t, st, 4)
	deleted, err := svc.DeleteVideo(ctx, 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteVideo(ctx, 5)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, st.Current(ctx).Videos, 1)
}

func TestLikeCommentAndView(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	like, err := svc.ToggleLike(ctx, 6)
	require.NoError(t, err)
	assert.False(t, like.Liked)
	assert.Equal(t, "video", like.Kind)

	_, err = svc.ToggleLike(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound, "post ids are not videos")

	c, err := svc.AddComment(ctx, 5, "great workout")
	require.NoError(t, err)
	assert.Equal(t, "great workout", c.Text)
	assert.Len(t, st.Current(ctx).Notifications, 4)

	v, err := svc.RecordView(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 2301, v.Views)

	_, err = svc.RecordView(ctx, 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
