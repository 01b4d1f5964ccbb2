package notificationapp

import (
	"context"
	"testing"
	"time"

	"manshurat/internal/adapters/fixtures"
	"manshurat/internal/adapters/memory"
	"manshurat/internal/core/interaction"
	"manshurat/internal/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxAndMarkAllRead(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	snap, err := fixtures.Demo(now)
	require.NoError(t, err)
	st := memory.NewSnapshotStore(snap)
	svc := NewNotificationService(st, nil)
	ctx := context.Background()

	inbox, err := svc.Inbox(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inbox.Unread)
	require.Len(t, inbox.Notifications, 3)
	assert.Equal(t, int64(13), inbox.Notifications[0].ID)
	assert.Equal(t, int64(15), inbox.Notifications[2].ID)
	assert.Equal(t, 1, svc.UnreadCount(ctx))

	n, err := svc.MarkAllRead(ctx, svc.ViewerID(ctx))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, svc.UnreadCount(ctx))

	n, err = svc.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkAllReadOnlyTouchesRecipient(t *testing.T) {
	now := time.Now()
	snap, err := fixtures.Demo(now)
	require.NoError(t, err)
	// Noura likes Khaled's post, which lands in inbox 2
	snap, _, err = interaction.ToggleLike(snap, 2, 3, now)
	require.NoError(t, err)

	st := memory.NewSnapshotStore(snap)
	svc := NewNotificationService(st, nil)
	ctx := context.Background()

	n, err := svc.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, x := range st.Current(ctx).Notifications {
		if x.PostAuthorID == 2 {
			assert.False(t, x.Read)
		}
	}

	_, err = st.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, _, err := interaction.SwitchViewer(cur, 2)
		return next, err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.UnreadCount(ctx))
}
