package followerapp

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

func TestToggleFollow(t *testing.T) {
	snap, err := fixtures.Demo(time.Now())
	require.NoError(t, err)
	svc := NewFollowerService(memory.NewSnapshotStore(snap), nil)
	ctx := context.Background()

	res, err := svc.ToggleFollow(ctx, 2)
	require.NoError(t, err)
	assert.True(t, res.Following)
	assert.True(t, svc.IsFollowing(ctx, 2))

	following, err := svc.Following(ctx)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, int64(3), following[0].ID)
	assert.Equal(t, int64(2), following[1].ID)

	res, err = svc.ToggleFollow(ctx, 2)
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.False(t, svc.IsFollowing(ctx, 2))
}

func TestToggleFollowRejected(t *testing.T) {
	snap, err := fixtures.Demo(time.Now())
	require.NoError(t, err)
	svc := NewFollowerService(memory.NewSnapshotStore(snap), nil)
	ctx := context.Background()

	_, err = svc.ToggleFollow(ctx, 1)
	assert.ErrorIs(t, err, interaction.ErrSelfFollow)
	_, err = svc.ToggleFollow(ctx, 77)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
