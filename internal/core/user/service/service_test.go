package userapp

import (
	"context"
	"testing"
	"time"

	"manshurat/internal/adapters/fixtures"
	"manshurat/internal/adapters/memory"
	"manshurat/internal/core/store"
	userEntity "manshurat/internal/core/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, limit int) *UserService {
	t.Helper()
	snap, err := fixtures.Demo(time.Now())
	require.NoError(t, err)
	return NewUserService(memory.NewSnapshotStore(snap), nil, limit)
}

func TestViewerFollowsProfileUpdates(t *testing.T) {
	svc := newService(t, 5)
	ctx := context.Background()

	bio := "Landscape photographer"
	_, err := svc.UpdateProfile(ctx, 1, userEntity.ProfilePatch{Bio: &bio})
	require.NoError(t, err)

	viewer, err := svc.GetViewer(ctx)
	require.NoError(t, err)
	assert.Equal(t, bio, viewer.Bio)
	assert.Equal(t, 1200, viewer.Followers)
}

func TestUpdateProfileErrors(t *testing.T) {
	svc := newService(t, 5)
	ctx := context.Background()

	bio := "x"
	_, err := svc.UpdateProfile(ctx, 42, userEntity.ProfilePatch{Bio: &bio})
	assert.ErrorIs(t, err, store.ErrNotFound)

	views := -1
	_, err = svc.UpdateProfile(ctx, 1, userEntity.ProfilePatch{ProfileViews: &views})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestSwitchViewerAndProfile(t *testing.T) {
	svc := newService(t, 5)
	ctx := context.Background()

	p, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.True(t, p.IsFollowed)

	v, err := svc.SwitchViewer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ID)

	p, err = svc.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.False(t, p.IsFollowed)

	_, err = svc.SwitchViewer(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.GetProfile(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchAndSuggested(t *testing.T) {
	svc := newService(t, 1)
	ctx := context.Background()

	found, err := svc.Search(ctx, "NOURA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(3), found[0].ID)

	found, err = svc.Search(ctx, "alia")
	require.NoError(t, err)
	assert.Empty(t, found, "the viewer is never a search result")

	suggested, err := svc.Suggested(ctx)
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, int64(2), suggested[0].ID)
}
