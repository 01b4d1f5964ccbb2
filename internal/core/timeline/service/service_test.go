package timelineapp

import (
	"context"
	"testing"
	"time"

	"manshurat/internal/adapters/fixtures"
	"manshurat/internal/adapters/memory"
	"manshurat/internal/core/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome(t *testing.T) {
	snap, err := fixtures.Demo(time.Now())
	require.NoError(t, err)
	svc := NewTimelineService(memory.NewSnapshotStore(snap))

	posts, err := svc.Home(context.Background(), timeline.Newest)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].ID)
	assert.True(t, posts[0].Liked)
}
