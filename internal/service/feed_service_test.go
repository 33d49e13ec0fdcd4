package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_PersonalStream(t *testing.T) {
	ctx := context.Background()
	want := []*models.Post{{ID: 2}, {ID: 1}}

	repo := noopPostRepo()
	repo.streamForViewerFn = func(_ context.Context, viewerID uint, limit int) ([]*models.Post, error) {
		assert.Equal(t, uint(7), viewerID)
		assert.Equal(t, StreamLimit, limit)
		return want, nil
	}
	svc := NewFeedService(repo)

	posts, err := svc.PersonalStream(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, posts)
}

func TestFeedService_PublicStream(t *testing.T) {
	ctx := context.Background()
	want := []*models.Post{{ID: 3}}

	repo := noopPostRepo()
	repo.getByOwnerFn = func(_ context.Context, ownerID uint, limit int) ([]*models.Post, error) {
		assert.Equal(t, uint(4), ownerID)
		assert.Equal(t, StreamLimit, limit)
		return want, nil
	}
	svc := NewFeedService(repo)

	posts, err := svc.PublicStream(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, want, posts)
}

func TestFeedService_GlobalRecentStream(t *testing.T) {
	ctx := context.Background()

	repo := noopPostRepo()
	repo.globalRecentFn = func(_ context.Context, limit int) ([]*models.Post, error) {
		assert.Equal(t, StreamLimit, limit)
		return []*models.Post{}, nil
	}
	svc := NewFeedService(repo)

	posts, err := svc.GlobalRecentStream(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
