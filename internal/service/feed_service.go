package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// StreamLimit is the fixed window size of every stream. Repeated calls
// return the same top-N window until new posts are created; there is
// no pagination cursor.
const StreamLimit = 100

// FeedService composes chronological post streams from the follow graph.
type FeedService struct {
	postRepo repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// PersonalStream returns the union of the viewer's own posts and the
// posts of every account the viewer follows, newest first, capped at
// StreamLimit. Ties at equal timestamp are broken by post id
// descending so the window is stable across calls.
func (s *FeedService) PersonalStream(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	return s.postRepo.StreamForViewer(ctx, viewerID, StreamLimit)
}

// PublicStream returns the target account's own posts, newest first,
// capped at StreamLimit. Used when a viewer inspects another account's
// page rather than their own composed feed.
func (s *FeedService) PublicStream(ctx context.Context, targetID uint) ([]*models.Post, error) {
	return s.postRepo.GetByOwner(ctx, targetID, StreamLimit)
}

// GlobalRecentStream returns the newest StreamLimit posts across all
// accounts. This is the anonymous landing view.
func (s *FeedService) GlobalRecentStream(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.GlobalRecent(ctx, StreamLimit)
}
