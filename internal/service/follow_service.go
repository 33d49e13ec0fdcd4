package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService handles follow graph mutations and queries. All
// resolution of usernames to ids happens at the web boundary; the
// service works on account identifiers only.
type FollowService struct {
	followRepo repository.FollowRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow creates the edge follower -> followee. Following an account
// that is already followed is a silent no-op. Following oneself is
// allowed and harmless: it does not change the personal stream, which
// always includes the viewer's own posts.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followRepo.Follow(ctx, followerID, followeeID)
}

// Unfollow removes the edge follower -> followee if it exists.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.followRepo.Unfollow(ctx, followerID, followeeID)
}

// Followees returns the accounts the given account follows.
func (s *FollowService) Followees(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Followees(ctx, userID)
}

// Followers returns the accounts following the given account.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Followers(ctx, userID)
}

// IsFollowing reports whether the edge follower -> followee exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}
