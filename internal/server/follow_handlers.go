package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:username/follow. Following an
// already-followed account is a silent success, so double-clicks and
// retries need no special handling by clients.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	target, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.Context(), userID, target.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Now following " + target.Username,
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:username/follow. Removing an
// edge that does not exist is a silent success.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	target, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), userID, target.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "No longer following " + target.Username,
		"following": false,
	})
}

// GetFollowers handles GET /api/users/:username/followers.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	user, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"followers": followers,
	})
}

// GetFollowing handles GET /api/users/:username/following.
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	user, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	following, err := s.followService.Followees(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}
