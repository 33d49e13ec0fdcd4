package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGlobalStream handles GET /api/stream — the anonymous landing view
// with the newest 100 posts site-wide.
func (s *Server) GetGlobalStream(c *fiber.Ctx) error {
	posts, err := s.feedService.GlobalRecentStream(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// GetMyStream handles GET /api/stream/me — the viewer's composed feed:
// their own posts plus the posts of everyone they follow.
func (s *Server) GetMyStream(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	posts, err := s.feedService.PersonalStream(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// GetUserStream handles GET /api/users/:username/stream — another
// account's own posts, 404 when the username does not resolve.
func (s *Server) GetUserStream(c *fiber.Ctx) error {
	user, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	posts, err := s.feedService.PublicStream(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  user,
		"posts": posts,
	})
}
