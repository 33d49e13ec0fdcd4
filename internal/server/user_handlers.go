package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.accountService.GetByID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:username — the public view of
// an account, with its follow graph counts.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	user, err := s.resolveUsername(c)
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	following, err := s.followService.Followees(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"followers_count": len(followers),
		"following_count": len(following),
	})
}

// GetAllUsers handles GET /api/users with limit/offset query params.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.List(c.Context(), limit, offset)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// PromoteToAdmin handles POST /api/users/:id/promote-admin (admin only).
func (s *Server) PromoteToAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.accountService.SetAdmin(c.Context(), id, true)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// DemoteFromAdmin handles POST /api/users/:id/demote-admin (admin only).
func (s *Server) DemoteFromAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.accountService.SetAdmin(c.Context(), id, false)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}
