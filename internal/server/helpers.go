package server

import (
	"errors"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// resolveUsername resolves the :username route parameter to an account.
// On a miss it writes a 404 response and returns errResponseWritten, the
// 404-equivalent outcome for every username-addressed operation.
func (s *Server) resolveUsername(c *fiber.Ctx) (*models.User, error) {
	username := c.Params("username")
	user, err := s.accountService.GetByUsername(c.Context(), username)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			_ = models.RespondWithError(c, fiber.StatusNotFound, err)
		} else {
			_ = models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return nil, errResponseWritten
	}
	return user, nil
}

// respondAppError maps an AppError code to an HTTP status and writes the
// standard error body.
func respondAppError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsCode(err, models.CodeNotFound):
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.IsCode(err, models.CodeDuplicateAccount):
		return models.RespondWithError(c, fiber.StatusConflict, err)
	case models.IsCode(err, models.CodeEmptyContent),
		models.IsCode(err, models.CodeValidation):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.IsCode(err, models.CodeAuthFailed),
		models.IsCode(err, models.CodeUnauthorized):
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
