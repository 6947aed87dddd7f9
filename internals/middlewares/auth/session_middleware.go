package auth

import (
	"contatorapido_backend/internals/features/users/session/service"

	"github.com/gofiber/fiber/v2"
)

const LocAuthenticated = "is_authenticated"

// RequireSession rejects API calls without a valid session (401).
func RequireSession(checker service.Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.IsAuthenticated(c) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(LocAuthenticated, true)
		return c.Next()
	}
}
