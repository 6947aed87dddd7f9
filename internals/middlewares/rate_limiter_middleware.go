package middlewares

import (
	"time"

	helper "contatorapido_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Global limiter: every endpoint
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Muitas requisições. Tente novamente em instantes.")
		},
	})
}

const LoginLimitMessage = "Muitas tentativas de login. Aguarde um minuto."

// Login limiter (stricter). limitReached answers blocked attempts; nil
// falls back to the JSON error.
func LoginRateLimiter(limitReached fiber.Handler) fiber.Handler {
	if limitReached == nil {
		limitReached = func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, LoginLimitMessage)
		}
	}
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: limitReached,
	})
}
