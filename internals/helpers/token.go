// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "session_token"

// GetRawSessionToken returns the session token from:
// 1) cookie "session_token"
// 2) Authorization header "Bearer <token>"
func GetRawSessionToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(SessionCookieName)); v != "" {
		return v
	}
	const p = "bearer "
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > len(p) && strings.HasPrefix(strings.ToLower(auth), p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
