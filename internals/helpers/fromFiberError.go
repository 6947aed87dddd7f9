package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns any handler error into the standard JSON error shape.
// Non-fiber errors become 500 with a generic message.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "")
}
