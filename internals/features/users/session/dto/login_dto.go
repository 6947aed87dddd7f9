package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// LoginRequest is accepted as a form post or JSON.
type LoginRequest struct {
	AccessCode string `json:"access_code" form:"access_code" validate:"max=128"`
}

func BindLogin(c *fiber.Ctx) (LoginRequest, error) {
	var req LoginRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, "invalid login body")
		}
	}
	req.AccessCode = strings.TrimSpace(req.AccessCode)
	if err := validate.Struct(&req); err != nil {
		return req, err
	}
	return req, nil
}

type SessionResponse struct {
	Authenticated      bool `json:"authenticated"`
	RequiresAccessCode bool `json:"requires_access_code"`
}
