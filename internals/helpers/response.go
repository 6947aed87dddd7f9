package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorMap flattens validator.v10 errors into field -> tags.
// ok=false when err is not a validation error.
func ValidationErrorMap(err error) (map[string][]string, bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out, true
}

// ValidationError writes a 422 for validator errors, 400 for anything else.
func ValidationError(c *fiber.Ctx, err error) error {
	if fields, ok := ValidationErrorMap(err); ok {
		return JsonValidationError(c, fields)
	}
	return JsonError(c, fiber.StatusBadRequest, "invalid input")
}
