package middlewares

import (
	"errors"
	"strings"

	helper "contatorapido_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler answers /api/* with the JSON error shape and renders the
// error page for everything else.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= 500 {
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.Any("reqid", c.Locals("reqid")),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return helper.FromFiberError(c, err)
		}

		title, msg := "Erro", "Ocorreu um erro inesperado."
		switch code {
		case fiber.StatusNotFound:
			title, msg = "Página não encontrada", "O endereço acessado não existe."
		case fiber.StatusUnauthorized:
			title, msg = "Não autorizado", "Entre novamente para continuar."
		case fiber.StatusTooManyRequests:
			title, msg = "Muitas requisições", "Aguarde um instante e tente de novo."
		}
		if rerr := c.Status(code).Render("error", fiber.Map{
			"Title":        title,
			"ErrorCode":    code,
			"ErrorTitle":   title,
			"ErrorMessage": msg,
		}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
