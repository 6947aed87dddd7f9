package route

import (
	"contatorapido_backend/internals/features/users/session/controller"
	"contatorapido_backend/internals/features/users/session/service"
	middlewares "contatorapido_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SessionRoutes(app *fiber.App, m *service.Manager, log *zap.Logger) {
	ctl := controller.NewSessionController(m, log)

	app.Get(controller.EntryPath, ctl.ShowLogin)
	app.Post("/login", middlewares.LoginRateLimiter(ctl.TooManyAttempts), ctl.Login)
	app.Post("/logout", ctl.Logout)
	app.Get("/logout", ctl.Logout)

	app.Get("/api/session", ctl.Status)
}
