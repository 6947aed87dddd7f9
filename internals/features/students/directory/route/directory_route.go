package route

import (
	"contatorapido_backend/internals/features/students/directory/controller"
	"contatorapido_backend/internals/features/students/directory/service"
	sessionService "contatorapido_backend/internals/features/users/session/service"
	authMiddleware "contatorapido_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func DirectoryRoutes(app *fiber.App, dir *service.Directory, checker sessionService.Checker, log *zap.Logger) {
	ctl := controller.NewDirectoryController(dir, checker, log)

	// Page checks the session itself and redirects to the entry route.
	app.Get("/alunos", ctl.Page)

	api := app.Group("/api/students", authMiddleware.RequireSession(checker))
	api.Get("/", ctl.List)
	api.Get("/filters", ctl.Filters)
	api.Get("/export", ctl.Export)
}
