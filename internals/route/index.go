// file: internals/route/index.go
package routes

import (
	"time"

	directoryRoute "contatorapido_backend/internals/features/students/directory/route"
	"contatorapido_backend/internals/features/students/directory/service"
	sessionRoute "contatorapido_backend/internals/features/users/session/route"
	sessionService "contatorapido_backend/internals/features/users/session/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var startTime time.Time

type Deps struct {
	DB        *gorm.DB // nil unless DATA_SOURCE=db
	Directory *service.Directory
	Session   *sessionService.Manager
	Log       *zap.Logger
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	d.Log.Info("setting up base routes")
	BaseRoutes(app, d.DB, d.Directory)

	d.Log.Info("setting up session routes")
	sessionRoute.SessionRoutes(app, d.Session, d.Log)

	d.Log.Info("setting up directory routes")
	directoryRoute.DirectoryRoutes(app, d.Directory, d.Session, d.Log)
}
