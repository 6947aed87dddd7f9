package seeds

import (
	"context"
	"io/fs"

	"contatorapido_backend/internals/features/students/directory/loader"
	students "contatorapido_backend/internals/seeds/students"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunAllSeeds copies the bundled data into the database.
func RunAllSeeds(ctx context.Context, db *gorm.DB, bundle fs.FS, log *zap.Logger) {
	//* Students
	if _, err := students.SeedStudentFilesFromFS(ctx, db, loader.NewFSSource(bundle, "embed"), log); err != nil {
		log.Error("student seed failed", zap.Error(err))
	}
}
