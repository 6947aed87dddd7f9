package students

import (
	"context"
	"fmt"

	"contatorapido_backend/internals/features/students/directory/loader"
	"contatorapido_backend/internals/features/students/directory/model"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedStudentFilesFromFS upserts every data file of fsys into student_files.
// Files outside the grade/class layout or with invalid JSON are skipped.
func SeedStudentFilesFromFS(ctx context.Context, db *gorm.DB, src *loader.FSSource, log *zap.Logger) (int, error) {
	log.Info("📥 reading bundled student files", zap.String("source", src.Name()))

	files, err := src.Files(ctx)
	if err != nil {
		return 0, fmt.Errorf("read bundle: %w", err)
	}

	n := 0
	for path, body := range files {
		if _, ok := loader.ParseStudentPath(path); !ok {
			log.Info("ℹ️ skipped, path outside layout", zap.String("path", path))
			continue
		}
		if _, err := loader.DecodeFile(body); err != nil {
			log.Warn("❌ skipped, invalid JSON", zap.String("path", path), zap.Error(err))
			continue
		}

		row := model.StudentFileModel{
			StudentFilePath:    path,
			StudentFileRecords: datatypes.JSON(body),
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_file_path"}},
			DoUpdates: clause.AssignmentColumns([]string{"student_file_records", "student_file_updated_at"}),
		}).Create(&row).Error
		if err != nil {
			log.Error("❌ failed to upsert student file", zap.String("path", path), zap.Error(err))
			continue
		}
		n++
	}
	log.Info("✅ student files seeded", zap.Int("files", n))
	return n, nil
}
