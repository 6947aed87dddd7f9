// file: internals/features/students/directory/model/student_file_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentFileModel stores one data file (path + raw JSON array) so the
// directory can be served from Postgres instead of the bundled files.
type StudentFileModel struct {
	StudentFileID      uuid.UUID      `gorm:"column:student_file_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_file_id"`
	StudentFilePath    string         `gorm:"column:student_file_path;type:text;not null;uniqueIndex:uq_student_file_path" json:"student_file_path"`
	StudentFileRecords datatypes.JSON `gorm:"column:student_file_records;type:jsonb;not null" json:"student_file_records"`
	CreatedAt          time.Time      `gorm:"column:student_file_created_at;type:timestamptz;not null;autoCreateTime" json:"student_file_created_at"`
	UpdatedAt          time.Time      `gorm:"column:student_file_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_file_updated_at"`
}

func (StudentFileModel) TableName() string {
	return "student_files"
}
