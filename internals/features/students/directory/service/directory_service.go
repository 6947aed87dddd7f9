// file: internals/features/students/directory/service/directory_service.go
package service

import (
	"context"

	"contatorapido_backend/internals/constants"
	"contatorapido_backend/internals/features/students/directory/filter"
	"contatorapido_backend/internals/features/students/directory/loader"
	"contatorapido_backend/internals/features/students/directory/model"

	"go.uber.org/zap"
)

// Directory holds the record list for the life of the process.
// The list is never mutated after construction, so handlers share it freely.
type Directory struct {
	records []model.StudentModel
}

func NewDirectory(records []model.StudentModel) *Directory {
	cp := make([]model.StudentModel, len(records))
	copy(cp, records)
	return &Directory{records: cp}
}

// NewDirectoryFromSource loads once from src. Load failures leave an empty
// directory (logged by the loader).
func NewDirectoryFromSource(ctx context.Context, src loader.Source, log *zap.Logger) *Directory {
	return NewDirectory(loader.LoadFromSource(ctx, src, log))
}

func (d *Directory) Len() int { return len(d.records) }

// Filter returns detached copies; writing to them never reaches the
// directory's own records.
func (d *Directory) Filter(st filter.State) []model.StudentModel {
	rows := filter.Apply(d.records, st)
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}

// Grades lists every selectable grade, elementary first.
func (d *Directory) Grades() []constants.Grade { return constants.AllGrades() }

func (d *Directory) Classes() []constants.Class { return constants.AllClasses() }

func (d *Directory) Buildings() []constants.Building { return constants.AllBuildings() }
