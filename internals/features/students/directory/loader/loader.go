// file: internals/features/students/directory/loader/loader.go
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"contatorapido_backend/internals/features/students/directory/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recordNamespace seeds the name-based record ids.
var recordNamespace = uuid.MustParse("6f1d8c2e-4b7a-4f0e-9a51-3c2d7e8b9f10")

// Load flattens the decoded files into annotated records.
// Paths outside the naming convention are skipped. Per-file order is kept;
// files are visited in sorted path order.
func Load(files map[string][]model.RawStudentModel) []model.StudentModel {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]model.StudentModel, 0)
	for _, p := range paths {
		pl, ok := ParseStudentPath(p)
		if !ok {
			continue
		}
		for i, raw := range files[p] {
			grade, class := pl.Grade, pl.Class
			out = append(out, model.StudentModel{
				ID:          recordID(p, i),
				Name:        raw.Nome,
				MotherPhone: raw.CelularMae,
				FatherPhone: raw.CelularPai,
				Grade:       &grade,
				Class:       &class,
			})
		}
	}
	return out
}

func recordID(path string, idx int) uuid.UUID {
	return uuid.NewSHA1(recordNamespace, []byte(path+"#"+strconv.Itoa(idx)))
}

// DecodeFile parses one data file body (a JSON array of students).
func DecodeFile(body []byte) ([]model.RawStudentModel, error) {
	var rows []model.RawStudentModel
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode student file: %w", err)
	}
	return rows, nil
}

// LoadFromSource reads every file from src and builds the record list.
// It never fails: a source error yields an empty list, and a file that does
// not decode is dropped while the others still load. Both are logged.
func LoadFromSource(ctx context.Context, src Source, log *zap.Logger) (out []model.StudentModel) {
	if log == nil {
		log = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("student loader panicked", zap.Any("panic", r))
			out = []model.StudentModel{}
		}
	}()

	raw, err := src.Files(ctx)
	if err != nil {
		log.Error("failed to read student files", zap.String("source", src.Name()), zap.Error(err))
		return []model.StudentModel{}
	}

	decoded := make(map[string][]model.RawStudentModel, len(raw))
	for p, body := range raw {
		if _, ok := ParseStudentPath(p); !ok {
			log.Debug("skipping file outside grade/class layout", zap.String("path", p))
			continue
		}
		rows, err := DecodeFile(body)
		if err != nil {
			log.Warn("skipping unreadable student file", zap.String("path", p), zap.Error(err))
			continue
		}
		decoded[p] = rows
	}

	out = Load(decoded)
	log.Info("student directory loaded",
		zap.String("source", src.Name()),
		zap.Int("files", len(decoded)),
		zap.Int("records", len(out)),
	)
	return out
}
