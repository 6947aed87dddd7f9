// file: internals/features/students/directory/model/student_model.go
package model

import (
	"encoding/json"
	"strings"

	"contatorapido_backend/internals/constants"

	"github.com/google/uuid"
)

// RawStudentModel is one object of a bundled data file.
// Parent phones come in two spellings; UnmarshalJSON folds them into a
// single canonical field (snake_case wins when both are filled).
type RawStudentModel struct {
	Nome       string  `json:"nome"`
	CelularMae *string `json:"celular_mae,omitempty"`
	CelularPai *string `json:"celular_pai,omitempty"`
}

type rawStudentWire struct {
	Nome          string  `json:"nome"`
	CelularMae    *string `json:"celular_mae"`
	CelularPai    *string `json:"celular_pai"`
	CelularMaeAlt *string `json:"celularMae"`
	CelularPaiAlt *string `json:"celularPai"`
}

func (r *RawStudentModel) UnmarshalJSON(b []byte) error {
	var w rawStudentWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.Nome = w.Nome
	r.CelularMae = resolveAlias(w.CelularMae, w.CelularMaeAlt)
	r.CelularPai = resolveAlias(w.CelularPai, w.CelularPaiAlt)
	return nil
}

// resolveAlias returns the first non-empty value; empty counts as absent.
func resolveAlias(primary, alias *string) *string {
	for _, p := range []*string{primary, alias} {
		if p == nil {
			continue
		}
		if v := strings.TrimSpace(*p); v != "" {
			return &v
		}
	}
	return nil
}

// StudentModel is a loaded, annotated record. Grade and Class come from the
// file location only; Building is never set by the loader.
type StudentModel struct {
	ID          uuid.UUID
	Name        string
	MotherPhone *string
	FatherPhone *string
	Grade       *constants.Grade
	Class       *constants.Class
	Building    *constants.Building
}

// Clone copies the record including every pointed-to value.
func (s StudentModel) Clone() StudentModel {
	out := s
	out.MotherPhone = clonePtr(s.MotherPhone)
	out.FatherPhone = clonePtr(s.FatherPhone)
	out.Grade = clonePtr(s.Grade)
	out.Class = clonePtr(s.Class)
	out.Building = clonePtr(s.Building)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
