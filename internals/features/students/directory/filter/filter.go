// Package filter derives the visible student list from the loaded one.
package filter

import (
	"strings"

	"contatorapido_backend/internals/constants"
	"contatorapido_backend/internals/features/students/directory/model"

	"golang.org/x/text/unicode/norm"
)

// State holds the four filter inputs. Empty or "all" turns a selector off.
type State struct {
	Search   string
	Grade    string
	Class    string
	Building string
}

func isAll(v string) bool {
	return v == "" || v == constants.FilterAll
}

// Apply returns the records matching every active filter. The input slice
// is never modified; the result is always a fresh slice.
func Apply(records []model.StudentModel, st State) []model.StudentModel {
	preds := make([]func(*model.StudentModel) bool, 0, 4)

	if !isAll(st.Grade) {
		want := constants.Grade(st.Grade)
		preds = append(preds, func(s *model.StudentModel) bool {
			return s.Grade != nil && *s.Grade == want
		})
	}
	if !isAll(st.Class) {
		want := constants.Class(st.Class)
		preds = append(preds, func(s *model.StudentModel) bool {
			return s.Class != nil && *s.Class == want
		})
	}
	if !isAll(st.Building) {
		want := constants.Building(st.Building)
		preds = append(preds, func(s *model.StudentModel) bool {
			return s.Building != nil && *s.Building == want
		})
	}
	if st.Search != "" {
		preds = append(preds, searchPredicate(st.Search))
	}

	out := make([]model.StudentModel, 0, len(records))
	for i := range records {
		if matchAll(&records[i], preds) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchAll(s *model.StudentModel, preds []func(*model.StudentModel) bool) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

// Name matches case-insensitively; phones match the raw text.
func searchPredicate(q string) func(*model.StudentModel) bool {
	lq := fold(q)
	return func(s *model.StudentModel) bool {
		if strings.Contains(fold(s.Name), lq) {
			return true
		}
		if s.MotherPhone != nil && strings.Contains(*s.MotherPhone, q) {
			return true
		}
		return s.FatherPhone != nil && strings.Contains(*s.FatherPhone, q)
	}
}

func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
