// file: internals/features/students/directory/dto/student_dto.go
package dto

import (
	"strconv"
	"strings"

	"contatorapido_backend/internals/constants"
	"contatorapido_backend/internals/features/students/directory/filter"
	"contatorapido_backend/internals/features/students/directory/model"
	helper "contatorapido_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("grade_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if isAll(s) {
			return true
		}
		_, ok := constants.ParseGrade(s)
		return ok
	})
	_ = v.RegisterValidation("class_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if isAll(s) {
			return true
		}
		_, ok := constants.ParseClass(s)
		return ok
	})
	_ = v.RegisterValidation("building_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if isAll(s) {
			return true
		}
		_, ok := constants.ParseBuilding(s)
		return ok
	})
	return v
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, constants.FilterAll)
}

/* =========================
 * Request DTO
 * ========================= */

// ListStudentsQuery is bound from ?q=&grade=&class=&building=
type ListStudentsQuery struct {
	Q        string `query:"q" validate:"max=100"`
	Grade    string `query:"grade" validate:"grade_filter"`
	Class    string `query:"class" validate:"class_filter"`
	Building string `query:"building" validate:"building_filter"`
}

// BindListQuery parses and validates the list query.
// On validation error the returned query still carries the raw values.
func BindListQuery(c *fiber.Ctx) (ListStudentsQuery, error) {
	var q ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	if err := validate.Struct(&q); err != nil {
		return q, err
	}
	return q, nil
}

// ToState maps the query onto filter inputs with canonical values.
// Invalid selectors are turned off.
func (q ListStudentsQuery) ToState() filter.State {
	st := filter.State{
		Search:   q.Q,
		Grade:    constants.FilterAll,
		Class:    constants.FilterAll,
		Building: constants.FilterAll,
	}
	if g, ok := constants.ParseGrade(q.Grade); ok {
		st.Grade = string(g)
	}
	if c, ok := constants.ParseClass(q.Class); ok {
		st.Class = string(c)
	}
	if b, ok := constants.ParseBuilding(q.Building); ok {
		st.Building = string(b)
	}
	return st
}

/* =========================
 * Response DTO
 * ========================= */

type PhoneResponse struct {
	Raw     *string `json:"raw"`
	Display string  `json:"display"`
	Link    string  `json:"link,omitempty"`
}

type StudentResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Grade       *string       `json:"grade"`
	GradeLabel  string        `json:"grade_label,omitempty"`
	Class       *string       `json:"class"`
	ClassLabel  string        `json:"class_label,omitempty"`
	Building    *string       `json:"building"`
	MotherPhone PhoneResponse `json:"mother_phone"`
	FatherPhone PhoneResponse `json:"father_phone"`
}

func newPhone(p *string) PhoneResponse {
	return PhoneResponse{
		Raw:     p,
		Display: helper.DisplayPhone(p),
		Link:    helper.DialLink(p),
	}
}

func NewStudentResponse(m *model.StudentModel) StudentResponse {
	out := StudentResponse{
		ID:          m.ID,
		Name:        m.Name,
		MotherPhone: newPhone(m.MotherPhone),
		FatherPhone: newPhone(m.FatherPhone),
	}
	if m.Grade != nil {
		g := string(*m.Grade)
		out.Grade = &g
		out.GradeLabel = m.Grade.Label()
	}
	if m.Class != nil {
		c := string(*m.Class)
		out.Class = &c
		out.ClassLabel = m.Class.Label()
	}
	if m.Building != nil {
		b := string(*m.Building)
		out.Building = &b
	}
	return out
}

func NewStudentResponses(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewStudentResponse(&rows[i]))
	}
	return out
}

// Option is one entry of a filter select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptionsResponse struct {
	Grades    []Option `json:"grades"`
	Classes   []Option `json:"classes"`
	Buildings []Option `json:"buildings"`
}

func NewFilterOptions(grades []constants.Grade, classes []constants.Class, buildings []constants.Building) FilterOptionsResponse {
	out := FilterOptionsResponse{
		Grades:    []Option{{Value: constants.FilterAll, Label: "Todos os anos"}},
		Classes:   []Option{{Value: constants.FilterAll, Label: "Todas as turmas"}},
		Buildings: []Option{{Value: constants.FilterAll, Label: "Todos os prédios"}},
	}
	for _, g := range grades {
		out.Grades = append(out.Grades, Option{Value: string(g), Label: g.Label()})
	}
	for _, c := range classes {
		out.Classes = append(out.Classes, Option{Value: string(c), Label: c.Label()})
	}
	for _, b := range buildings {
		out.Buildings = append(out.Buildings, Option{Value: string(b), Label: b.Label()})
	}
	return out
}

// CountLabel renders "1 aluno encontrado" / "3 alunos encontrados".
func CountLabel(n int) string {
	if n == 1 {
		return "1 aluno encontrado"
	}
	return strconv.Itoa(n) + " alunos encontrados"
}
