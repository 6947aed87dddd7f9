// file: internals/features/students/directory/controller/directory_controller.go
package controller

import (
	"errors"
	"net/url"

	"contatorapido_backend/internals/features/students/directory/dto"
	"contatorapido_backend/internals/features/students/directory/service"
	sessionService "contatorapido_backend/internals/features/users/session/service"
	helper "contatorapido_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 50
	maxPerPage     = 500

	exportFilename  = "contatos_alunos.xlsx"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DirectoryController struct {
	Dir     *service.Directory
	Session sessionService.Checker
	Log     *zap.Logger

	EntryPath string
}

func NewDirectoryController(dir *service.Directory, checker sessionService.Checker, log *zap.Logger) *DirectoryController {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectoryController{Dir: dir, Session: checker, Log: log, EntryPath: "/"}
}

/* ===========================================================
 * GET /alunos (HTML list)
 * =========================================================== */
func (ctl *DirectoryController) Page(c *fiber.Ctx) error {
	if !ctl.Session.IsAuthenticated(c) {
		return c.Redirect(ctl.EntryPath)
	}

	q, err := dto.BindListQuery(c)
	errMsg := ""
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		errMsg = "Filtro inválido ignorado"
	}
	st := q.ToState()
	rows := dto.NewStudentResponses(ctl.Dir.Filter(st))

	return c.Render("students/index", fiber.Map{
		"Title":        "Contatos dos Alunos",
		"Search":       st.Search,
		"Grade":        st.Grade,
		"Class":        st.Class,
		"Building":     st.Building,
		"Options":      ctl.options(),
		"Students":     rows,
		"CountLabel":   dto.CountLabel(len(rows)),
		"ErrorMessage": errMsg,
	})
}

/* ===========================================================
 * GET /api/students
 * =========================================================== */
func (ctl *DirectoryController) List(c *fiber.Ctx) error {
	q, err := dto.BindListQuery(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return helper.ValidationError(c, err)
	}

	rows := ctl.Dir.Filter(q.ToState())
	paging := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	page, pg := helper.PageSlice(rows, paging)

	return helper.JsonList(c, "ok", dto.NewStudentResponses(page), pg, nil)
}

/* ===========================================================
 * GET /api/students/export (xlsx of the filtered list)
 * =========================================================== */
func (ctl *DirectoryController) Export(c *fiber.Ctx) error {
	q, err := dto.BindListQuery(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return helper.ValidationError(c, err)
	}

	buf, err := service.ExportXLSX(ctl.Dir.Filter(q.ToState()))
	if err != nil {
		ctl.Log.Error("export failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "falha ao gerar planilha")
	}

	c.Set(fiber.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(exportFilename))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

/* ===========================================================
 * GET /api/students/filters
 * =========================================================== */
func (ctl *DirectoryController) Filters(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", ctl.options())
}

func (ctl *DirectoryController) options() dto.FilterOptionsResponse {
	return dto.NewFilterOptions(ctl.Dir.Grades(), ctl.Dir.Classes(), ctl.Dir.Buildings())
}
