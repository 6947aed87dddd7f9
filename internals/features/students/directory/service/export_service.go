package service

import (
	"bytes"
	"errors"
	"fmt"

	"contatorapido_backend/internals/features/students/directory/model"
	helper "contatorapido_backend/internals/helpers"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Alunos"

var ErrExportGenerateFail = errors.New("failed to generate spreadsheet")

var exportHeaders = []string{"Nome", "Ano", "Turma", "Celular mãe", "Celular pai"}

// ExportXLSX writes rows as a spreadsheet, one student per line.
// Phones are written formatted; absent values become N/A.
func ExportXLSX(rows []model.StudentModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}

	w := &sheetWriter{f: f, sheet: exportSheet}
	w.colWidth("A", "A", 32)
	w.colWidth("B", "C", 12)
	w.colWidth("D", "E", 18)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}

	for i, h := range exportHeaders {
		w.set(cell(colName(i), 1), h)
	}
	w.style("A1", cell(colName(len(exportHeaders)-1), 1), headerStyle)

	row := 2
	for i := range rows {
		s := &rows[i]
		grade, class := "", ""
		if s.Grade != nil {
			grade = s.Grade.Label()
		}
		if s.Class != nil {
			class = string(*s.Class)
		}
		w.set(cell("A", row), s.Name)
		w.set(cell("B", row), grade)
		w.set(cell("C", row), class)
		w.set(cell("D", row), helper.DisplayPhone(s.MotherPhone))
		w.set(cell("E", row), helper.DisplayPhone(s.FatherPhone))
		row++
	}
	if w.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportGenerateFail, w.err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	return buf, nil
}

// sheetWriter keeps the first excelize error and skips every call after it.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(axis string, v any) {
	if w.err == nil {
		w.err = w.f.SetCellValue(w.sheet, axis, v)
	}
}

func (w *sheetWriter) colWidth(from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, from, to, width)
	}
}

func (w *sheetWriter) style(from, to string, styleID int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
