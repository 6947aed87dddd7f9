package constants

import (
	"fmt"
	"strings"
)

// Value "all" on any filter means the filter is off.
const FilterAll = "all"

type Grade string
type Class string
type Building string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
	ClassD Class = "D"
	ClassE Class = "E"
)

const (
	BuildingRedondo Building = "redondo"
	BuildingMangal  Building = "mangal"
)

// ==========================
// School levels
// ==========================

// Level describes one folder suffix ("-ano", "-medio") and the years it covers.
type Level struct {
	Suffix  string // folder suffix without the dash
	Word    string // word used in the canonical grade label
	Display string // word used on screen (accented)
	MaxYear int
}

// Levels is keyed by folder suffix.
var Levels = map[string]Level{
	"ano":   {Suffix: "ano", Word: "ano", Display: "ano", MaxYear: 9},
	"medio": {Suffix: "medio", Word: "medio", Display: "médio", MaxYear: 3},
}

// levelOrder fixes the order used for option lists.
var levelOrder = []string{"ano", "medio"}

// NewGrade builds the canonical label ("1 ano", "2 medio").
// ok=false when the suffix is unknown or the year is out of range.
func NewGrade(year int, suffix string) (Grade, bool) {
	lv, ok := Levels[suffix]
	if !ok || year < 1 || year > lv.MaxYear {
		return "", false
	}
	return Grade(fmt.Sprintf("%d %s", year, lv.Word)), true
}

// AllGrades returns the 12 canonical grades, elementary first.
func AllGrades() []Grade {
	out := make([]Grade, 0, 12)
	for _, sfx := range levelOrder {
		lv := Levels[sfx]
		for y := 1; y <= lv.MaxYear; y++ {
			g, _ := NewGrade(y, sfx)
			out = append(out, g)
		}
	}
	return out
}

func AllClasses() []Class {
	return []Class{ClassA, ClassB, ClassC, ClassD, ClassE}
}

func AllBuildings() []Building {
	return []Building{BuildingRedondo, BuildingMangal}
}

// ParseGrade accepts the canonical label ("1 ano") or the folder
// spelling ("1-ano") and returns the canonical grade.
func ParseGrade(s string) (Grade, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Replace(s, "-", " ", 1)
	s = strings.ReplaceAll(s, "médio", "medio")
	for _, g := range AllGrades() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

func ParseClass(s string) (Class, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, c := range AllClasses() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func ParseBuilding(s string) (Building, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range AllBuildings() {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

// ==========================
// Display labels
// ==========================

// Label renders "1º ano" / "2º médio".
func (g Grade) Label() string {
	year, word, ok := strings.Cut(string(g), " ")
	if !ok {
		return string(g)
	}
	if lv, found := Levels[word]; found {
		word = lv.Display
	}
	return year + "º " + word
}

// Label renders "Turma A".
func (c Class) Label() string {
	return "Turma " + string(c)
}

func (b Building) Label() string {
	if b == "" {
		return ""
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}
