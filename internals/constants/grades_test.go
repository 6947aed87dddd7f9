package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllGrades(t *testing.T) {
	grades := AllGrades()
	assert.Len(t, grades, 12)
	assert.Equal(t, Grade("1 ano"), grades[0])
	assert.Equal(t, Grade("9 ano"), grades[8])
	assert.Equal(t, Grade("3 medio"), grades[11])
}

func TestNewGrade(t *testing.T) {
	g, ok := NewGrade(2, "medio")
	assert.True(t, ok)
	assert.Equal(t, Grade("2 medio"), g)

	_, ok = NewGrade(4, "medio")
	assert.False(t, ok)
	_, ok = NewGrade(0, "ano")
	assert.False(t, ok)
	_, ok = NewGrade(1, "serie")
	assert.False(t, ok)
}

func TestParseGrade(t *testing.T) {
	cases := map[string]Grade{
		"1 ano":   "1 ano",
		"1-ano":   "1 ano",
		"3-medio": "3 medio",
		"2 médio": "2 medio",
		" 9 ANO ": "9 ano",
	}
	for in, want := range cases {
		got, ok := ParseGrade(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "all", "10 ano", "4 medio", "ano"} {
		_, ok := ParseGrade(in)
		assert.False(t, ok, in)
	}
}

func TestParseClassAndBuilding(t *testing.T) {
	c, ok := ParseClass("b")
	assert.True(t, ok)
	assert.Equal(t, ClassB, c)
	_, ok = ParseClass("F")
	assert.False(t, ok)

	b, ok := ParseBuilding("Mangal")
	assert.True(t, ok)
	assert.Equal(t, BuildingMangal, b)
	_, ok = ParseBuilding("central")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "1º ano", Grade("1 ano").Label())
	assert.Equal(t, "3º médio", Grade("3 medio").Label())
	assert.Equal(t, "Turma C", ClassC.Label())
	assert.Equal(t, "Redondo", BuildingRedondo.Label())
}

func TestIsDataFile(t *testing.T) {
	assert.True(t, IsDataFile("1-ano/A.json"))
	assert.True(t, IsDataFile("x/Y.JSON"))
	assert.False(t, IsDataFile("1-ano/A.txt"))
	assert.False(t, IsDataFile("README"))
}
