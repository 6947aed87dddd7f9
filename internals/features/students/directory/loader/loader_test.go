package loader

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"contatorapido_backend/internals/constants"
	"contatorapido_backend/internals/features/students/directory/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestLoad_AnnotatesFromPath(t *testing.T) {
	files := map[string][]model.RawStudentModel{
		"1-ano/A.json": {
			{Nome: "Ana", CelularMae: strPtr("11999998888")},
			{Nome: "Bia"},
		},
		"2-medio/C.json": {
			{Nome: "Caio", CelularPai: strPtr("11888887777")},
		},
	}

	got := Load(files)
	require.Len(t, got, 3)

	byName := map[string]model.StudentModel{}
	for _, s := range got {
		byName[s.Name] = s
	}

	ana := byName["Ana"]
	require.NotNil(t, ana.Grade)
	require.NotNil(t, ana.Class)
	assert.Equal(t, constants.Grade("1 ano"), *ana.Grade)
	assert.Equal(t, constants.ClassA, *ana.Class)
	assert.Equal(t, "11999998888", *ana.MotherPhone)
	assert.Nil(t, ana.FatherPhone)
	assert.Nil(t, ana.Building)

	caio := byName["Caio"]
	assert.Equal(t, constants.Grade("2 medio"), *caio.Grade)
	assert.Equal(t, constants.ClassC, *caio.Class)
}

func TestLoad_PreservesPerFileOrder(t *testing.T) {
	files := map[string][]model.RawStudentModel{
		"3-ano/B.json": {{Nome: "Zeca"}, {Nome: "Alice"}, {Nome: "Maria"}},
	}
	got := Load(files)
	require.Len(t, got, 3)
	assert.Equal(t, "Zeca", got[0].Name)
	assert.Equal(t, "Alice", got[1].Name)
	assert.Equal(t, "Maria", got[2].Name)
}

func TestLoad_SkipsUnmatchedPaths(t *testing.T) {
	files := map[string][]model.RawStudentModel{
		"1-ano/A.json":    {{Nome: "Ana"}},
		"1-ano/F.json":    {{Nome: "Fora"}},
		"misc/notes.json": {{Nome: "Nota"}},
		"4-medio/A.json":  {{Nome: "Quarto"}},
	}
	got := Load(files)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestLoad_DoesNotMutateInput(t *testing.T) {
	phone := "11999998888"
	files := map[string][]model.RawStudentModel{
		"1-ano/A.json": {{Nome: "Ana", CelularMae: &phone}},
	}
	_ = Load(files)
	assert.Equal(t, "Ana", files["1-ano/A.json"][0].Nome)
	assert.Equal(t, "11999998888", phone)
}

func TestLoad_StableIDs(t *testing.T) {
	files := map[string][]model.RawStudentModel{
		"1-ano/A.json": {{Nome: "Ana"}, {Nome: "Ana"}},
	}
	a := Load(files)
	b := Load(files)
	require.Len(t, a, 2)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestLoad_Empty(t *testing.T) {
	got := Load(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadFromSource_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"1-ano/A.json":   {Data: []byte(`[{"nome":"Ana","celular_mae":"11999998888"}]`)},
		"1-medio/D.json": {Data: []byte(`[{"nome":"Joao","celularMae":"11910985432"}]`)},
		"2-ano/B.json":   {Data: []byte(`{not json`)},
		"README.md":      {Data: []byte("# data")},
		"extra/x.json":   {Data: []byte(`[{"nome":"Perdido"}]`)},
	}

	got := LoadFromSource(context.Background(), NewFSSource(fsys, "test"), zap.NewNop())
	require.Len(t, got, 2)

	names := []string{got[0].Name, got[1].Name}
	assert.ElementsMatch(t, []string{"Ana", "Joao"}, names)
	for _, s := range got {
		if s.Name == "Joao" {
			require.NotNil(t, s.MotherPhone)
			assert.Equal(t, "11910985432", *s.MotherPhone)
			assert.Equal(t, constants.Grade("1 medio"), *s.Grade)
		}
	}
}

type failingSource struct{}

func (failingSource) Name() string { return "broken" }
func (failingSource) Files(context.Context) (map[string][]byte, error) {
	return nil, errors.New("disk gone")
}

type panickingSource struct{}

func (panickingSource) Name() string { return "panics" }
func (panickingSource) Files(context.Context) (map[string][]byte, error) {
	panic("boom")
}

func TestLoadFromSource_FailuresYieldEmpty(t *testing.T) {
	got := LoadFromSource(context.Background(), failingSource{}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = LoadFromSource(context.Background(), panickingSource{}, zap.NewNop())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFSSource_CanceledContext(t *testing.T) {
	fsys := fstest.MapFS{"1-ano/A.json": {Data: []byte(`[]`)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFSSource(fsys, "test").Files(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeFile(t *testing.T) {
	rows, err := DecodeFile([]byte(`[{"nome":"Ana"},{"nome":"Bia","celularPai":"1"}]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", *rows[1].CelularPai)

	_, err = DecodeFile([]byte(`{"nome":"Ana"}`))
	assert.Error(t, err)
}
