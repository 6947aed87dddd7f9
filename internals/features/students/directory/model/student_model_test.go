package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, body string) RawStudentModel {
	t.Helper()
	var r RawStudentModel
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	return r
}

func TestRawStudent_CamelCaseAlias(t *testing.T) {
	snake := decodeOne(t, `{"nome":"Ana","celular_mae":"11999998888"}`)
	camel := decodeOne(t, `{"nome":"Ana","celularMae":"11999998888"}`)

	require.NotNil(t, camel.CelularMae)
	assert.Equal(t, snake, camel)
	assert.Nil(t, camel.CelularPai)
}

func TestRawStudent_SnakeCaseWins(t *testing.T) {
	r := decodeOne(t, `{"nome":"Ana","celular_pai":"111","celularPai":"222"}`)
	require.NotNil(t, r.CelularPai)
	assert.Equal(t, "111", *r.CelularPai)
}

func TestRawStudent_EmptyIsAbsent(t *testing.T) {
	r := decodeOne(t, `{"nome":"Ana","celular_mae":"","celularMae":"333","celular_pai":"  "}`)
	require.NotNil(t, r.CelularMae)
	assert.Equal(t, "333", *r.CelularMae)
	assert.Nil(t, r.CelularPai)
}

func TestRawStudent_MissingName(t *testing.T) {
	r := decodeOne(t, `{"celular_mae":"1"}`)
	assert.Equal(t, "", r.Nome)
}
