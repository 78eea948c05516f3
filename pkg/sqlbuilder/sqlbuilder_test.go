package sqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Placeholders(t *testing.T) {
	query, args, err := New(Postgres).Select("id").From("courts").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM courts WHERE id = $1", query)
	assert.Equal(t, []interface{}{1}, args)

	query, _, err = New(SQLite).Select("id").From("courts").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM courts WHERE id = ?", query)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}
