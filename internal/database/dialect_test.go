package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver string
		want   Dialect
	}{
		{"", DialectSQLite},
		{"sqlite3", DialectSQLite},
		{"libsql", DialectTurso},
		{"postgres", DialectPostgres},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := DialectFor(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DialectFor("mysql")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	query := "INSERT INTO matches (winner, loser) VALUES (?, ?)"

	assert.Equal(t, query, DialectSQLite.Rebind(query))
	assert.Equal(t, query, DialectTurso.Rebind(query))
	assert.Equal(t, "INSERT INTO matches (winner, loser) VALUES ($1, $2)", DialectPostgres.Rebind(query))
	assert.Equal(t, "SELECT '?' AS q, name FROM players WHERE id = $1",
		DialectPostgres.Rebind("SELECT '?' AS q, name FROM players WHERE id = ?"))
}
