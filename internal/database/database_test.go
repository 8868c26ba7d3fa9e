package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunsMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)

	// The token table exists after migration.
	_, err = db.Exec("SELECT id FROM google_tokens")
	assert.NoError(t, err)
}
