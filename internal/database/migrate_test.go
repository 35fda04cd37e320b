package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	up, err := fs.Glob(migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	down, err := fs.Glob(migrations, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, up)
	assert.Len(t, down, len(up))
}

func TestMigrationsCreateEntriesTable(t *testing.T) {
	body, err := fs.ReadFile(migrations, "migrations/000001_dashboard_entries.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "dashboard_entries")
}
