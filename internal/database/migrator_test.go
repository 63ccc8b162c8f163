package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/migrations"
)

// The server hands the migrator the embedded filesystem with a root of ".",
// so every migration must be readable through that root.
func TestReadMigrationWithDotRoot(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	require.NoError(t, err)

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	require.NotEmpty(t, sqlFiles, "expected embedded migration files")

	for _, name := range sqlFiles {
		content, err := readMigration(migrations.FS, ".", name)
		require.NoError(t, err, "reading %s", name)
		assert.NotEmpty(t, content)
	}
}

func TestReadMigrationMissingFile(t *testing.T) {
	_, err := readMigration(migrations.FS, ".", "999_does_not_exist.sql")
	assert.Error(t, err)
}
