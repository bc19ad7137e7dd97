package repository_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/adkhamov/leadbook/internal/repository"
)

// newTestRepository opens an in-memory store and applies the real migration
// files so tests run against the production schema.
func newTestRepository(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", "file::memory:?_fk=1")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	return repository.NewRepository(db)
}

func applyMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)

	for _, f := range files {
		ddl, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(ddl))
		require.NoError(t, err, "applying %s", f)
	}
}

func TestRepository_Ping(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Ping())
}
