package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyEmail, []byte("a@b.com")))

	got, err := repo.Get(ctx, KeyEmail)
	require.NoError(t, err)
	assert.Equal(t, []byte("a@b.com"), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeySchedule, []byte("09:00")))
	require.NoError(t, repo.Set(ctx, KeySchedule, []byte("18:30")))

	got, err := repo.Get(ctx, KeySchedule)
	require.NoError(t, err)
	assert.Equal(t, []byte("18:30"), got)
}

func TestSQLiteRepository_GetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyEmail, []byte("a@b.com")))
	require.NoError(t, repo.Set(ctx, KeySchedule, []byte("09:00")))

	require.NoError(t, repo.Delete(ctx, KeyEmail))
	got, err := repo.Get(ctx, KeyEmail)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, KeySchedule)
	require.NoError(t, err)
	assert.Nil(t, got)
}
