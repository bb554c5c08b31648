package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetAndGet(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))

	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
}

func TestSQLite_GetAbsentReturnsNilNil(t *testing.T) {
	s := NewSQLite(setupDB(t))

	v, err := s.Get(context.Background(), "session")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_SetUpsertsExistingKey(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "goals", []byte("old")))
	require.NoError(t, s.Set(ctx, "goals", []byte("new")))

	v, err := s.Get(ctx, "goals")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session", []byte("tok")))
	require.NoError(t, s.Delete(ctx, "session"))

	v, err := s.Get(ctx, "session")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Delete(ctx, "session"))
}

func TestSQLite_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	s := NewSQLite(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get storage[k]")

	err = s.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set storage[k]")

	err = s.Delete(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete storage[k]")
}

func TestOpenSQLite_MigratesFreshDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "bucketlist.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(ctx, "users", []byte(`[{"id":1}]`)))
	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":1}]`), v)
}
