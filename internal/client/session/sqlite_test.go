package session_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/session"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := session.NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, session.KeyAccess, "a1"))

	v, err := s.Get(ctx, session.KeyAccess)
	require.NoError(t, err)
	require.Equal(t, "a1", v)
}

func TestSQLiteStore_GetMissingReturnsEmpty(t *testing.T) {
	s := session.NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := session.NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestSQLiteStore_SetManyAndTokens(t *testing.T) {
	s := session.NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{
		session.KeyAccess:   "acc",
		session.KeyRefresh:  "ref",
		session.KeyUsername: "alice",
	}))

	access, refresh, err := session.Tokens(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "acc", access)
	assert.Equal(t, "ref", refresh)

	u, err := s.Get(ctx, session.KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", u)
}

func TestSQLiteStore_SetManyInsideTxRollsBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, session.NewSQLiteStore(tx).SetMany(ctx, map[string]string{"k": "v"}))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	v, err := session.NewSQLiteStore(db).Get(ctx, "k")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSQLiteStore_DeleteAndClear(t *testing.T) {
	s := session.NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2", "c": "3"}))
	require.NoError(t, s.Delete(ctx, "a"))

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, s.Clear(ctx))
	for _, k := range []string{"b", "c"} {
		v, err := s.Get(ctx, k)
		require.NoError(t, err)
		require.Empty(t, v, k)
	}
}

func TestSQLiteStore_ClosedDBReturnsErrors(t *testing.T) {
	db := setupDB(t)
	s := session.NewSQLiteStore(db)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	require.Error(t, s.Set(ctx, "k", "v"))
	require.Error(t, s.Delete(ctx, "k"))
	require.Error(t, s.Clear(ctx))
	require.Error(t, s.SetMany(ctx, map[string]string{"k": "v"}))
}
