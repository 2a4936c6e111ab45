package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:storage%d?mode=memory&cache=shared", dbSeq)
	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLite_GetMissingKey(t *testing.T) {
	r := setupSQLite(t)
	_, err := r.Get(context.Background(), SlotSession)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_SetGetOverwrite(t *testing.T) {
	r := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, SlotSession, []byte("one")))
	got, err := r.Get(ctx, SlotSession)
	require.NoError(t, err)
	require.Equal(t, []byte("one"), got)

	require.NoError(t, r.Set(ctx, SlotSession, []byte("two")))
	got, err = r.Get(ctx, SlotSession)
	require.NoError(t, err)
	require.Equal(t, []byte("two"), got)
}

func TestSQLite_SlotsAreIndependent(t *testing.T) {
	r := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, SlotSession, []byte("session")))
	require.NoError(t, r.Set(ctx, SlotPreferences, []byte("prefs")))

	require.NoError(t, r.Delete(ctx, SlotSession))
	_, err := r.Get(ctx, SlotSession)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := r.Get(ctx, SlotPreferences)
	require.NoError(t, err)
	require.Equal(t, []byte("prefs"), got)
}

func TestSQLite_Clear(t *testing.T) {
	r := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, SlotSession, []byte("x")))
	require.NoError(t, r.Clear(ctx))
	_, err := r.Get(ctx, SlotSession)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInitDatabase_Idempotent(t *testing.T) {
	dsn := "file:storageinit?mode=memory&cache=shared"
	db1, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	defer db1.Close()

	db2, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	defer db2.Close()
}
