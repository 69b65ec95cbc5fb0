package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dynpanels/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) port.LayoutStore {
	t.Helper()

	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return sqlite.NewLayoutStore(db)
}

func TestLayoutStore_CRUD(t *testing.T) {
	ctx := testCtx()
	store := openTestDB(t)

	require.NoError(t, store.Save(ctx, "layout/main", []byte{1, 2, 3}))

	got, err := store.Load(ctx, "layout/main")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	require.NoError(t, store.Save(ctx, "layout/main", []byte{4, 5}))
	got, err = store.Load(ctx, "layout/main")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, got)

	require.NoError(t, store.Delete(ctx, "layout/main"))
	_, err = store.Load(ctx, "layout/main")
	assert.ErrorIs(t, err, port.ErrLayoutNotFound)
}

func TestLayoutStore_LoadMissingKey(t *testing.T) {
	store := openTestDB(t)

	data, err := store.Load(testCtx(), "layout/none")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, port.ErrLayoutNotFound)
}

func TestLayoutStore_DeleteMissingKey(t *testing.T) {
	store := openTestDB(t)

	assert.NoError(t, store.Delete(testCtx(), "layout/none"))
}

func TestLayoutStore_List(t *testing.T) {
	ctx := testCtx()
	store := openTestDB(t)

	require.NoError(t, store.Save(ctx, "layout/b", []byte{1, 2}))
	require.NoError(t, store.Save(ctx, "layout/a", []byte{1}))
	require.NoError(t, store.Save(ctx, "other/a", []byte{1, 2, 3}))
	require.NoError(t, store.Save(ctx, "layout_x", []byte{1}))

	infos, err := store.List(ctx, "layout/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "layout/a", infos[0].Key)
	assert.Equal(t, 1, infos[0].Size)
	assert.Equal(t, "layout/b", infos[1].Key)
	assert.Equal(t, 2, infos[1].Size)
	assert.False(t, infos[1].UpdatedAt.IsZero())

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// "_" is matched literally, not as a wildcard.
	require.NoError(t, store.Save(ctx, "layoutZx", []byte{1}))
	underscored, err := store.List(ctx, "layout_")
	require.NoError(t, err)
	require.Len(t, underscored, 1)
	assert.Equal(t, "layout_x", underscored[0].Key)
}

func TestLayoutStore_SaveRejectsEmptyKey(t *testing.T) {
	store := openTestDB(t)

	assert.Error(t, store.Save(testCtx(), "", []byte{1}))
}

func TestNewConnection_ReopenKeepsSchema(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "layouts.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewLayoutStore(db).Save(ctx, "k", []byte("v")))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	versions, err := sqlite.AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, versions)

	got, err := sqlite.NewLayoutStore(db).Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestMigrations_Sorted(t *testing.T) {
	migrations, err := sqlite.Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "layouts", migrations[0].Name)
}
