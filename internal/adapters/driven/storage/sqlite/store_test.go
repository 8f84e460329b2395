package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testLayout(id string, createdAt time.Time) domain.Layout {
	return domain.Layout{
		ID:                id,
		Year:              2026,
		PagesPerSignature: 4,
		ContentPages:      7,
		BlankPages:        1,
		Signatures:        2,
		Sheets:            4,
		PrintOrder:        []int{3, 0, 1, 2, domain.BlankIndex, 4, 5, 6},
		CreatedAt:         createdAt,
	}
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(tempDir, DatabaseName), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var count int
	err := store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'layouts'",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.LayoutStore().Save(ctx, testLayout("a", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LayoutStore().Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestStore_Migrate_SkipsAppliedAndUnnumbered(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"001_layouts.up.sql": {Data: []byte("SELECT broken")},
		"002_notes.up.sql":   {Data: []byte("CREATE TABLE notes (id TEXT)")},
		"002_notes.down.sql": {Data: []byte("DROP TABLE notes")},
		"readme.up.sql":      {Data: []byte("SELECT broken")},
	}
	require.NoError(t, store.migrate(fsys))

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestStore_Migrate_Error(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"005_bad.up.sql": {Data: []byte("NOT VALID SQL")},
	}
	assert.Error(t, store.migrate(fsys))
}

func TestLayoutStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx := context.Background()

	created := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	layout := testLayout("run-1", created)
	require.NoError(t, store.Save(ctx, layout))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, layout, *got)
}

func TestLayoutStore_Save_Replaces(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx := context.Background()

	layout := testLayout("run-1", time.Now())
	require.NoError(t, store.Save(ctx, layout))

	layout.Year = 2027
	layout.PrintOrder = []int{1, 0}
	require.NoError(t, store.Save(ctx, layout))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2027, got.Year)
	assert.Equal(t, []int{1, 0}, got.PrintOrder)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLayoutStore_Save_SetsCreatedAt(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testLayout("run-1", time.Time{})))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestLayoutStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t).LayoutStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLayoutStore_List(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, testLayout("old", base)))
	require.NoError(t, store.Save(ctx, testLayout("new", base.Add(2*time.Hour))))
	require.NoError(t, store.Save(ctx, testLayout("mid-b", base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, testLayout("mid-a", base.Add(time.Hour))))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, l := range all {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"new", "mid-a", "mid-b", "old"}, ids)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
}

func TestLayoutStore_List_Empty(t *testing.T) {
	store := setupTestStore(t).LayoutStore()

	all, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLayoutStore_Delete(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testLayout("run-1", time.Now())))
	require.NoError(t, store.Delete(ctx, "run-1"))

	_, err := store.Get(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "run-1"), domain.ErrNotFound)
}

func TestLayoutStore_CancelledContext(t *testing.T) {
	store := setupTestStore(t).LayoutStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Save(ctx, testLayout("run-1", time.Now())))
}
