package localfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/pkg/adapters/localfile"
	"github.com/quicknotes/quicknotes/pkg/core"
)

func setupStore(t *testing.T) (*localfile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), localfile.DefaultKey)
	return localfile.NewStore(localfile.Config{Path: path}), path
}

func TestLoad_AbsentFileIsEmptyNotFallback(t *testing.T) {
	store, _ := setupStore(t)

	notes, res := store.Load(context.Background())
	require.True(t, res.OK(), "absent file is 'no data yet', not a fallback")
	assert.Empty(t, notes)
}

func TestLoad_CorruptFileFallsBackToEmpty(t *testing.T) {
	store, path := setupStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0644))

	notes, res := store.Load(context.Background())
	assert.False(t, res.OK(), "corrupt data must be observable as fallback")
	assert.Error(t, res.Err)
	assert.Empty(t, notes)
}

func TestLoad_NonArrayFallsBackToEmpty(t *testing.T) {
	store, path := setupStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"A"}`), 0644))

	notes, res := store.Load(context.Background())
	assert.False(t, res.OK())
	assert.Empty(t, notes)
}

func TestLoad_NormalizesRecords(t *testing.T) {
	store, path := setupStore(t)
	payload := `[
		{"id":"A","updatedAt":100},
		{"id":"","title":"dropped"},
		{"title":"also dropped"},
		{"id":"B","title":"kept","content":"body","updatedAt":200}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	notes, res := store.Load(context.Background())
	require.True(t, res.OK())
	require.Len(t, notes, 2)

	// Sorted descending by updatedAt.
	assert.Equal(t, "B", notes[0].ID)
	assert.Equal(t, "A", notes[1].ID)
	assert.Equal(t, core.DefaultTitle, notes[1].Title)
	assert.Equal(t, "", notes[1].Content)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	original := []core.Note{
		{ID: "B", Title: "second", Content: "two", UpdatedAt: 200},
		{ID: "A", Title: "first", Content: "one", UpdatedAt: 100},
	}

	res := store.Save(ctx, original)
	require.True(t, res.OK(), "save failed: %v", res.Err)

	reloaded, res := store.Load(ctx)
	require.True(t, res.OK())
	assert.Equal(t, original, reloaded)
}

func TestSave_FullOverwrite(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	store.Save(ctx, []core.Note{
		{ID: "A", Title: "a", UpdatedAt: 1},
		{ID: "B", Title: "b", UpdatedAt: 2},
	})
	store.Save(ctx, []core.Note{{ID: "C", Title: "c", UpdatedAt: 3}})

	reloaded, _ := store.Load(ctx)
	require.Len(t, reloaded, 1, "save must overwrite, not append")
	assert.Equal(t, "C", reloaded[0].ID)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", localfile.DefaultKey)
	store := localfile.NewStore(localfile.Config{Path: path})

	res := store.Save(context.Background(), []core.Note{{ID: "A", UpdatedAt: 1}})
	require.True(t, res.OK(), "save failed: %v", res.Err)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_FailureIsSwallowed(t *testing.T) {
	// Pointing the slot at a path whose parent is a file makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := localfile.NewStore(localfile.Config{
		Path: filepath.Join(blocker, localfile.DefaultKey),
	})

	res := store.Save(context.Background(), []core.Note{{ID: "A", UpdatedAt: 1}})
	assert.False(t, res.OK())
	assert.Error(t, res.Err)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	store, path := setupStore(t)

	res := store.Save(context.Background(), []core.Note{{ID: "A", UpdatedAt: 1}})
	require.True(t, res.OK())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, localfile.DefaultKey, entries[0].Name())
}
