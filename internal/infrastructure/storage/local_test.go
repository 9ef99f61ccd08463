package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"superhero-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(config.StorageConfig{LocalDir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestLocalStore_WritesFileAndBuildsURL(t *testing.T) {
	store := newLocal(t)

	img, err := store.Store(context.Background(), []byte("fake jpeg"), "photo.JPG", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.URL, UploadsRoute+"/"), img.URL)
	assert.True(t, strings.HasSuffix(img.PublicID, ".jpg"), img.PublicID)
	assert.NotContains(t, img.PublicID, "/")

	data, err := os.ReadFile(filepath.Join(store.dir, img.PublicID))
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg", string(data))
}

func TestLocalStore_PublicIDsNeverCollide(t *testing.T) {
	store := newLocal(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		img, err := store.Store(context.Background(), []byte("x"), "same-name.png", "image/png")
		require.NoError(t, err)
		require.False(t, seen[img.PublicID], "duplicate public id %s", img.PublicID)
		seen[img.PublicID] = true
	}
}

func TestLocalDelete_Idempotent(t *testing.T) {
	store := newLocal(t)

	img, err := store.Store(context.Background(), []byte("x"), "a.png", "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), img.PublicID))
	_, statErr := os.Stat(filepath.Join(store.dir, img.PublicID))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting an id that no longer exists is not an error.
	assert.NoError(t, store.Delete(context.Background(), img.PublicID))
	assert.NoError(t, store.Delete(context.Background(), "never-existed.png"))
}

func TestLocalDelete_IgnoresPathTraversal(t *testing.T) {
	store := newLocal(t)

	outside := filepath.Join(filepath.Dir(store.dir), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, store.Delete(context.Background(), "../victim.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}

func TestLocalStore_PublicURLPrefix(t *testing.T) {
	store, err := NewLocalStorage(config.StorageConfig{
		LocalDir:  t.TempDir(),
		PublicURL: "http://cdn.example.com",
	})
	require.NoError(t, err)

	img, err := store.Store(context.Background(), []byte("x"), "a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.URL, "http://cdn.example.com/uploads/"), img.URL)
}
