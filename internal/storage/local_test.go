package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()

	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveAndExists(t *testing.T) {
	t.Parallel()

	store := newTestLocalStorage(t)
	ctx := context.Background()

	err := store.Save(ctx, "portfolio/shot.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "portfolio/shot.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(filepath.Join(store.BasePath(), "portfolio", "shot.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalStorage_ExistsMissing(t *testing.T) {
	t.Parallel()

	store := newTestLocalStorage(t)

	exists, err := store.Exists(context.Background(), "portfolio/nope.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_Delete(t *testing.T) {
	t.Parallel()

	store := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "portfolio/gone.png", strings.NewReader("png"), "image/png"))
	require.NoError(t, store.Delete(ctx, "portfolio/gone.png"))

	exists, err := store.Exists(ctx, "portfolio/gone.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingFails(t *testing.T) {
	t.Parallel()

	store := newTestLocalStorage(t)

	err := store.Delete(context.Background(), "portfolio/never-existed.png")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := newTestLocalStorage(t)
	url, err := store.GetURL(ctx, "portfolio/shot.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/portfolio/shot.jpg", url)

	cdn, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)
	url, err = cdn.GetURL(ctx, "portfolio/shot.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/portfolio/shot.jpg", url)
}
