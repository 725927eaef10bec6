package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/shared/logger"
)

func newMemStore() (*LocalStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewStore(fs, "http://localhost:8080/uploads/", logger.NewNop()), fs
}

func TestLocalStore_PutAndDelete(t *testing.T) {
	store, fs := newMemStore()
	ctx := context.Background()

	url, err := store.Put(ctx, "avatars/7/a.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/7/a.png", url)

	data, err := afero.ReadFile(fs, "avatars/7/a.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "avatars/7/a.png", key)

	require.NoError(t, store.Delete(ctx, key))
	exists, err := afero.Exists(fs, "avatars/7/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, key), "deleting twice is fine")
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, _ := newMemStore()
	_, err := store.Put(context.Background(), "../etc/passwd", "text/plain", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Error(t, store.Delete(context.Background(), ""))
}

func TestLocalStore_KeyFromForeignURL(t *testing.T) {
	store, _ := newMemStore()
	_, ok := store.KeyFromURL("https://cdn.example.com/avatars/1.png")
	assert.False(t, ok)
	_, ok = store.KeyFromURL("")
	assert.False(t, ok)
}

func TestLocalStore_HonoursCancelledContext(t *testing.T) {
	store, _ := newMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Put(ctx, "avatars/1.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
