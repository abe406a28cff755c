package assetstorage

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
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return ls
}

func TestLocalUploadAndDelete(t *testing.T) {
	ls := newTestLocalStorage(t)
	ctx := context.Background()

	url, err := ls.Upload(ctx, "photo.png", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.Contains(t, url, "faculty_images%2F")
	assert.True(t, strings.HasSuffix(url, "?alt=media"))

	key, ok := ObjectPathFromURL(url)
	require.True(t, ok)

	data, err := os.ReadFile(filepath.Join(ls.basePath, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	require.NoError(t, ls.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(ls.basePath, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDeleteMissingFileIsNoError(t *testing.T) {
	ls := newTestLocalStorage(t)

	url := PublicURL(ls.baseURL, ImagePrefix+"/1700000000000_gone.png")
	assert.NoError(t, ls.Delete(context.Background(), url))
}

func TestLocalDeleteUnderivableURLIsNoError(t *testing.T) {
	ls := newTestLocalStorage(t)

	assert.NoError(t, ls.Delete(context.Background(), "http://localhost:8080/uploads/plain.png"))
	assert.NoError(t, ls.Delete(context.Background(), ""))
}

func TestLocalUploadCreatesNamespaceDirectory(t *testing.T) {
	base := t.TempDir()
	_, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(base, ImagePrefix))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
