package uploads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRemoveTree_NestedTree(t *testing.T) {
	storage := &Storage{Root: t.TempDir()}
	dir := storage.ProviderDir(7)

	writeFile(t, filepath.Join(dir, "profile.png"))
	writeFile(t, filepath.Join(dir, "services", "3", "cover.png"))
	writeFile(t, filepath.Join(dir, "articles", "12", "images", "diagram.png"))
	writeFile(t, filepath.Join(dir, "articles", "12", "cover.png"))

	failures := storage.RemoveTree(dir)
	assert.Empty(t, failures)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "subtree root should be gone")
}

func TestRemoveTree_MissingTreeIsNoOp(t *testing.T) {
	storage := &Storage{Root: t.TempDir()}

	failures := storage.RemoveTree(storage.ProviderDir(99))
	assert.Empty(t, failures)
}

func TestRemoveTree_EmptyDirectory(t *testing.T) {
	storage := &Storage{Root: t.TempDir()}
	dir := storage.ClientDir(4)
	require.NoError(t, storage.Ensure(dir))

	failures := storage.RemoveTree(dir)
	assert.Empty(t, failures)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPathLayout(t *testing.T) {
	storage := &Storage{Root: "uploads"}

	assert.Equal(t, filepath.Join("uploads", "providers", "5"), storage.ProviderDir(5))
	assert.Equal(t, filepath.Join("uploads", "clients", "8"), storage.ClientDir(8))
	assert.Equal(t, filepath.Join("uploads", "providers", "5", "services", "2"), storage.ServiceDir(5, 2))
	assert.Equal(t, filepath.Join("uploads", "providers", "5", "articles", "9"), storage.ArticleDir(5, 9))
}
