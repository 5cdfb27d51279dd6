package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("children", "photo.jpg", strings.NewReader("fake image"))
	require.NoError(t, err)
	assert.Equal(t, "children", filepath.Dir(rel))
	assert.Equal(t, ".jpg", filepath.Ext(rel))

	file, err := store.Open(rel)
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "fake image", string(content))
}

func TestLocalStorageSaveUniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("documents", "report.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("documents", "report.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("children/gone.jpg"))
}

func TestLocalStorageResolveStaysUnderBase(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	outside := filepath.Join(base, "..", "escape.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))
	defer os.Remove(outside)

	_, err = store.Open("../escape.txt")
	assert.Error(t, err)
}
