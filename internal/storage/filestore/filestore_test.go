package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir() + "/uploads")
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("fake image bytes"), "room.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, "-room.jpg"))
	assert.NotEqual(t, "room.jpg", name)

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveStripsPath(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir() + "/uploads")
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)

	assert.False(t, strings.Contains(name, "/"))
	assert.True(t, strings.HasSuffix(name, "-passwd"))
}

func TestSaveDistinctNames(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir() + "/uploads")
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("a"), "room.jpg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "room.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
