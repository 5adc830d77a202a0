package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "uploads"), "/uploads/")
	require.NoError(t, err)

	ref, err := store.Save("../menu_x_1.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/menu_x_1.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "uploads", "menu_x_1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(ref))
	_, err = os.Stat(filepath.Join(dir, "uploads", "menu_x_1.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(ref))
	assert.NoError(t, store.Remove(""))
}
