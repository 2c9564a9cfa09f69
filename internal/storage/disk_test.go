package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phutanet200102/api-mongoDB/internal/storage"
)

func TestGenerateName_Format(t *testing.T) {
	name, err := storage.GenerateName("image", "cat.png")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^image-[0-9a-f]{32}\.png$`), name)
}

func TestGenerateName_NoExtension(t *testing.T) {
	name, err := storage.GenerateName("image", "README")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^image-[0-9a-f]{32}$`), name)
}

func TestGenerateName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name, err := storage.GenerateName("image", "a.jpg")
		require.NoError(t, err)
		require.False(t, seen[name], "generated a duplicate name")
		seen[name] = true
	}
}

func TestDisk_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	d, err := storage.NewDisk(dir)
	require.NoError(t, err)

	relPath, err := d.Store("image", "cat.jpg", bytes.NewReader([]byte("jpeg bytes")))
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^uploads/image-[0-9a-f]{32}\.jpg$`), relPath)

	content, err := os.ReadFile(filepath.Join(dir, filepath.Base(relPath)))
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg bytes"), content)
}

func TestDisk_Store_DistinctFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	d, err := storage.NewDisk(dir)
	require.NoError(t, err)

	p1, err := d.Store("image", "a.png", bytes.NewReader([]byte("one")))
	require.NoError(t, err)
	p2, err := d.Store("image", "a.png", bytes.NewReader([]byte("two")))
	require.NoError(t, err)

	require.NotEqual(t, p1, p2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
