package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	CreateFileTree(t, fs, "/root", FileTree{
		"a.txt": "A",
		"sub": FileTree{
			"b.txt": "B",
			"deeper": FileTree{},
		},
		"nested/c.txt": "C",
	})

	data, err := afero.ReadFile(fs, "/root/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "B", string(data))

	info, err := fs.Stat("/root/sub/deeper")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err = afero.ReadFile(fs, "/root/nested/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "C", string(data))
}

func TestWriteFilesAndChdir(t *testing.T) {
	dir := t.TempDir()
	WriteFiles(t, dir, "x/y.bin")

	Chdir(t, dir)
	data, err := os.ReadFile(filepath.Join("x", "y.bin"))
	require.NoError(t, err)
	assert.Equal(t, "content of x/y.bin", string(data))
}

func TestReadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	fh := &zip.FileHeader{Name: "eboot.bin", Method: zip.Store}
	fh.SetMode(0755)
	w, err := zw.CreateHeader(fh)
	require.NoError(t, err)
	_, err = w.Write([]byte("ELF"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	entries := ReadArchive(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, ArchiveEntry{Name: "eboot.bin", Method: zip.Store, Mode: 0755, Content: "ELF"}, entries[0])
	assert.Equal(t, []string{"eboot.bin"}, ArchiveNames(t, path))
}
