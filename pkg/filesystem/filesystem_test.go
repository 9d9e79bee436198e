package filesystem

import (
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fsys FS, dir string) {
	t.Helper()
	path := filepath.Join(dir, "doc.txt")

	require.NoError(t, fsys.WriteFile(path, []byte("[b]hi[/b]"), 0644))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), info.Size())

	f, err := fsys.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "[b]hi[/b]", string(data))

	_, err = fsys.Stat(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOS(t *testing.T) {
	exercise(t, NewOS(), t.TempDir())
}

func TestAfero(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0755))
	exercise(t, NewAferoFS(mem), "/work")

	t.Run("open directory", func(t *testing.T) {
		_, err := NewAferoFS(mem).Open("/work")
		assert.ErrorIs(t, err, fs.ErrInvalid)
	})
}
