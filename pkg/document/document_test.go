package document

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/filesystem"
)

func newTestStore(t *testing.T, files map[string]string, opts ...Option) (*Store, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return NewStore(filesystem.NewAferoFS(mem), opts...), mem
}

func TestCheck(t *testing.T) {
	store, mem := newTestStore(t, map[string]string{
		"/a.txt": "a",
		"/b.txt": "b",
	})
	require.NoError(t, mem.MkdirAll("/dir", 0755))

	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"existing files", []string{"/a.txt", "/b.txt"}, false},
		{"no files", nil, true},
		{"duplicate", []string{"/a.txt", "/b.txt", "/a.txt"}, true},
		{"missing", []string{"/a.txt", "/c.txt"}, true},
		{"directory", []string{"/dir"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Check(tt.paths)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, 1, errors.ExitCode(err))
		})
	}
}

func TestRead(t *testing.T) {
	store, _ := newTestStore(t, map[string]string{
		"/doc.txt":   "[b]hello[/b]",
		"/big.txt":   strings.Repeat("x", 13),
		"/limit.txt": strings.Repeat("x", 12),
	}, WithMaxSize(12))

	content, err := store.Read("/doc.txt")
	require.NoError(t, err)
	assert.Equal(t, "[b]hello[/b]", content)

	content, err = store.Read("/limit.txt")
	require.NoError(t, err)
	assert.Len(t, content, 12)

	_, err = store.Read("/big.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileTooLarge))
	assert.Equal(t, int64(13), errors.GetErrorDetails(err)["size"])
	assert.Equal(t, 2, errors.ExitCode(err))

	_, err = store.Read("/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestDefaults(t *testing.T) {
	store, _ := newTestStore(t, nil, WithMaxSize(0), WithSuffix(""))
	assert.Equal(t, DefaultMaxSize, store.MaxSize())
	assert.Equal(t, "notes.txt_htmlified", store.OutputPath("notes.txt"))
}

func TestWrite(t *testing.T) {
	store, mem := newTestStore(t, map[string]string{"/doc.txt": "x"}, WithSuffix(".html"))

	out, err := store.Write("/doc.txt", "<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, "/doc.txt.html", out)

	data, err := afero.ReadFile(mem, "/doc.txt.html")
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>", string(data))

	// overwrites
	_, err = store.Write("/doc.txt", "<i>y</i>")
	require.NoError(t, err)
	data, err = afero.ReadFile(mem, "/doc.txt.html")
	require.NoError(t, err)
	assert.Equal(t, "<i>y</i>", string(data))
}

func TestWriteFailure(t *testing.T) {
	mem := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := NewStore(filesystem.NewAferoFS(mem))

	_, err := store.Write("/doc.txt", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, "/doc.txt_htmlified", errors.GetErrorDetails(err)["path"])
}
