package convert

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/bbcode"
	"github.com/arthur-debert/htmlify/pkg/catalog"
	"github.com/arthur-debert/htmlify/pkg/document"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/filesystem"
	"github.com/arthur-debert/htmlify/pkg/parser"
)

type fixture struct {
	fs    afero.Fs
	store *document.Store
	p     *parser.Parser
}

func newFixture(t *testing.T, files map[string]string, opts ...document.Option) *fixture {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}

	p, err := catalog.Build(catalog.MustDefault(), catalog.Options{})
	require.NoError(t, err)

	return &fixture{
		fs:    mem,
		store: document.NewStore(filesystem.NewAferoFS(mem), opts...),
		p:     p,
	}
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestConvertString(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name   string
		opts   Options
		render bbcode.RenderContext
		input  string
		want   string
	}{
		{
			name:  "tags only",
			input: `[b]a & b[/b]`,
			want:  `<b>a & b</b>`,
		},
		{
			name:  "escaped",
			opts:  Options{Escape: true},
			input: `[b]<a & "b">[/b]`,
			want:  `<b>&lt;a &amp; &quot;b&quot;&gt;</b>`,
		},
		{
			name:  "escaped link keeps single ampersand escape",
			opts:  Options{Escape: true},
			input: `[url=http://x.org/?a=1&b=2]x[/url]`,
			want:  `<a href="http://x.org/?a=1&amp;b=2" target="_blank">x</a>`,
		},
		{
			name:   "xhtml line breaks",
			render: bbcode.RenderContext{XHTML: true, LineBreaks: true},
			input:  "[img]a.png[/img]\nnext",
			want:   "<img src=\"a.png\" alt=\"\" /><br />\nnext",
		},
		{
			name:  "latin9",
			opts:  Options{UTF8: true},
			input: "[i]5 €[/i]",
			want:  "<i>5 \xa4</i>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(f.p, f.store, tt.render, tt.opts)
			res, err := c.ConvertString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestConvertStringFailures(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("charset", func(t *testing.T) {
		c := New(f.p, f.store, bbcode.HTML, Options{UTF8: true})
		_, err := c.ConvertString("☃")
		require.Error(t, err)
		assert.Equal(t, 3, errors.ExitCode(err))
	})

	t.Run("validate html output", func(t *testing.T) {
		c := New(f.p, f.store, bbcode.HTML, Options{Validate: true})
		_, err := c.ConvertString("[img]a.png[/img]")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrXHTMLInvalid))
	})

	t.Run("validate xhtml output", func(t *testing.T) {
		c := New(f.p, f.store, bbcode.XHTML, Options{Validate: true, Escape: true, UTF8: true})
		res, err := c.ConvertString("[img]a.png[/img] [b]café & co[/b]")
		require.NoError(t, err)
		assert.Equal(t, "<img src=\"a.png\" alt=\"\" /> <b>caf\xe9 &amp; co</b>", res.Output)
	})
}

func TestRun(t *testing.T) {
	files := map[string]string{}
	var paths []string
	for i := 0; i < 8; i++ {
		path := fmt.Sprintf("/docs/%d.txt", i)
		files[path] = fmt.Sprintf("[b]%d[/b] [foo]", i)
		paths = append(paths, path)
	}

	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			f := newFixture(t, files)
			c := New(f.p, f.store, bbcode.HTML, Options{Workers: workers})

			results, err := c.Run(context.Background(), paths)
			require.NoError(t, err)
			require.Len(t, results, len(paths))

			for i, r := range results {
				assert.Equal(t, paths[i], r.Input)
				assert.Equal(t, paths[i]+"_htmlified", r.Output)
				assert.Equal(t, fmt.Sprintf("<b>%d</b> [foo]", i), f.read(t, r.Output))
				require.Len(t, r.Diagnostics, 1)
				assert.Equal(t, parser.UnknownTag, r.Diagnostics[0].Kind)
			}
		})
	}
}

func TestRunNoWrite(t *testing.T) {
	f := newFixture(t, map[string]string{"/a.txt": "[u]x[/u]"})
	c := New(f.p, f.store, bbcode.HTML, Options{NoWrite: true})

	results, err := c.Run(context.Background(), []string{"/a.txt"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "<u>x</u>", results[0].Content)
	assert.Empty(t, results[0].Output)

	exists, err := afero.Exists(f.fs, "/a.txt_htmlified")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunErrors(t *testing.T) {
	t.Run("invalid paths convert nothing", func(t *testing.T) {
		f := newFixture(t, map[string]string{"/a.txt": "x"})
		c := New(f.p, f.store, bbcode.HTML, Options{})

		results, err := c.Run(context.Background(), []string{"/a.txt", "/missing.txt"})
		require.Error(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 1, errors.ExitCode(err))

		exists, err := afero.Exists(f.fs, "/a.txt_htmlified")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		f := newFixture(t, map[string]string{
			"/a.txt": "[b]a[/b]",
			"/b.txt": "0123456789abc",
			"/c.txt": "[i]c[/i]",
		}, document.WithMaxSize(10))
		c := New(f.p, f.store, bbcode.HTML, Options{Workers: 1})

		results, err := c.Run(context.Background(), []string{"/a.txt", "/b.txt", "/c.txt"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileTooLarge))
		assert.Equal(t, 2, errors.ExitCode(err))

		require.Len(t, results, 1)
		assert.Equal(t, "/a.txt", results[0].Input)

		exists, err := afero.Exists(f.fs, "/c.txt_htmlified")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := newFixture(t, map[string]string{"/a.txt": "x"})
		c := New(f.p, f.store, bbcode.HTML, Options{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := c.Run(ctx, []string{"/a.txt"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	})
}
