package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "b", want: "b"},
		{in: "URL", want: "url"},
		{in: "Indent", want: "indent"},
		{in: "", wantErr: true},
		{in: "a b", wantErr: true},
		{in: "url=", wantErr: true},
		{in: "/b", wantErr: true},
		{in: "[b]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalName(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTag), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "url", Key("url", false))
	assert.Equal(t, "url=", Key("url", true))

	code, err := NewSimpleCode("b")
	require.NoError(t, err)
	assert.Equal(t, "b", KeyOf(code))
}

func TestSimpleCode(t *testing.T) {
	code, err := NewSimpleCode("B")
	require.NoError(t, err)

	assert.Equal(t, "b", code.Name())
	assert.False(t, code.UsesAttribute())

	for _, ctx := range []RenderContext{HTML, XHTML} {
		got, err := code.Render("bold", "ignored", ctx)
		require.NoError(t, err)
		assert.Equal(t, "<b>bold</b>", got)
	}

	_, err = NewSimpleCode("")
	assert.Error(t, err)
}

func TestCustomCode(t *testing.T) {
	t.Run("same output in both modes", func(t *testing.T) {
		code, err := NewCustomCode("indent", CustomOptions{Open: "<blockquote>", Close: "</blockquote>"})
		require.NoError(t, err)

		html, err := code.Render("text", "", HTML)
		require.NoError(t, err)
		xhtml, err := code.Render("text", "", XHTML)
		require.NoError(t, err)

		assert.Equal(t, "<blockquote>text</blockquote>", html)
		assert.Equal(t, html, xhtml)
	})

	t.Run("xhtml close for void element", func(t *testing.T) {
		code, err := NewCustomCode("img", CustomOptions{
			Open:       `<img src="`,
			Close:      `" alt="">`,
			XHTMLClose: `" alt="" />`,
		})
		require.NoError(t, err)

		html, err := code.Render("pic.png", "", HTML)
		require.NoError(t, err)
		assert.Equal(t, `<img src="pic.png" alt="">`, html)

		xhtml, err := code.Render("pic.png", "", XHTML)
		require.NoError(t, err)
		assert.Equal(t, `<img src="pic.png" alt="" />`, xhtml)
	})

	t.Run("xhtml open override", func(t *testing.T) {
		code, err := NewCustomCode("hr", CustomOptions{Open: "<hr>", XHTMLOpen: "<hr />"})
		require.NoError(t, err)

		got, err := code.Render("", "", XHTML)
		require.NoError(t, err)
		assert.Equal(t, "<hr />", got)
	})
}
